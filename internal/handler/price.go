package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juampy12/super-juampy-sub000/internal/apierror"
	"github.com/juampy12/super-juampy-sub000/internal/service"
)

type PriceHandler struct{ svc service.PriceService }

func NewPriceHandler(svc service.PriceService) *PriceHandler { return &PriceHandler{svc: svc} }

// Lookup godoc
// @Summary      Consulta de precio por codigo de barras
// @Description  Endpoint publico para los verificadores de precio. Devuelve el precio vigente con la oferta activa aplicada.
// @Tags         precios
// @Produce      json
// @Param        barcode path string true "Codigo de barras"
// @Success      200 {object} dto.PriceLookupResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/price/{barcode} [get]
func (h *PriceHandler) Lookup(c *gin.Context) {
	barcode := c.Param("barcode")
	if len(barcode) < 4 {
		c.JSON(http.StatusBadRequest, apierror.New("codigo de barras invalido"))
		return
	}
	resp, err := h.svc.Lookup(c.Request.Context(), barcode)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("producto no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar el precio"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
