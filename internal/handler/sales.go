package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/juampy12/super-juampy-sub000/internal/apierror"
	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/middleware"
	"github.com/juampy12/super-juampy-sub000/internal/service"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// Confirm godoc
// @Summary      Confirma una venta
// @Description  Reenvia la venta al procedimiento confirm_sale: calcula precios, descuenta stock y escribe sales + sale_items en una transaccion.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ConfirmSaleRequest true "Detalle de la venta"
// @Success      201  {object} dto.SaleResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sales [post]
func (h *SalesHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	var employeeID *uuid.UUID
	if claims := middleware.GetClaims(c); claims != nil {
		if id, err := uuid.Parse(claims.EmployeeID); err == nil {
			employeeID = &id
		}
	}

	resp, err := h.svc.Confirm(c.Request.Context(), employeeID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Lista ventas
// @Description  Lista paginada de ventas filtrada por local, dia local y estado.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        store_id query string true  "UUID del local"
// @Param        date     query string false "Dia local YYYY-MM-DD (default: hoy)"
// @Param        status   query string false "confirmed | cancelled | all"
// @Success      200      {object} dto.SaleListResponse
// @Failure      400      {object} apierror.APIError
// @Router       /v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if filter.StoreID == "" {
		c.JSON(http.StatusBadRequest, apierror.New("store_id es requerido"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
