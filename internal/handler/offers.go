package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/juampy12/super-juampy-sub000/internal/apierror"
	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/service"
)

type OffersHandler struct{ svc service.OfferService }

func NewOffersHandler(svc service.OfferService) *OffersHandler { return &OffersHandler{svc: svc} }

// Create godoc
// @Summary Crea una oferta sobre un producto
// @Tags ofertas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateOfferRequest true "Oferta"
// @Success 201 {object} dto.OfferResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/offers [post]
func (h *OffersHandler) Create(c *gin.Context) {
	var req dto.CreateOfferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List returns all active offers.
func (h *OffersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ofertas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deactivate ends an offer early.
func (h *OffersHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
