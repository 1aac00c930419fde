package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/juampy12/super-juampy-sub000/internal/apierror"
	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/middleware"
	"github.com/juampy12/super-juampy-sub000/internal/service"
)

type ClosureHandler struct{ svc service.ClosureService }

func NewClosureHandler(svc service.ClosureService) *ClosureHandler {
	return &ClosureHandler{svc: svc}
}

// Daily godoc
// @Summary Resumen de cierre de caja del dia
// @Tags cierre
// @Produce json
// @Security BearerAuth
// @Param date query string true "Dia local del local, YYYY-MM-DD"
// @Param store_id query string true "UUID del local"
// @Success 200 {object} closure.Summary
// @Failure 400 {object} apierror.APIError
// @Router /v1/cash-closure [get]
func (h *ClosureHandler) Daily(c *gin.Context) {
	date := c.Query("date")
	storeParam := c.Query("store_id")

	// Both params are preconditions, reject before touching the database.
	if date == "" || storeParam == "" {
		c.JSON(http.StatusBadRequest, apierror.New("date y store_id son requeridos"))
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("date invalida, formato YYYY-MM-DD"))
		return
	}
	storeID, err := uuid.Parse(storeParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("store_id invalido"))
		return
	}

	summary, err := h.svc.Daily(c.Request.Context(), storeID, date)
	if err != nil {
		// All-or-nothing: an upstream failure never yields a partial summary.
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el cierre"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Save godoc
// @Summary Persiste el cierre de caja de un dia
// @Tags cierre
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SaveClosureRequest true "Local y dia a cerrar"
// @Success 201 {object} dto.ClosureSavedResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/cash-closure [post]
func (h *ClosureHandler) Save(c *gin.Context) {
	var req dto.SaveClosureRequest
	if !bindAndValidate(c, &req) {
		return
	}

	var closedBy *uuid.UUID
	if claims := middleware.GetClaims(c); claims != nil {
		if id, err := uuid.Parse(claims.EmployeeID); err == nil {
			closedBy = &id
		}
	}

	resp, err := h.svc.Save(c.Request.Context(), req, closedBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al guardar el cierre"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
