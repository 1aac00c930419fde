package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juampy12/super-juampy-sub000/internal/apierror"
	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

type StoresHandler struct{ repo repository.StoreRepository }

func NewStoresHandler(repo repository.StoreRepository) *StoresHandler {
	return &StoresHandler{repo: repo}
}

// List returns every active store. Public: the PIN login screen needs it
// before any token exists.
func (h *StoresHandler) List(c *gin.Context) {
	stores, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar locales"))
		return
	}
	resp := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		resp = append(resp, dto.StoreResponse{
			ID:      s.ID.String(),
			Name:    s.Name,
			Address: s.Address,
			Active:  s.Active,
		})
	}
	c.JSON(http.StatusOK, resp)
}
