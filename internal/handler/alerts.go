package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/juampy12/super-juampy-sub000/internal/apierror"
	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/service"
	"github.com/juampy12/super-juampy-sub000/internal/worker"
)

// AlertsHandler serves the low-stock alert list. The list is refreshed by the
// stock-alert worker after each confirmed sale; on a cache miss the handler
// falls back to querying the database directly.
type AlertsHandler struct {
	catalog service.CatalogService
	rdb     *redis.Client
}

func NewAlertsHandler(catalog service.CatalogService, rdb *redis.Client) *AlertsHandler {
	return &AlertsHandler{catalog: catalog, rdb: rdb}
}

// StockAlerts godoc
// @Summary      Alertas de stock bajo de un local
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        store_id query string true "UUID del local"
// @Success      200 {array} dto.LowStockProduct
// @Failure      400 {object} apierror.APIError
// @Router       /v1/alerts/stock [get]
func (h *AlertsHandler) StockAlerts(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("store_id invalido"))
		return
	}

	if h.rdb != nil {
		if cached, err := h.rdb.Get(c.Request.Context(), worker.AlertsKey(storeID.String())).Bytes(); err == nil {
			var rows []dto.LowStockProduct
			if json.Unmarshal(cached, &rows) == nil {
				c.JSON(http.StatusOK, rows)
				return
			}
		}
	}

	rows, err := h.catalog.LowStock(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar alertas"))
		return
	}
	c.JSON(http.StatusOK, rows)
}
