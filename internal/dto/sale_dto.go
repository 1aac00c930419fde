package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ─── Filter / List ──────────────────────────────────────────────────────────

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	StoreID string `form:"store_id" validate:"required,uuid"`
	Date    string `form:"date"`                     // YYYY-MM-DD store-local; empty = today
	Status  string `form:"status,default=confirmed"` // confirmed | cancelled | all
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

// ConfirmSaleRequest is forwarded verbatim to the confirm_sale procedure.
// Payment is passed through untouched: the procedure and later the closure
// aggregation both read it as loosely-typed JSON.
type ConfirmSaleRequest struct {
	StoreID string            `json:"store_id" validate:"required,uuid"`
	Items   []SaleItemRequest `json:"items"    validate:"required,min=1,dive"`
	Payment json.RawMessage   `json:"payment"  validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID        string             `json:"id"`
	StoreID   string             `json:"store_id"`
	Total     decimal.Decimal    `json:"total"`
	Status    string             `json:"status"`
	Items     []SaleItemResponse `json:"items"`
	Payment   json.RawMessage    `json:"payment"`
	CreatedAt string             `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
