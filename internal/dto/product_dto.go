package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	Barcode  string `form:"barcode"`
	Name     string `form:"name"`
	Category string `form:"category"`
	// Active: "false" = inactive only, "all" = everything, default active only
	Active  string `form:"active"`
	StoreID string `form:"store_id"` // when set, stock is resolved per store
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Barcode     string          `json:"barcode"     validate:"required,min=4"`
	Name        string          `json:"name"        validate:"required,min=2"`
	Description *string         `json:"description"`
	Category    string          `json:"category"    validate:"required"`
	Price       decimal.Decimal `json:"price"       validate:"required,gt=0"`
	Unit        string          `json:"unit"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=2"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,gt=0"`
	Unit        *string          `json:"unit"`
}

type AdjustStockRequest struct {
	StoreID string `json:"store_id" validate:"required,uuid"`
	Delta   int    `json:"delta"    validate:"required"`
	Reason  string `json:"reason"   validate:"required,min=3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          string          `json:"id"`
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Active      bool            `json:"active"`
	// Stock is present only when the request was scoped to a store.
	Stock *int `json:"stock,omitempty"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ProductWithStock is one row of the products_with_stock database function.
type ProductWithStock struct {
	ID       string          `json:"id"`
	Barcode  string          `json:"barcode"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
}

// LowStockProduct is one row of the low_stock_products database function.
type LowStockProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

// PriceLookupResponse is the cached payload of GET /v1/price/:barcode.
type PriceLookupResponse struct {
	Name       string           `json:"name"`
	Price      decimal.Decimal  `json:"price"`
	OfferPct   *decimal.Decimal `json:"offer_pct,omitempty"`
	FinalPrice decimal.Decimal  `json:"final_price"`
	Category   string           `json:"category"`
}
