package dto

import "github.com/shopspring/decimal"

type CreateOfferRequest struct {
	ProductID   string          `json:"product_id"   validate:"required,uuid"`
	DiscountPct decimal.Decimal `json:"discount_pct" validate:"required,gt=0"`
	StartsAt    string          `json:"starts_at"    validate:"required,datetime=2006-01-02"`
	EndsAt      string          `json:"ends_at"      validate:"required,datetime=2006-01-02"`
}

type OfferResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Product     string          `json:"product"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	StartsAt    string          `json:"starts_at"`
	EndsAt      string          `json:"ends_at"`
	Active      bool            `json:"active"`
}
