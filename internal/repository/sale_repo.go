package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/model"
)

// SaleRepository is the data access contract for sales. Checkout is NOT
// implemented in Go: Confirm forwards to the confirm_sale procedure, which
// prices the items, decrements per-store stock and writes sales + sale_items
// in one database transaction. Its contract:
//
//	confirm_sale(store uuid, employee uuid, items jsonb, payment jsonb) → uuid
//
// Inputs: items as [{product_id, quantity}], payment as the loosely-typed
// payment object. Output: the new sale id, status already 'confirmed'.
// Errors: raises on unknown product, inactive product, or insufficient stock;
// those surface here as a plain query error.
type SaleRepository interface {
	Confirm(ctx context.Context, storeID uuid.UUID, employeeID *uuid.UUID, items []dto.SaleItemRequest, payment json.RawMessage) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error)
	// ListConfirmedByStore returns every confirmed sale of the store ordered by
	// created_at ASC, with no date filter. The store-local day filter is
	// applied in-process by the closure aggregator.
	ListConfirmedByStore(ctx context.Context, storeID uuid.UUID) ([]model.Sale, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Confirm(ctx context.Context, storeID uuid.UUID, employeeID *uuid.UUID, items []dto.SaleItemRequest, payment json.RawMessage) (uuid.UUID, error) {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return uuid.Nil, err
	}

	var saleID uuid.UUID
	err = r.db.WithContext(ctx).
		Raw("SELECT confirm_sale(?::uuid, ?::uuid, ?::jsonb, ?::jsonb)",
			storeID, employeeID, string(itemsJSON), string(payment)).
		Scan(&saleID).Error
	return saleID, err
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items.Product").First(&s, id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Sale{}).Where("store_id = ?", filter.StoreID)

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		// Store-local day boundary, fixed UTC-3 offset
		q = q.Where("DATE(created_at - interval '3 hours') = ?", filter.Date)
	} else {
		q = q.Where("DATE(created_at - interval '3 hours') = DATE(now() - interval '3 hours')")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items.Product").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepo) ListConfirmedByStore(ctx context.Context, storeID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND status = 'confirmed'", storeID).
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}
