package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/juampy12/super-juampy-sub000/internal/model"
)

// StockRepository handles the per-store stock rows. Sale-driven stock
// movements happen inside confirm_sale; this interface only covers the manual
// adjustment path (receiving goods, corrections).
type StockRepository interface {
	Find(ctx context.Context, productID, storeID uuid.UUID) (*model.ProductStock, error)
	// Adjust applies a signed delta atomically; the row is created at zero when
	// the product has never been stocked in this store.
	Adjust(ctx context.Context, productID, storeID uuid.UUID, delta int) error
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) Find(ctx context.Context, productID, storeID uuid.UUID) (*model.ProductStock, error) {
	var s model.ProductStock
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND store_id = ?", productID, storeID).
		First(&s).Error
	return &s, err
}

func (r *stockRepo) Adjust(ctx context.Context, productID, storeID uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO product_stocks (product_id, store_id, quantity, updated_at)
		VALUES (?, ?, ?, now())
		ON CONFLICT (product_id, store_id)
		DO UPDATE SET quantity = product_stocks.quantity + EXCLUDED.quantity,
		              updated_at = now()
	`, productID, storeID, delta).Error
}
