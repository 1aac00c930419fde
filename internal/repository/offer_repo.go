package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/juampy12/super-juampy-sub000/internal/model"
)

type OfferRepository interface {
	Create(ctx context.Context, o *model.ProductOffer) error
	List(ctx context.Context) ([]model.ProductOffer, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	// FindActiveForProduct returns the highest-discount active offer covering
	// the given instant, or gorm.ErrRecordNotFound.
	FindActiveForProduct(ctx context.Context, productID uuid.UUID, at time.Time) (*model.ProductOffer, error)
}

type offerRepo struct{ db *gorm.DB }

func NewOfferRepository(db *gorm.DB) OfferRepository { return &offerRepo{db: db} }

func (r *offerRepo) Create(ctx context.Context, o *model.ProductOffer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *offerRepo) List(ctx context.Context) ([]model.ProductOffer, error) {
	var offers []model.ProductOffer
	err := r.db.WithContext(ctx).Preload("Product").
		Where("active = true").Order("starts_at DESC").Find(&offers).Error
	return offers, err
}

func (r *offerRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ProductOffer{}).
		Where("id = ?", id).Update("active", false).Error
}

func (r *offerRepo) FindActiveForProduct(ctx context.Context, productID uuid.UUID, at time.Time) (*model.ProductOffer, error) {
	var o model.ProductOffer
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND active = true AND starts_at <= ? AND ends_at >= ?", productID, at, at).
		Order("discount_pct DESC").
		First(&o).Error
	return &o, err
}
