package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/model"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

type stubOfferRepo struct {
	offers map[uuid.UUID]*model.ProductOffer
}

var _ repository.OfferRepository = (*stubOfferRepo)(nil)

func newStubOfferRepo() *stubOfferRepo {
	return &stubOfferRepo{offers: map[uuid.UUID]*model.ProductOffer{}}
}

func (r *stubOfferRepo) Create(_ context.Context, o *model.ProductOffer) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cloned := *o
	r.offers[o.ID] = &cloned
	return nil
}

func (r *stubOfferRepo) List(_ context.Context) ([]model.ProductOffer, error) {
	out := []model.ProductOffer{}
	for _, o := range r.offers {
		if o.Active {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOfferRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if o, ok := r.offers[id]; ok {
		o.Active = false
	}
	return nil
}

func (r *stubOfferRepo) FindActiveForProduct(_ context.Context, productID uuid.UUID, at time.Time) (*model.ProductOffer, error) {
	var best *model.ProductOffer
	for _, o := range r.offers {
		if o.ProductID != productID || !o.Active || at.Before(o.StartsAt) || at.After(o.EndsAt) {
			continue
		}
		if best == nil || o.DiscountPct.GreaterThan(best.DiscountPct) {
			best = o
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

type stubProductRepoForOffers struct {
	product *model.Product
}

func (r *stubProductRepoForOffers) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	if r.product != nil && r.product.ID == id {
		return r.product, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepoForOffers) Create(_ context.Context, _ *model.Product) error { return nil }
func (r *stubProductRepoForOffers) FindByBarcode(_ context.Context, _ string) (*model.Product, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubProductRepoForOffers) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	return nil, 0, nil
}
func (r *stubProductRepoForOffers) Update(_ context.Context, _ *model.Product) error    { return nil }
func (r *stubProductRepoForOffers) SoftDelete(_ context.Context, _ uuid.UUID) error     { return nil }
func (r *stubProductRepoForOffers) Reactivate(_ context.Context, _ uuid.UUID) error     { return nil }
func (r *stubProductRepoForOffers) ListWithStock(_ context.Context, _ uuid.UUID) ([]dto.ProductWithStock, error) {
	return nil, nil
}
func (r *stubProductRepoForOffers) LowStock(_ context.Context, _ uuid.UUID) ([]dto.LowStockProduct, error) {
	return nil, nil
}

var _ repository.ProductRepository = (*stubProductRepoForOffers)(nil)

func TestCreateOfferValidations(t *testing.T) {
	product := &model.Product{ID: uuid.New(), Name: "Yerba 1kg", Active: true}
	svc := NewOfferService(newStubOfferRepo(), &stubProductRepoForOffers{product: product})

	// Unknown product
	_, err := svc.Create(context.Background(), dto.CreateOfferRequest{
		ProductID:   uuid.NewString(),
		DiscountPct: decimal.NewFromInt(10),
		StartsAt:    "2025-05-01",
		EndsAt:      "2025-05-31",
	})
	assert.Error(t, err)

	// Ends before it starts
	_, err = svc.Create(context.Background(), dto.CreateOfferRequest{
		ProductID:   product.ID.String(),
		DiscountPct: decimal.NewFromInt(10),
		StartsAt:    "2025-05-31",
		EndsAt:      "2025-05-01",
	})
	assert.Error(t, err)

	// Discount must stay below 100%
	_, err = svc.Create(context.Background(), dto.CreateOfferRequest{
		ProductID:   product.ID.String(),
		DiscountPct: decimal.NewFromInt(100),
		StartsAt:    "2025-05-01",
		EndsAt:      "2025-05-31",
	})
	assert.Error(t, err)

	resp, err := svc.Create(context.Background(), dto.CreateOfferRequest{
		ProductID:   product.ID.String(),
		DiscountPct: decimal.NewFromInt(20),
		StartsAt:    "2025-05-01",
		EndsAt:      "2025-05-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "Yerba 1kg", resp.Product)
	assert.True(t, resp.Active)
}

func TestDiscountedPicksHighestActiveOffer(t *testing.T) {
	product := &model.Product{ID: uuid.New(), Active: true}
	repo := newStubOfferRepo()
	now := time.Now()

	for _, pct := range []int64{10, 25} {
		require.NoError(t, repo.Create(context.Background(), &model.ProductOffer{
			ProductID:   product.ID,
			DiscountPct: decimal.NewFromInt(pct),
			StartsAt:    now.Add(-time.Hour),
			EndsAt:      now.Add(time.Hour),
			Active:      true,
		}))
	}

	svc := NewOfferService(repo, &stubProductRepoForOffers{product: product})
	final, pct := svc.Discounted(context.Background(), product.ID, decimal.NewFromInt(1000))
	require.NotNil(t, pct)
	assert.True(t, pct.Equal(decimal.NewFromInt(25)))
	assert.True(t, final.Equal(decimal.NewFromInt(750)))
}

func TestDiscountedNoOfferReturnsListPrice(t *testing.T) {
	product := &model.Product{ID: uuid.New(), Active: true}
	svc := NewOfferService(newStubOfferRepo(), &stubProductRepoForOffers{product: product})

	final, pct := svc.Discounted(context.Background(), product.ID, decimal.NewFromInt(500))
	assert.Nil(t, pct)
	assert.True(t, final.Equal(decimal.NewFromInt(500)))
}
