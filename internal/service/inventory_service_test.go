package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/model"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

type stubStockRepo struct {
	stocks map[string]int // productID|storeID -> quantity
}

var _ repository.StockRepository = (*stubStockRepo)(nil)

func newStubStockRepo() *stubStockRepo { return &stubStockRepo{stocks: map[string]int{}} }

func stockKey(productID, storeID uuid.UUID) string {
	return productID.String() + "|" + storeID.String()
}

func (r *stubStockRepo) Find(_ context.Context, productID, storeID uuid.UUID) (*model.ProductStock, error) {
	q, ok := r.stocks[stockKey(productID, storeID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.ProductStock{ProductID: productID, StoreID: storeID, Quantity: q}, nil
}

func (r *stubStockRepo) Adjust(_ context.Context, productID, storeID uuid.UUID, delta int) error {
	r.stocks[stockKey(productID, storeID)] += delta
	return nil
}

func TestAdjustStock(t *testing.T) {
	product := &model.Product{ID: uuid.New(), Active: true}
	storeID := uuid.New()
	stocks := newStubStockRepo()
	stocks.stocks[stockKey(product.ID, storeID)] = 10

	svc := NewInventoryService(stocks, &stubProductRepoForOffers{product: product})

	err := svc.Adjust(context.Background(), product.ID, dto.AdjustStockRequest{
		StoreID: storeID.String(),
		Delta:   -4,
		Reason:  "rotura en deposito",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, stocks.stocks[stockKey(product.ID, storeID)])
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	product := &model.Product{ID: uuid.New(), Active: true}
	storeID := uuid.New()
	stocks := newStubStockRepo()
	stocks.stocks[stockKey(product.ID, storeID)] = 3

	svc := NewInventoryService(stocks, &stubProductRepoForOffers{product: product})

	err := svc.Adjust(context.Background(), product.ID, dto.AdjustStockRequest{
		StoreID: storeID.String(),
		Delta:   -5,
		Reason:  "conteo",
	})
	require.Error(t, err)
	assert.Equal(t, 3, stocks.stocks[stockKey(product.ID, storeID)])
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	svc := NewInventoryService(newStubStockRepo(), &stubProductRepoForOffers{})
	err := svc.Adjust(context.Background(), uuid.New(), dto.AdjustStockRequest{
		StoreID: uuid.NewString(),
		Delta:   1,
		Reason:  "ingreso",
	})
	assert.Error(t, err)
}

func TestAdjustStockInactiveProduct(t *testing.T) {
	product := &model.Product{ID: uuid.New(), Active: false}
	svc := NewInventoryService(newStubStockRepo(), &stubProductRepoForOffers{product: product})
	err := svc.Adjust(context.Background(), product.ID, dto.AdjustStockRequest{
		StoreID: uuid.NewString(),
		Delta:   1,
		Reason:  "ingreso",
	})
	assert.Error(t, err)
}
