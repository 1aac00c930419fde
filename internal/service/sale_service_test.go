package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/model"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

// confirmingSaleRepo records the forwarded confirm_sale call and serves the
// resulting sale back.
type confirmingSaleRepo struct {
	confirmErr   error
	gotStoreID   uuid.UUID
	gotItems     []dto.SaleItemRequest
	gotPayment   json.RawMessage
	confirmedID  uuid.UUID
	confirmedRow *model.Sale
}

var _ repository.SaleRepository = (*confirmingSaleRepo)(nil)

func (r *confirmingSaleRepo) Confirm(_ context.Context, storeID uuid.UUID, _ *uuid.UUID, items []dto.SaleItemRequest, payment json.RawMessage) (uuid.UUID, error) {
	if r.confirmErr != nil {
		return uuid.Nil, r.confirmErr
	}
	r.gotStoreID = storeID
	r.gotItems = items
	r.gotPayment = payment
	return r.confirmedID, nil
}

func (r *confirmingSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	if r.confirmedRow == nil || r.confirmedRow.ID != id {
		return nil, errors.New("record not found")
	}
	return r.confirmedRow, nil
}

func (r *confirmingSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	return nil, 0, nil
}

func (r *confirmingSaleRepo) ListConfirmedByStore(_ context.Context, _ uuid.UUID) ([]model.Sale, error) {
	return nil, nil
}

func TestConfirmForwardsToProcedure(t *testing.T) {
	storeID := uuid.New()
	saleID := uuid.New()
	repo := &confirmingSaleRepo{
		confirmedID: saleID,
		confirmedRow: &model.Sale{
			ID:        saleID,
			StoreID:   storeID,
			Total:     decimal.NewFromInt(150),
			Status:    "confirmed",
			Payment:   json.RawMessage(`{"method":"efectivo"}`),
			CreatedAt: time.Now(),
		},
	}
	svc := NewSaleService(repo, nil)

	productID := uuid.NewString()
	resp, err := svc.Confirm(context.Background(), nil, dto.ConfirmSaleRequest{
		StoreID: storeID.String(),
		Items:   []dto.SaleItemRequest{{ProductID: productID, Quantity: 2}},
		Payment: json.RawMessage(`{"method":"efectivo","total_paid":200,"change":50}`),
	})
	require.NoError(t, err)

	assert.Equal(t, storeID, repo.gotStoreID)
	require.Len(t, repo.gotItems, 1)
	assert.Equal(t, productID, repo.gotItems[0].ProductID)
	assert.JSONEq(t, `{"method":"efectivo","total_paid":200,"change":50}`, string(repo.gotPayment))

	assert.Equal(t, saleID.String(), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(150)))
}

func TestConfirmRejectsBadStoreID(t *testing.T) {
	svc := NewSaleService(&confirmingSaleRepo{}, nil)
	_, err := svc.Confirm(context.Background(), nil, dto.ConfirmSaleRequest{StoreID: "nope"})
	assert.Error(t, err)
}

func TestConfirmPropagatesProcedureError(t *testing.T) {
	repo := &confirmingSaleRepo{confirmErr: errors.New("stock insuficiente")}
	svc := NewSaleService(repo, nil)
	_, err := svc.Confirm(context.Background(), nil, dto.ConfirmSaleRequest{
		StoreID: uuid.NewString(),
		Payment: json.RawMessage(`{"method":"debito"}`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock insuficiente")
}

func TestListDefaults(t *testing.T) {
	svc := NewSaleService(&confirmingSaleRepo{}, nil)
	resp, err := svc.List(context.Background(), dto.SaleFilter{StoreID: uuid.NewString()})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 50, resp.Limit)
	assert.NotNil(t, resp.Data)
}
