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

// ── In-memory SaleRepository stub ────────────────────────────────────────────

type stubSaleRepo struct {
	sales   []model.Sale
	listErr error
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

func (r *stubSaleRepo) Confirm(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _ []dto.SaleItemRequest, _ json.RawMessage) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not implemented")
}

func (r *stubSaleRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Sale, error) {
	return nil, errors.New("not implemented")
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *stubSaleRepo) ListConfirmedByStore(_ context.Context, _ uuid.UUID) ([]model.Sale, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.sales, nil
}

// ── In-memory ClosureRepository stub ─────────────────────────────────────────

type stubClosureRepo struct {
	saved     *model.CashClosure
	upsertErr error
}

var _ repository.ClosureRepository = (*stubClosureRepo)(nil)

func (r *stubClosureRepo) Upsert(_ context.Context, c *model.CashClosure) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	cloned := *c
	if cloned.ID == uuid.Nil {
		cloned.ID = uuid.New()
	}
	cloned.CreatedAt = time.Now()
	r.saved = &cloned
	return nil
}

func (r *stubClosureRepo) FindByStoreAndDay(_ context.Context, storeID uuid.UUID, day string) (*model.CashClosure, error) {
	if r.saved == nil || r.saved.StoreID != storeID || r.saved.Day != day {
		return nil, errors.New("record not found")
	}
	return r.saved, nil
}

// ─────────────────────────────────────────────────────────────────────────────

func saleAt(ts time.Time, total string, payment string) model.Sale {
	return model.Sale{
		ID:        uuid.New(),
		StoreID:   uuid.New(),
		Total:     decimal.RequireFromString(total),
		Status:    "confirmed",
		Payment:   json.RawMessage(payment),
		CreatedAt: ts,
	}
}

func TestDailyAggregatesConfirmedSales(t *testing.T) {
	// 13:00 UTC = 10:00 store-local on the same day
	ts := time.Date(2025, 5, 10, 13, 0, 0, 0, time.UTC)
	repo := &stubSaleRepo{sales: []model.Sale{
		saleAt(ts, "100", `{"method":"efectivo","total_paid":120,"change":20}`),
		saleAt(ts.Add(time.Hour), "50", `{"method":"debito"}`),
	}}
	svc := NewClosureService(repo, &stubClosureRepo{}, nil)

	summary, err := svc.Daily(context.Background(), uuid.New(), "2025-05-10")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.KPIs.Tickets)
	assert.True(t, summary.KPIs.TotalAmount.Equal(decimal.NewFromInt(150)))
	assert.True(t, summary.KPIs.NetCash.Equal(decimal.NewFromInt(100)))
}

func TestDailyEmptyDayReturnsZeroSummary(t *testing.T) {
	svc := NewClosureService(&stubSaleRepo{}, &stubClosureRepo{}, nil)

	summary, err := svc.Daily(context.Background(), uuid.New(), "2025-05-10")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.KPIs.Tickets)
	assert.Len(t, summary.Methods, 5)
	assert.Empty(t, summary.Tickets)
}

func TestDailyPropagatesRepositoryError(t *testing.T) {
	repo := &stubSaleRepo{listErr: errors.New("db down")}
	svc := NewClosureService(repo, &stubClosureRepo{}, nil)

	summary, err := svc.Daily(context.Background(), uuid.New(), "2025-05-10")
	require.Error(t, err)
	assert.Nil(t, summary) // no partial result on upstream failure
}

func TestSavePersistsSnapshot(t *testing.T) {
	storeID := uuid.New()
	ts := time.Date(2025, 5, 10, 13, 0, 0, 0, time.UTC)
	sale := saleAt(ts, "100", `{"method":"efectivo","total_paid":100}`)
	sale.StoreID = storeID

	closures := &stubClosureRepo{}
	svc := NewClosureService(&stubSaleRepo{sales: []model.Sale{sale}}, closures, nil)

	closedBy := uuid.New()
	resp, err := svc.Save(context.Background(), dto.SaveClosureRequest{
		StoreID: storeID.String(),
		Date:    "2025-05-10",
	}, &closedBy)
	require.NoError(t, err)

	assert.Equal(t, "2025-05-10", resp.Day)
	assert.Equal(t, 1, resp.Tickets)
	assert.Equal(t, "100", resp.TotalAmount)

	require.NotNil(t, closures.saved)
	assert.Equal(t, storeID, closures.saved.StoreID)
	require.NotNil(t, closures.saved.ClosedBy)
	assert.Equal(t, closedBy, *closures.saved.ClosedBy)

	var snapshot map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(closures.saved.Summary, &snapshot))
	assert.Contains(t, snapshot, "kpis")
}

func TestSaveRejectsBadStoreID(t *testing.T) {
	svc := NewClosureService(&stubSaleRepo{}, &stubClosureRepo{}, nil)
	_, err := svc.Save(context.Background(), dto.SaveClosureRequest{StoreID: "nope", Date: "2025-05-10"}, nil)
	assert.Error(t, err)
}

func TestSavePropagatesUpsertError(t *testing.T) {
	closures := &stubClosureRepo{upsertErr: errors.New("constraint")}
	svc := NewClosureService(&stubSaleRepo{}, closures, nil)
	_, err := svc.Save(context.Background(), dto.SaveClosureRequest{
		StoreID: uuid.NewString(),
		Date:    "2025-05-10",
	}, nil)
	assert.Error(t, err)
}
