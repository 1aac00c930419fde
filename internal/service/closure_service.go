package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/juampy12/super-juampy-sub000/internal/closure"
	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/model"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

const closureCacheTTL = 60 * time.Second

// ClosureService produces and persists daily cash-closure summaries.
type ClosureService interface {
	// Daily fetches every confirmed sale of the store (single round trip, no
	// date pushdown) and aggregates the requested store-local day. A day with
	// no sales yields a fully-populated zero summary, never an error.
	Daily(ctx context.Context, storeID uuid.UUID, date string) (*closure.Summary, error)
	Save(ctx context.Context, req dto.SaveClosureRequest, closedBy *uuid.UUID) (*dto.ClosureSavedResponse, error)
}

type closureService struct {
	sales    repository.SaleRepository
	closures repository.ClosureRepository
	rdb      *redis.Client // nil disables caching (unit tests)
}

func NewClosureService(sales repository.SaleRepository, closures repository.ClosureRepository, rdb *redis.Client) ClosureService {
	return &closureService{sales: sales, closures: closures, rdb: rdb}
}

func (s *closureService) Daily(ctx context.Context, storeID uuid.UUID, date string) (*closure.Summary, error) {
	cacheKey := "closure:" + storeID.String() + ":" + date

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var summary closure.Summary
			if jsonErr := json.Unmarshal(cached, &summary); jsonErr == nil {
				return &summary, nil
			}
		}
	}

	sales, err := s.sales.ListConfirmedByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	summary := closure.Aggregate(date, toRecords(sales))

	// Populate cache, best effort
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(summary); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, closureCacheTTL).Err()
		}
	}

	return summary, nil
}

func (s *closureService) Save(ctx context.Context, req dto.SaveClosureRequest, closedBy *uuid.UUID) (*dto.ClosureSavedResponse, error) {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, err
	}

	// Recompute from the source of truth, never from a cached snapshot.
	sales, err := s.sales.ListConfirmedByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	summary := closure.Aggregate(req.Date, toRecords(sales))

	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	c := &model.CashClosure{
		StoreID:     storeID,
		Day:         req.Date,
		TotalAmount: summary.KPIs.TotalAmount,
		Tickets:     summary.KPIs.Tickets,
		NetCash:     summary.KPIs.NetCash,
		Summary:     raw,
		ClosedBy:    closedBy,
	}
	if err := s.closures.Upsert(ctx, c); err != nil {
		return nil, err
	}

	saved, err := s.closures.FindByStoreAndDay(ctx, storeID, req.Date)
	if err != nil {
		return nil, err
	}

	return &dto.ClosureSavedResponse{
		ID:          saved.ID.String(),
		StoreID:     saved.StoreID.String(),
		Day:         saved.Day,
		TotalAmount: saved.TotalAmount.String(),
		Tickets:     saved.Tickets,
		NetCash:     saved.NetCash.String(),
		CreatedAt:   saved.CreatedAt.Format(time.RFC3339),
	}, nil
}

// toRecords converts persisted sales into aggregator input. Payment JSON is
// parsed leniently here so a corrupt payment column degrades one row instead
// of aborting the closure.
func toRecords(sales []model.Sale) []closure.SaleRecord {
	records := make([]closure.SaleRecord, 0, len(sales))
	for _, sale := range sales {
		records = append(records, closure.SaleRecord{
			ID:        sale.ID.String(),
			CreatedAt: sale.CreatedAt,
			Total:     sale.Total,
			Payment:   closure.ParsePayment(sale.Payment),
		})
	}
	return records
}
