package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/model"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
	"github.com/juampy12/super-juampy-sub000/internal/worker"
)

// SaleService is the thin forwarding layer around checkout. All pricing,
// stock adjustment and atomicity live in the confirm_sale procedure; this
// service validates identifiers, forwards, and reads the confirmed sale back.
type SaleService interface {
	Confirm(ctx context.Context, employeeID *uuid.UUID, req dto.ConfirmSaleRequest) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
}

type saleService struct {
	repo       repository.SaleRepository
	dispatcher *worker.Dispatcher // nil disables async jobs (unit tests)
}

func NewSaleService(repo repository.SaleRepository, dispatcher *worker.Dispatcher) SaleService {
	return &saleService{repo: repo, dispatcher: dispatcher}
}

func (s *saleService) Confirm(ctx context.Context, employeeID *uuid.UUID, req dto.ConfirmSaleRequest) (*dto.SaleResponse, error) {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, fmt.Errorf("store_id invalido: %w", err)
	}

	saleID, err := s.repo.Confirm(ctx, storeID, employeeID, req.Items, req.Payment)
	if err != nil {
		return nil, err
	}

	sale, err := s.repo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	// Async low-stock recheck, best effort, fire & forget
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueStockAlert(ctx, map[string]interface{}{
			"store_id": req.StoreID,
		})
	}

	return saleToResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Status == "" {
		filter.Status = "confirmed"
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		items = append(items, *saleToResponse(&sale))
	}
	return &dto.SaleListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.SaleItemResponse{
			Product:   name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:        sale.ID.String(),
		StoreID:   sale.StoreID.String(),
		Total:     sale.Total,
		Status:    sale.Status,
		Items:     items,
		Payment:   sale.Payment,
		CreatedAt: sale.CreatedAt.Format(time.RFC3339),
	}
}
