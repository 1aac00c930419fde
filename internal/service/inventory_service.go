package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

// InventoryService covers the manual stock path only. Sale-driven stock
// movements belong to confirm_sale and never pass through here.
type InventoryService interface {
	Adjust(ctx context.Context, productID uuid.UUID, req dto.AdjustStockRequest) error
}

type inventoryService struct {
	stocks   repository.StockRepository
	products repository.ProductRepository
}

func NewInventoryService(stocks repository.StockRepository, products repository.ProductRepository) InventoryService {
	return &inventoryService{stocks: stocks, products: products}
}

func (s *inventoryService) Adjust(ctx context.Context, productID uuid.UUID, req dto.AdjustStockRequest) error {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return fmt.Errorf("store_id invalido: %w", err)
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return errors.New("producto no encontrado")
	}
	if !p.Active {
		return errors.New("el producto esta inactivo")
	}

	if req.Delta < 0 {
		current, err := s.stocks.Find(ctx, productID, storeID)
		if err == nil && current.Quantity+req.Delta < 0 {
			return errors.New("el ajuste dejaria el stock en negativo")
		}
	}

	if err := s.stocks.Adjust(ctx, productID, storeID, req.Delta); err != nil {
		return err
	}

	log.Info().
		Str("product_id", productID.String()).
		Str("store_id", req.StoreID).
		Int("delta", req.Delta).
		Str("reason", req.Reason).
		Msg("manual stock adjustment")
	return nil
}
