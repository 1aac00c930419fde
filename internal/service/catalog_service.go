package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/model"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

// CatalogService owns product CRUD. When a filter carries a store id, the
// listing is answered by the products_with_stock database function instead of
// the products table.
type CatalogService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	LowStock(ctx context.Context, storeID uuid.UUID) ([]dto.LowStockProduct, error)
}

type catalogService struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if existing, err := s.repo.FindByBarcode(ctx, req.Barcode); err == nil && existing != nil {
		return nil, errors.New("ya existe un producto con ese codigo de barras")
	}

	unit := req.Unit
	if unit == "" {
		unit = "unidad"
	}
	p := &model.Product{
		Barcode:     req.Barcode,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        unit,
		Active:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *catalogService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	return productToResponse(p), nil
}

func (s *catalogService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	// Store-scoped listing goes through the products_with_stock function so
	// stock figures come from the same source checkout decrements.
	if filter.StoreID != "" {
		storeID, err := uuid.Parse(filter.StoreID)
		if err != nil {
			return nil, errors.New("store_id invalido")
		}
		rows, err := s.repo.ListWithStock(ctx, storeID)
		if err != nil {
			return nil, err
		}
		items := make([]dto.ProductResponse, 0, len(rows))
		for _, row := range rows {
			stock := row.Stock
			items = append(items, dto.ProductResponse{
				ID:       row.ID,
				Barcode:  row.Barcode,
				Name:     row.Name,
				Category: row.Category,
				Price:    row.Price,
				Active:   true,
				Stock:    &stock,
			})
		}
		return &dto.ProductListResponse{
			Data:  items,
			Total: int64(len(items)),
			Page:  1,
			Limit: len(items),
		}, nil
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *productToResponse(&p))
	}
	return &dto.ProductListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *catalogService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *catalogService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *catalogService) Reactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivate(ctx, id)
}

func (s *catalogService) LowStock(ctx context.Context, storeID uuid.UUID) ([]dto.LowStockProduct, error) {
	return s.repo.LowStock(ctx, storeID)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		Barcode:     p.Barcode,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Unit:        p.Unit,
		Active:      p.Active,
	}
}
