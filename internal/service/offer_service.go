package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/model"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

const offerDateLayout = "2006-01-02"

type OfferService interface {
	Create(ctx context.Context, req dto.CreateOfferRequest) (*dto.OfferResponse, error)
	List(ctx context.Context) ([]dto.OfferResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	// Discounted returns the effective price of a product right now.
	Discounted(ctx context.Context, productID uuid.UUID, price decimal.Decimal) (decimal.Decimal, *decimal.Decimal)
}

type offerService struct {
	repo     repository.OfferRepository
	products repository.ProductRepository
}

func NewOfferService(repo repository.OfferRepository, products repository.ProductRepository) OfferService {
	return &offerService{repo: repo, products: products}
}

func (s *offerService) Create(ctx context.Context, req dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, errors.New("product_id invalido")
	}
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	startsAt, err := time.Parse(offerDateLayout, req.StartsAt)
	if err != nil {
		return nil, errors.New("starts_at invalida")
	}
	endsAt, err := time.Parse(offerDateLayout, req.EndsAt)
	if err != nil {
		return nil, errors.New("ends_at invalida")
	}
	if endsAt.Before(startsAt) {
		return nil, errors.New("la oferta termina antes de empezar")
	}
	if req.DiscountPct.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return nil, errors.New("el descuento debe ser menor al 100%")
	}

	o := &model.ProductOffer{
		ProductID:   productID,
		DiscountPct: req.DiscountPct,
		StartsAt:    startsAt,
		EndsAt:      endsAt.Add(24*time.Hour - time.Second), // inclusive end day
		Active:      true,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	o.Product = p
	return offerToResponse(o), nil
}

func (s *offerService) List(ctx context.Context) ([]dto.OfferResponse, error) {
	offers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		items = append(items, *offerToResponse(&o))
	}
	return items, nil
}

func (s *offerService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *offerService) Discounted(ctx context.Context, productID uuid.UUID, price decimal.Decimal) (decimal.Decimal, *decimal.Decimal) {
	o, err := s.repo.FindActiveForProduct(ctx, productID, time.Now())
	if err != nil {
		return price, nil
	}
	hundred := decimal.NewFromInt(100)
	final := price.Mul(hundred.Sub(o.DiscountPct)).Div(hundred).Round(2)
	pct := o.DiscountPct
	return final, &pct
}

func offerToResponse(o *model.ProductOffer) *dto.OfferResponse {
	name := ""
	if o.Product != nil {
		name = o.Product.Name
	}
	return &dto.OfferResponse{
		ID:          o.ID.String(),
		ProductID:   o.ProductID.String(),
		Product:     name,
		DiscountPct: o.DiscountPct,
		StartsAt:    o.StartsAt.Format(offerDateLayout),
		EndsAt:      o.EndsAt.Format(offerDateLayout),
		Active:      o.Active,
	}
}
