package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/juampy12/super-juampy-sub000/internal/dto"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

const priceCacheTTL = 5 * time.Minute

var ErrProductNotFound = errors.New("producto no encontrado")

// PriceService resolves the effective price of a barcode for the price
// checker kiosks. Results are cached in Redis because the same handful of
// products gets scanned over and over during peak hours.
type PriceService interface {
	Lookup(ctx context.Context, barcode string) (*dto.PriceLookupResponse, error)
}

type priceService struct {
	products repository.ProductRepository
	offers   OfferService
	rdb      *redis.Client
}

func NewPriceService(products repository.ProductRepository, offers OfferService, rdb *redis.Client) PriceService {
	return &priceService{products: products, offers: offers, rdb: rdb}
}

func (s *priceService) Lookup(ctx context.Context, barcode string) (*dto.PriceLookupResponse, error) {
	key := "price:" + barcode

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp dto.PriceLookupResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	p, err := s.products.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, ErrProductNotFound
	}

	final, pct := s.offers.Discounted(ctx, p.ID, p.Price)
	resp := &dto.PriceLookupResponse{
		Name:       p.Name,
		Price:      p.Price,
		OfferPct:   pct,
		FinalPrice: final,
		Category:   p.Category,
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, payload, priceCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("barcode", barcode).Msg("no se pudo cachear el precio")
			}
		}
	}
	return resp, nil
}
