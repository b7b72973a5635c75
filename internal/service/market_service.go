package service

import (
	"context"
	"strings"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/repository"
	"finance-dashboard/pkg/cache"
	"finance-dashboard/pkg/logger"
)

const marketCacheTTL = 5 * time.Minute

type MarketService interface {
	Stocks(ctx context.Context, query string) []dto.Listing
	Crypto(ctx context.Context, query string) []dto.Listing
}

type marketService struct {
	log        *logger.Logger
	marketRepo repository.MarketRepository
	cache      cache.Cache
}

func NewMarketService(log *logger.Logger, marketRepo repository.MarketRepository, inmemoryCache cache.Cache) MarketService {
	return &marketService{
		log:        log,
		marketRepo: marketRepo,
		cache:      inmemoryCache,
	}
}

func (s *marketService) Stocks(ctx context.Context, query string) []dto.Listing {
	return s.filtered(ctx, "market:stocks:", s.marketRepo.Stocks, query)
}

func (s *marketService) Crypto(ctx context.Context, query string) []dto.Listing {
	return s.filtered(ctx, "market:crypto:", s.marketRepo.Crypto, query)
}

func (s *marketService) filtered(ctx context.Context, keyPrefix string, source func() []dto.Listing, query string) []dto.Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	cacheKey := keyPrefix + query

	if cached, found := cache.Get[[]dto.Listing](s.cache, cacheKey); found {
		return cached
	}

	listings := source()
	if query != "" {
		filtered := make([]dto.Listing, 0, len(listings))
		for _, l := range listings {
			if strings.Contains(strings.ToLower(l.Symbol), query) || strings.Contains(strings.ToLower(l.Name), query) {
				filtered = append(filtered, l)
			}
		}
		listings = filtered
	}

	s.cache.Set(cacheKey, listings, marketCacheTTL)
	return listings
}
