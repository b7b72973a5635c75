package service

import (
	"context"
	"fmt"
	"strings"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/model"
	"finance-dashboard/internal/repository"
	"finance-dashboard/pkg/logger"
)

type PortfolioService interface {
	GetPortfolio(ctx context.Context, userID uint) (*dto.PortfolioResponse, error)
	AddItem(ctx context.Context, userID uint, req dto.AddPortfolioItemRequest) (*model.PortfolioItem, error)
}

type portfolioService struct {
	log           *logger.Logger
	portfolioRepo repository.PortfolioRepository
}

func NewPortfolioService(log *logger.Logger, portfolioRepo repository.PortfolioRepository) PortfolioService {
	return &portfolioService{
		log:           log,
		portfolioRepo: portfolioRepo,
	}
}

func (s *portfolioService) GetPortfolio(ctx context.Context, userID uint) (*dto.PortfolioResponse, error) {
	items, err := s.portfolioRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch portfolio: %w", err)
	}

	positions, totalValue := Aggregate(items)

	return &dto.PortfolioResponse{
		Portfolio:  positions,
		TotalValue: totalValue,
		TotalItems: len(items),
	}, nil
}

func (s *portfolioService) AddItem(ctx context.Context, userID uint, req dto.AddPortfolioItemRequest) (*model.PortfolioItem, error) {
	assetType := req.AssetType
	if assetType == "" {
		assetType = model.AssetTypeStock
	}

	item := &model.PortfolioItem{
		UserID:       userID,
		Symbol:       strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Name:         strings.TrimSpace(req.Name),
		Quantity:     req.Quantity,
		AveragePrice: req.AveragePrice,
		CurrentPrice: req.CurrentPrice,
		TotalValue:   req.Quantity * req.CurrentPrice,
		Change:       (req.CurrentPrice - req.AveragePrice) / req.AveragePrice * 100,
		AssetType:    assetType,
	}

	if err := s.portfolioRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
