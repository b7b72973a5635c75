package repository

import (
	"finance-dashboard/config"
	"finance-dashboard/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	UserRepo      UserRepository
	PortfolioRepo PortfolioRepository
	MarketRepo    MarketRepository
	GroqAIRepo    AIRepository
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	return &Repository{
		UserRepo:      NewUserRepository(db),
		PortfolioRepo: NewPortfolioRepository(db),
		MarketRepo:    NewMarketRepository(),
		GroqAIRepo:    NewGroqAIRepository(cfg, log),
	}, nil
}
