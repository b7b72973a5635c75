package service

import (
	"finance-dashboard/config"
	"finance-dashboard/internal/repository"
	"finance-dashboard/pkg/cache"
	"finance-dashboard/pkg/logger"
	"finance-dashboard/pkg/token"
)

type Service struct {
	AuthService      AuthService
	PortfolioService PortfolioService
	MarketService    MarketService
	ChatService      ChatService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	tokens *token.Service,
) *Service {
	return &Service{
		AuthService:      NewAuthService(log, repo.UserRepo, tokens),
		PortfolioService: NewPortfolioService(log, repo.PortfolioRepo),
		MarketService:    NewMarketService(log, repo.MarketRepo, inmemoryCache),
		ChatService:      NewChatService(log, repo.GroqAIRepo),
	}
}
