package http

import (
	"context"

	"finance-dashboard/internal/service"
	"finance-dashboard/pkg/logger"
	"finance-dashboard/pkg/middleware"
	"finance-dashboard/pkg/postgres"
	"finance-dashboard/pkg/token"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	tokens    *token.Service
	db        *postgres.DB
	log       *logger.Logger
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, tokens *token.Service, db *postgres.DB, log *logger.Logger, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
		tokens:    tokens,
		db:        db,
		log:       log,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(middleware.NewRateLimiterMiddleware())

	base := h.echo.Group("/api")
	h.SetupAuth(base)
	h.SetupPortfolio(base)
	h.SetupChat(base)
	h.SetupMarket(base)
	h.SetupHealth(base)
}
