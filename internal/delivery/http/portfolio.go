package http

import (
	"errors"
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/repository"
	"finance-dashboard/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *HttpAPIHandler) SetupPortfolio(base *echo.Group) {
	portfolioGroup := base.Group("/portfolio", middleware.BearerAuth(h.tokens))
	portfolioGroup.GET("", h.getPortfolio)
	portfolioGroup.POST("", h.addPortfolioItem)
}

func (h *HttpAPIHandler) getPortfolio(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(middleware.ContextKeyUserID).(uint)

	resp, err := h.service.PortfolioService.GetPortfolio(ctx, userID)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to fetch portfolio", zap.Uint("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor"))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *HttpAPIHandler) addPortfolioItem(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(middleware.ContextKeyUserID).(uint)

	req := new(dto.AddPortfolioItemRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Requisição inválida"))
	}

	if req.Name == "" || req.Symbol == "" || req.Quantity == 0 || req.AveragePrice == 0 || req.CurrentPrice == 0 {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Todos os campos são obrigatórios"))
	}
	if req.Quantity < 0 || req.AveragePrice < 0 || req.CurrentPrice < 0 {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Valores devem ser maiores que zero"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Valores devem ser maiores que zero"))
	}

	item, err := h.service.PortfolioService.AddItem(ctx, userID, *req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSymbol) {
			return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Ativo já existe no portfólio"))
		}
		h.log.ErrorContext(ctx, "failed to add portfolio item", zap.Uint("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor"))
	}

	return c.JSON(http.StatusOK, dto.AddPortfolioItemResponse{
		Message: "Item adicionado ao portfólio",
		Item:    item,
	})
}
