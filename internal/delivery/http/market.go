package http

import (
	"net/http"

	"finance-dashboard/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupMarket(base *echo.Group) {
	marketGroup := base.Group("/market")
	marketGroup.GET("/stocks", h.listStocks)
	marketGroup.GET("/crypto", h.listCrypto)
}

func (h *HttpAPIHandler) listStocks(c echo.Context) error {
	listings := h.service.MarketService.Stocks(c.Request().Context(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, dto.MarketListingsResponse{Listings: listings, Total: len(listings)})
}

func (h *HttpAPIHandler) listCrypto(c echo.Context) error {
	listings := h.service.MarketService.Crypto(c.Request().Context(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, dto.MarketListingsResponse{Listings: listings, Total: len(listings)})
}
