package dto

import "finance-dashboard/internal/model"

type AddPortfolioItemRequest struct {
	Name         string  `json:"name" validate:"required"`
	Symbol       string  `json:"symbol" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	AveragePrice float64 `json:"averagePrice" validate:"required,gt=0"`
	CurrentPrice float64 `json:"currentPrice" validate:"required,gt=0"`
	AssetType    string  `json:"type" validate:"omitempty,oneof=stock crypto bond fund"`
}

// PortfolioPosition is a stored item enriched with its share of the total
// portfolio value.
type PortfolioPosition struct {
	model.PortfolioItem
	Allocation float64 `json:"allocation"`
}

type PortfolioResponse struct {
	Portfolio  []PortfolioPosition `json:"portfolio"`
	TotalValue float64             `json:"totalValue"`
	TotalItems int                 `json:"totalItems"`
}

type AddPortfolioItemResponse struct {
	Message string               `json:"message"`
	Item    *model.PortfolioItem `json:"item"`
}
