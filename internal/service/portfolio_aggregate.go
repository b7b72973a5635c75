package service

import (
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/model"
)

// Aggregate computes the portfolio total value and each item's share of it.
// Pure: no I/O, deterministic, preserves input order. A zero total yields
// zero allocations instead of dividing by zero; otherwise allocations sum to
// 100 up to floating point error.
func Aggregate(items []model.PortfolioItem) ([]dto.PortfolioPosition, float64) {
	var totalValue float64
	for _, item := range items {
		totalValue += item.Quantity * item.CurrentPrice
	}

	positions := make([]dto.PortfolioPosition, 0, len(items))
	for _, item := range items {
		allocation := 0.0
		if totalValue > 0 {
			allocation = item.Quantity * item.CurrentPrice / totalValue * 100
		}
		positions = append(positions, dto.PortfolioPosition{
			PortfolioItem: item,
			Allocation:    allocation,
		})
	}

	return positions, totalValue
}
