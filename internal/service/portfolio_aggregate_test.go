package service

import (
	"testing"

	"finance-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name           string
		items          []model.PortfolioItem
		wantTotal      float64
		wantAllocation []float64
	}{
		{
			name:           "empty portfolio",
			items:          nil,
			wantTotal:      0,
			wantAllocation: []float64{},
		},
		{
			name: "single position takes full allocation",
			items: []model.PortfolioItem{
				{Symbol: "PETR4", Quantity: 100, CurrentPrice: 32.45},
			},
			wantTotal:      3245,
			wantAllocation: []float64{100},
		},
		{
			name: "allocations split proportionally",
			items: []model.PortfolioItem{
				{Symbol: "PETR4", Quantity: 10, CurrentPrice: 30},
				{Symbol: "VALE3", Quantity: 10, CurrentPrice: 70},
			},
			wantTotal:      1000,
			wantAllocation: []float64{30, 70},
		},
		{
			name: "zero total value yields zero allocations",
			items: []model.PortfolioItem{
				{Symbol: "PETR4", Quantity: 0, CurrentPrice: 30},
				{Symbol: "VALE3", Quantity: 10, CurrentPrice: 0},
			},
			wantTotal:      0,
			wantAllocation: []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions, total := Aggregate(tt.items)

			assert.InDelta(t, tt.wantTotal, total, 1e-9)
			assert.Len(t, positions, len(tt.items))
			for i, want := range tt.wantAllocation {
				assert.InDelta(t, want, positions[i].Allocation, 1e-9, "allocation mismatch at %d", i)
			}
		})
	}
}

func TestAggregateAllocationsSumTo100(t *testing.T) {
	items := []model.PortfolioItem{
		{Symbol: "PETR4", Quantity: 100, CurrentPrice: 32.45},
		{Symbol: "VALE3", Quantity: 50, CurrentPrice: 68.9},
		{Symbol: "BTC", Quantity: 0.031, CurrentPrice: 43250.0},
		{Symbol: "WEGE3", Quantity: 73, CurrentPrice: 45.6},
	}

	positions, total := Aggregate(items)
	assert.Greater(t, total, 0.0)

	var sum float64
	for _, p := range positions {
		sum += p.Allocation
	}
	assert.InDelta(t, 100, sum, 1e-6)
}

func TestAggregatePreservesOrder(t *testing.T) {
	items := []model.PortfolioItem{
		{Symbol: "B"}, {Symbol: "A"}, {Symbol: "C"},
	}

	positions, _ := Aggregate(items)

	got := make([]string, 0, len(positions))
	for _, p := range positions {
		got = append(got, p.Symbol)
	}
	assert.Equal(t, []string{"B", "A", "C"}, got)
}
