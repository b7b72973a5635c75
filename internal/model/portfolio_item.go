package model

import "time"

const (
	AssetTypeStock  = "stock"
	AssetTypeCrypto = "crypto"
	AssetTypeBond   = "bond"
	AssetTypeFund   = "fund"
)

// PortfolioItem is one line item of a user's holdings. A user holds at most
// one item per symbol, enforced by the composite unique index so concurrent
// adds cannot both pass a pre-check.
type PortfolioItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_portfolio_user_symbol" json:"user_id"`
	Symbol       string    `gorm:"not null;uniqueIndex:idx_portfolio_user_symbol" json:"symbol"`
	Name         string    `gorm:"not null" json:"name"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	AveragePrice float64   `gorm:"not null" json:"average_price"`
	CurrentPrice float64   `gorm:"not null" json:"current_price"`
	TotalValue   float64   `gorm:"not null" json:"total_value"`
	Change       float64   `json:"change"`
	AssetType    string    `gorm:"not null;default:stock" json:"type"`
	User         User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
