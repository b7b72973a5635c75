package repository

import (
	"context"
	"errors"

	"finance-dashboard/internal/model"
	"finance-dashboard/pkg/utils"

	"gorm.io/gorm"
)

type PortfolioRepository interface {
	GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.PortfolioItem, error)
	GetByUserAndSymbol(ctx context.Context, userID uint, symbol string, opts ...utils.DBOption) (*model.PortfolioItem, error)
	Create(ctx context.Context, item *model.PortfolioItem, opts ...utils.DBOption) error
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{
		db: db,
	}
}

// GetByUser returns the user's items in insertion order.
func (r *portfolioRepository) GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.PortfolioItem, error) {
	var items []model.PortfolioItem
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *portfolioRepository) GetByUserAndSymbol(ctx context.Context, userID uint, symbol string, opts ...utils.DBOption) (*model.PortfolioItem, error) {
	var item model.PortfolioItem
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("user_id = ? AND symbol = ?", userID, symbol).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &item, nil
}

// Create inserts the item, relying on the composite unique index rather than
// a pre-check so concurrent adds for the same symbol cannot both succeed.
func (r *portfolioRepository) Create(ctx context.Context, item *model.PortfolioItem, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if err := tx.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSymbol
		}
		return err
	}
	return nil
}
