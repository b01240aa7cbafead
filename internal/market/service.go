package market

import (
	"context"
	"strings"

	"krushi-backend/internal/domain"

	"gorm.io/gorm"
)

// Service reads reference crop prices. Rows are seeded at migration; there
// is no live market integration behind this boundary.
type Service struct {
	DB *gorm.DB
}

func (s *Service) ListPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	var prices []domain.MarketPrice
	if err := s.DB.WithContext(ctx).Order("crop_name ASC").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (s *Service) ListPricesByCrop(ctx context.Context, crop string) ([]domain.MarketPrice, error) {
	var prices []domain.MarketPrice
	err := s.DB.WithContext(ctx).
		Where("LOWER(crop_name) = ?", strings.ToLower(crop)).
		Find(&prices).Error
	if err != nil {
		return nil, err
	}
	return prices, nil
}
