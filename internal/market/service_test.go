package market

import (
	"context"
	"testing"

	"krushi-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMarketService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.MarketPrice{}))
	require.NoError(t, db.Create(&[]domain.MarketPrice{
		{CropName: "Wheat", Price: 2250, Unit: "quintal", MarketLocation: "Pune APMC"},
		{CropName: "Onion", Price: 1800, Unit: "quintal", MarketLocation: "Lasalgaon APMC"},
		{CropName: "Tomato", Price: 1400, Unit: "quintal", MarketLocation: "Nashik APMC"},
	}).Error)
	return &Service{DB: db}
}

func TestListPrices_SortedByCrop(t *testing.T) {
	s := setupMarketService(t)
	prices, err := s.ListPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 3)
	assert.Equal(t, "Onion", prices[0].CropName)
	assert.Equal(t, "Tomato", prices[1].CropName)
	assert.Equal(t, "Wheat", prices[2].CropName)
}

func TestListPricesByCrop_CaseInsensitive(t *testing.T) {
	s := setupMarketService(t)
	prices, err := s.ListPricesByCrop(context.Background(), "WHEAT")
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, 2250.0, prices[0].Price)
}

func TestListPricesByCrop_NoMatch(t *testing.T) {
	s := setupMarketService(t)
	prices, err := s.ListPricesByCrop(context.Background(), "saffron")
	require.NoError(t, err)
	assert.Empty(t, prices)
}
