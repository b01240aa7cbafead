package domain

import "time"

// MarketPrice is a reference crop price row. Rows are seeded at migration;
// there is no live market feed.
type MarketPrice struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CropName       string    `gorm:"column:crop_name;not null" json:"crop_name"`
	Price          float64   `gorm:"column:price;not null" json:"price"`
	Unit           string    `gorm:"column:unit;not null" json:"unit"`
	MarketLocation string    `gorm:"column:market_location" json:"market_location"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (MarketPrice) TableName() string {
	return "market_prices"
}
