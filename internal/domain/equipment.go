package domain

import "time"

// Equipment listing statuses. Low Stock is a valid stored value but no
// flow here produces it; a future stock engine will.
const (
	EquipmentAvailable = "Available"
	EquipmentLowStock  = "Low Stock"
	EquipmentPaused    = "Paused"
)

// Equipment categories.
const (
	CategoryEquipment = "Equipment"
	CategoryInput     = "Input"
)

// Equipment is a seller-owned rental listing (machinery or farm input).
type Equipment struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Category     string    `gorm:"column:category;type:varchar(16);not null;default:'Equipment'" json:"category"`
	Description  string    `gorm:"column:description" json:"description"`
	Price        float64   `gorm:"column:price;not null" json:"price"`
	Unit         string    `gorm:"column:unit" json:"unit"`
	OwnerID      uint      `gorm:"column:owner_id;not null;index" json:"owner_id"`
	ImageURL     string    `gorm:"column:image_url" json:"image_url"`
	Availability string    `gorm:"column:availability" json:"availability"`
	Rating       float64   `gorm:"column:rating;not null;default:0" json:"rating"`
	Bookings     int       `gorm:"column:bookings;not null;default:0" json:"bookings"`
	Status       string    `gorm:"column:status;type:varchar(16);not null;default:'Available'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Equipment) TableName() string {
	return "equipment"
}
