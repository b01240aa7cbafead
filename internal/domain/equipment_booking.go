package domain

import "time"

// EquipmentBooking is a farmer's request for an equipment slot.
// SellerID is denormalized from equipment.owner_id at creation time so the
// owner queue can be listed without a join on equipment.
type EquipmentBooking struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EquipmentID uint      `gorm:"column:equipment_id;not null;index" json:"equipment_id"`
	FarmerID    uint      `gorm:"column:farmer_id;not null;index" json:"farmer_id"`
	SellerID    uint      `gorm:"column:seller_id;not null;index" json:"seller_id"`
	Slot        string    `gorm:"column:slot" json:"slot"`
	Price       float64   `gorm:"column:price;not null" json:"price"`
	Status      string    `gorm:"column:status;type:varchar(16);not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (EquipmentBooking) TableName() string {
	return "equipment_bookings"
}
