package domain

import "time"

// Labour job statuses.
const (
	JobOpen   = "OPEN"
	JobClosed = "CLOSED"
)

// LabourJob is a farmer-posted work listing, visible to labourers while OPEN.
type LabourJob struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FarmerID      uint      `gorm:"column:farmer_id;not null;index" json:"farmer_id"`
	Title         string    `gorm:"column:title;not null" json:"title"`
	SkillRequired string    `gorm:"column:skill_required" json:"skill_required"`
	Description   string    `gorm:"column:description" json:"description"`
	Wage          float64   `gorm:"column:wage;not null" json:"wage"`
	Duration      string    `gorm:"column:duration" json:"duration"`
	Location      string    `gorm:"column:location" json:"location"`
	Status        string    `gorm:"column:status;type:varchar(16);not null;default:'OPEN'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (LabourJob) TableName() string {
	return "labour_jobs"
}
