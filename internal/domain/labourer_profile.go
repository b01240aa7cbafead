package domain

import (
	"time"

	"gorm.io/datatypes"
)

// LabourerProfile is the at-most-one-per-labourer public profile.
// Skills and Languages are JSON string arrays.
type LabourerProfile struct {
	ID              uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID          uint           `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	Skills          datatypes.JSON `gorm:"column:skills" json:"skills"`
	ExperienceYears int            `gorm:"column:experience_years;not null;default:0" json:"experience_years"`
	HourlyRate      float64        `gorm:"column:hourly_rate;not null;default:0" json:"hourly_rate"`
	Location        string         `gorm:"column:location" json:"location"`
	Phone           string         `gorm:"column:phone" json:"phone"`
	Languages       datatypes.JSON `gorm:"column:languages" json:"languages"`
	Bio             string         `gorm:"column:bio" json:"bio"`
	Rating          float64        `gorm:"column:rating;not null;default:0" json:"rating"`
	CompletedJobs   int            `gorm:"column:completed_jobs;not null;default:0" json:"completed_jobs"`
	Availability    string         `gorm:"column:availability" json:"availability"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (LabourerProfile) TableName() string {
	return "labourer_profiles"
}
