package domain

import "time"

// JobApplication is a labourer's request against an OPEN labour job.
type JobApplication struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	JobID      uint      `gorm:"column:job_id;not null;index" json:"job_id"`
	LabourerID uint      `gorm:"column:labourer_id;not null;index" json:"labourer_id"`
	Status     string    `gorm:"column:status;type:varchar(16);not null;default:'PENDING'" json:"status"`
	Message    string    `gorm:"column:message" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
