package jobs

import (
	"context"
	"strings"

	"krushi-backend/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Title         string  `json:"title"`
	SkillRequired string  `json:"skill_required"`
	Description   string  `json:"description"`
	Wage          float64 `json:"wage"`
	Duration      string  `json:"duration"`
	Location      string  `json:"location"`
}

// Create posts a labour job for the owning farmer, defaulting to OPEN.
func (s *Service) Create(ctx context.Context, farmerID uint, in CreateInput) (*domain.LabourJob, error) {
	if in.Title == "" || in.Wage <= 0 {
		return nil, ErrFieldsRequired
	}
	job := &domain.LabourJob{
		FarmerID:      farmerID,
		Title:         in.Title,
		SkillRequired: in.SkillRequired,
		Description:   in.Description,
		Wage:          in.Wage,
		Duration:      in.Duration,
		Location:      in.Location,
		Status:        domain.JobOpen,
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ListOpen returns jobs for labourer discovery. CLOSED jobs never appear.
func (s *Service) ListOpen(ctx context.Context) ([]domain.LabourJob, error) {
	var items []domain.LabourJob
	if err := s.DB.WithContext(ctx).Where("status = ?", domain.JobOpen).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListOpenBySkill filters open jobs on skill_required, case-insensitive.
func (s *Service) ListOpenBySkill(ctx context.Context, skill string) ([]domain.LabourJob, error) {
	var items []domain.LabourJob
	err := s.DB.WithContext(ctx).
		Where("status = ? AND LOWER(skill_required) = ?", domain.JobOpen, strings.ToLower(skill)).
		Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListByFarmer returns a farmer's own postings, open and closed.
func (s *Service) ListByFarmer(ctx context.Context, farmerID uint) ([]domain.LabourJob, error) {
	var items []domain.LabourJob
	if err := s.DB.WithContext(ctx).Where("farmer_id = ?", farmerID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Close moves an OPEN job to CLOSED. Only the owning farmer may close.
func (s *Service) Close(ctx context.Context, id, farmerID uint) (*domain.LabourJob, error) {
	var job domain.LabourJob
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.FarmerID != farmerID {
		return nil, ErrForbidden
	}
	if job.Status != domain.JobOpen {
		return nil, ErrAlreadyClosed
	}
	if err := s.DB.WithContext(ctx).Model(&job).Update("status", domain.JobClosed).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
