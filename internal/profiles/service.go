package profiles

import (
	"context"
	"encoding/json"
	"errors"

	"krushi-backend/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("Profile not found")

type Service struct {
	DB *gorm.DB
}

type UpsertInput struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	HourlyRate      float64  `json:"hourly_rate"`
	Location        string   `json:"location"`
	Phone           string   `json:"phone"`
	Languages       []string `json:"languages"`
	Bio             string   `json:"bio"`
	Availability    string   `json:"availability"`
}

// Upsert creates or updates the labourer's profile. At most one profile
// exists per user; rating and completed_jobs counters are not writable
// through this path.
func (s *Service) Upsert(ctx context.Context, userID uint, in UpsertInput) (*domain.LabourerProfile, error) {
	skills, _ := json.Marshal(in.Skills)
	languages, _ := json.Marshal(in.Languages)

	var profile domain.LabourerProfile
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		profile = domain.LabourerProfile{
			UserID:          userID,
			Skills:          datatypes.JSON(skills),
			ExperienceYears: in.ExperienceYears,
			HourlyRate:      in.HourlyRate,
			Location:        in.Location,
			Phone:           in.Phone,
			Languages:       datatypes.JSON(languages),
			Bio:             in.Bio,
			Availability:    in.Availability,
		}
		if err := s.DB.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}

	updates := map[string]interface{}{
		"skills":           datatypes.JSON(skills),
		"experience_years": in.ExperienceYears,
		"hourly_rate":      in.HourlyRate,
		"location":         in.Location,
		"phone":            in.Phone,
		"languages":        datatypes.JSON(languages),
		"bio":              in.Bio,
		"availability":     in.Availability,
	}
	if err := s.DB.WithContext(ctx).Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Get returns the profile for a labourer user id.
func (s *Service) Get(ctx context.Context, userID uint) (*domain.LabourerProfile, error) {
	var profile domain.LabourerProfile
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
