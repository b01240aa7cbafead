package profiles

import (
	"context"
	"encoding/json"
	"testing"

	"krushi-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProfileService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.LabourerProfile{}))
	return &Service{DB: db}
}

func TestUpsert_CreatesThenUpdates(t *testing.T) {
	s := setupProfileService(t)

	created, err := s.Upsert(context.Background(), 7, UpsertInput{
		Skills:          []string{"harvesting", "sowing"},
		ExperienceYears: 5,
		HourlyRate:      80,
		Location:        "Nashik",
		Languages:       []string{"Marathi", "Hindi"},
		Availability:    "weekdays",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	var skills []string
	require.NoError(t, json.Unmarshal(created.Skills, &skills))
	assert.Equal(t, []string{"harvesting", "sowing"}, skills)

	// Second upsert for the same user updates in place
	_, err = s.Upsert(context.Background(), 7, UpsertInput{
		Skills:          []string{"harvesting"},
		ExperienceYears: 6,
		HourlyRate:      90,
		Location:        "Pune",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, s.DB.Model(&domain.LabourerProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := s.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 6, got.ExperienceYears)
	assert.Equal(t, 90.0, got.HourlyRate)
	assert.Equal(t, "Pune", got.Location)
}

func TestGet_NotFound(t *testing.T) {
	s := setupProfileService(t)
	_, err := s.Get(context.Background(), 42)
	assert.Equal(t, ErrProfileNotFound, err)
}
