package jobs

import (
	"context"
	"testing"

	"krushi-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupJobService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.LabourJob{}))
	return &Service{DB: db}
}

func TestCreateJob_DefaultsOpen(t *testing.T) {
	s := setupJobService(t)
	job, err := s.Create(context.Background(), 1, CreateInput{Title: "Harvest help", Wage: 500})
	require.NoError(t, err)
	assert.Equal(t, domain.JobOpen, job.Status)
	assert.Equal(t, uint(1), job.FarmerID)
}

func TestCreateJob_MissingFields(t *testing.T) {
	s := setupJobService(t)
	_, err := s.Create(context.Background(), 1, CreateInput{Title: "No wage"})
	assert.Equal(t, ErrFieldsRequired, err)
}

func TestListOpen_ExcludesClosed(t *testing.T) {
	s := setupJobService(t)
	job, err := s.Create(context.Background(), 1, CreateInput{Title: "Harvest help", Wage: 500})
	require.NoError(t, err)
	_, err = s.Create(context.Background(), 1, CreateInput{Title: "Sowing", Wage: 400})
	require.NoError(t, err)

	_, err = s.Close(context.Background(), job.ID, 1)
	require.NoError(t, err)

	items, err := s.ListOpen(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Sowing", items[0].Title)
}

func TestListOpenBySkill_CaseInsensitive(t *testing.T) {
	s := setupJobService(t)
	_, err := s.Create(context.Background(), 1, CreateInput{Title: "Harvest help", Wage: 500, SkillRequired: "Harvesting"})
	require.NoError(t, err)
	_, err = s.Create(context.Background(), 1, CreateInput{Title: "Sowing", Wage: 400, SkillRequired: "Sowing"})
	require.NoError(t, err)

	items, err := s.ListOpenBySkill(context.Background(), "harvesting")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Harvest help", items[0].Title)
}

func TestCloseJob_NotOwner(t *testing.T) {
	s := setupJobService(t)
	job, err := s.Create(context.Background(), 1, CreateInput{Title: "Harvest help", Wage: 500})
	require.NoError(t, err)

	_, err = s.Close(context.Background(), job.ID, 2)
	assert.Equal(t, ErrForbidden, err)
}

func TestCloseJob_AlreadyClosed(t *testing.T) {
	s := setupJobService(t)
	job, err := s.Create(context.Background(), 1, CreateInput{Title: "Harvest help", Wage: 500})
	require.NoError(t, err)

	_, err = s.Close(context.Background(), job.ID, 1)
	require.NoError(t, err)
	_, err = s.Close(context.Background(), job.ID, 1)
	assert.Equal(t, ErrAlreadyClosed, err)
}
