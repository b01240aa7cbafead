package admin

import (
	"context"
	"testing"

	"krushi-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAdminService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.AdminUser{},
		&domain.User{},
		&domain.Equipment{},
		&domain.LabourJob{},
		&domain.JobApplication{},
		&domain.EquipmentBooking{},
		&domain.LabourerProfile{},
		&domain.MarketPrice{},
	))
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.AdminUser{Username: "admin", PasswordHash: string(hash)}).Error)
	return &Service{DB: db}
}

func TestVerify_BadCredentials(t *testing.T) {
	s := setupAdminService(t)
	assert.Equal(t, ErrCredsRequired, s.Verify(context.Background(), "admin", ""))
	assert.Equal(t, ErrUnauthorized, s.Verify(context.Background(), "admin", "wrongpass"))
	assert.Equal(t, ErrUnauthorized, s.Verify(context.Background(), "nobody", "supersecret"))
	assert.NoError(t, s.Verify(context.Background(), "admin", "supersecret"))
}

func TestListAllTables_DumpsEveryTable(t *testing.T) {
	s := setupAdminService(t)
	require.NoError(t, s.DB.Create(&domain.User{Name: "Asha", Email: "a@x.com", PasswordHash: "x", Role: "FARMER"}).Error)

	records, err := s.ListAllTables(context.Background(), "admin", "supersecret")
	require.NoError(t, err)
	assert.Len(t, records, len(auditTables))

	users, ok := records["users"].(*[]domain.User)
	require.True(t, ok)
	require.Len(t, *users, 1)
	assert.Equal(t, "a@x.com", (*users)[0].Email)
}

func TestListAllTables_RejectsBadCreds(t *testing.T) {
	s := setupAdminService(t)
	_, err := s.ListAllTables(context.Background(), "admin", "wrongpass")
	assert.Equal(t, ErrUnauthorized, err)
}

func TestDeleteRecord_AllowListAndNotFound(t *testing.T) {
	s := setupAdminService(t)
	user := &domain.User{Name: "Asha", Email: "a@x.com", PasswordHash: "x", Role: "FARMER"}
	require.NoError(t, s.DB.Create(user).Error)

	err := s.DeleteRecord(context.Background(), "admin", "supersecret", "admin_users", 1)
	assert.Equal(t, ErrInvalidTable, err)

	err = s.DeleteRecord(context.Background(), "admin", "supersecret", "users", 999)
	assert.Equal(t, ErrRecordNotFound, err)

	err = s.DeleteRecord(context.Background(), "admin", "supersecret", "users", user.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, s.DB.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
