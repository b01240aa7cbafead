package auth

import (
	"context"
	"testing"

	"krushi-backend/internal/domain"
	"krushi-backend/internal/pkg/constants"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return &Service{DB: db}
}

func TestRegister_Valid(t *testing.T) {
	s := setupAuthService(t)
	user, err := s.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "password1",
		Role:     constants.RoleFarmer,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, constants.RoleFarmer, user.Role)
	// Stored secret must be a hash, never the plaintext
	assert.NotEqual(t, "password1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")))
}

func TestRegister_MissingFields(t *testing.T) {
	s := setupAuthService(t)
	_, err := s.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "password1"})
	assert.Equal(t, ErrFieldsRequired, err)
}

func TestRegister_InvalidRole(t *testing.T) {
	s := setupAuthService(t)
	_, err := s.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "a@x.com", Password: "password1", Role: "ADMIN",
	})
	assert.Equal(t, ErrInvalidRole, err)
}

func TestRegister_WeakPassword(t *testing.T) {
	s := setupAuthService(t)
	_, err := s.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "a@x.com", Password: "short1", Role: constants.RoleFarmer,
	})
	assert.Equal(t, ErrWeakPassword, err)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	s := setupAuthService(t)
	_, err := s.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "a@x.com", Password: "password1", Role: constants.RoleFarmer,
	})
	require.NoError(t, err)

	_, err = s.Register(context.Background(), RegisterInput{
		Name: "Asha Two", Email: "A@X.com", Password: "password2", Role: constants.RoleFarmer,
	})
	assert.Equal(t, ErrDuplicateEmail, err)
}

func TestLogin_Valid(t *testing.T) {
	s := setupAuthService(t)
	_, err := s.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "a@x.com", Password: "password1", Role: constants.RoleFarmer,
	})
	require.NoError(t, err)

	user, err := s.Login(context.Background(), "a@x.com", "password1", constants.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, constants.RoleFarmer, user.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	s := setupAuthService(t)
	_, err := s.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "a@x.com", Password: "password1", Role: constants.RoleFarmer,
	})
	require.NoError(t, err)

	_, err = s.Login(context.Background(), "a@x.com", "wrongpass1", constants.RoleFarmer)
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := setupAuthService(t)
	_, err := s.Login(context.Background(), "nobody@x.com", "password1", constants.RoleFarmer)
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_RoleMismatch(t *testing.T) {
	s := setupAuthService(t)
	_, err := s.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "a@x.com", Password: "password1", Role: constants.RoleFarmer,
	})
	require.NoError(t, err)

	_, err = s.Login(context.Background(), "a@x.com", "password1", constants.RoleSeller)
	assert.Equal(t, ErrRoleMismatch, err)
}
