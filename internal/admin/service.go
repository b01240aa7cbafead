package admin

import (
	"context"

	"krushi-backend/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service is the credential-gated audit interface. Credentials are
// re-verified on every call; there is no elevated session.
type Service struct {
	DB *gorm.DB
}

// auditTables is the allow-list of tables the audit interface may touch.
// Table names arrive from the client and are never interpolated without
// passing this check.
var auditTables = map[string]func() interface{}{
	"users":              func() interface{} { return &[]domain.User{} },
	"equipment":          func() interface{} { return &[]domain.Equipment{} },
	"labour_jobs":        func() interface{} { return &[]domain.LabourJob{} },
	"job_applications":   func() interface{} { return &[]domain.JobApplication{} },
	"equipment_bookings": func() interface{} { return &[]domain.EquipmentBooking{} },
	"labourer_profiles":  func() interface{} { return &[]domain.LabourerProfile{} },
	"market_prices":      func() interface{} { return &[]domain.MarketPrice{} },
}

// deleteModels maps allow-listed tables to delete targets.
var deleteModels = map[string]func() interface{}{
	"users":              func() interface{} { return &domain.User{} },
	"equipment":          func() interface{} { return &domain.Equipment{} },
	"labour_jobs":        func() interface{} { return &domain.LabourJob{} },
	"job_applications":   func() interface{} { return &domain.JobApplication{} },
	"equipment_bookings": func() interface{} { return &domain.EquipmentBooking{} },
	"labourer_profiles":  func() interface{} { return &domain.LabourerProfile{} },
	"market_prices":      func() interface{} { return &domain.MarketPrice{} },
}

// Verify checks admin credentials against the seeded admin row.
func (s *Service) Verify(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrCredsRequired
	}
	var admin domain.AdminUser
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrUnauthorized
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return ErrUnauthorized
	}
	return nil
}

// ListAllTables re-verifies credentials and dumps every allow-listed table.
func (s *Service) ListAllTables(ctx context.Context, username, password string) (map[string]interface{}, error) {
	if err := s.Verify(ctx, username, password); err != nil {
		return nil, err
	}
	records := make(map[string]interface{}, len(auditTables))
	for table, newSlice := range auditTables {
		dest := newSlice()
		if err := s.DB.WithContext(ctx).Table(table).Find(dest).Error; err != nil {
			return nil, err
		}
		records[table] = dest
	}
	return records, nil
}

// DeleteRecord re-verifies credentials and deletes one row from an
// allow-listed table. No cascade: orphaned references are accepted.
func (s *Service) DeleteRecord(ctx context.Context, username, password, table string, recordID uint) error {
	if err := s.Verify(ctx, username, password); err != nil {
		return err
	}
	newModel, ok := deleteModels[table]
	if !ok {
		return ErrInvalidTable
	}
	res := s.DB.WithContext(ctx).Where("id = ?", recordID).Delete(newModel())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
