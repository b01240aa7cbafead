package database

import (
	"errors"

	"krushi-backend/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN. PreferSimpleProtocol disables prepared
// statement caching to avoid 42P05 ("prepared statement already exists")
// when using connection poolers (e.g. PgBouncer, Supabase, Render).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for all domain models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Equipment{},
		&domain.LabourJob{},
		&domain.JobApplication{},
		&domain.EquipmentBooking{},
		&domain.LabourerProfile{},
		&domain.MarketPrice{},
		&domain.AdminUser{},
	)
}

// SeedAdmin inserts the audit admin row if no admin exists yet. The
// password is bcrypt-hashed; an empty password refuses to seed so the
// audit surface cannot be opened by accident.
func SeedAdmin(db *gorm.DB, username, password string) error {
	var count int64
	if err := db.Model(&domain.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		return errors.New("ADMIN_PASSWORD is required to seed the admin user")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&domain.AdminUser{Username: username, PasswordHash: string(hash)}).Error
}

// SeedMarketPrices inserts reference crop prices on an empty table.
func SeedMarketPrices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.MarketPrice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	prices := []domain.MarketPrice{
		{CropName: "Rice", Price: 2850, Unit: "quintal", MarketLocation: "Pune APMC"},
		{CropName: "Wheat", Price: 2300, Unit: "quintal", MarketLocation: "Nashik APMC"},
		{CropName: "Onion", Price: 1400, Unit: "quintal", MarketLocation: "Lasalgaon APMC"},
		{CropName: "Tomato", Price: 1100, Unit: "quintal", MarketLocation: "Kolhapur APMC"},
		{CropName: "Sugarcane", Price: 315, Unit: "quintal", MarketLocation: "Sangli APMC"},
	}
	return db.Create(&prices).Error
}
