package database

import (
	"catalog-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewConnection initializes a connection pool using GORM and migrates the
// catalog schema.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Product{},
		&model.Category{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedDefaultRoles upserts the built-in Admin and Buyer roles. Idempotent,
// keyed on display name.
func SeedDefaultRoles(db *gorm.DB) error {
	roles := []model.Role{
		{DisplayName: model.RoleAdmin},
		{DisplayName: model.RoleBuyer},
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "display_name"}},
		DoNothing: true,
	}).Create(&roles).Error
}
