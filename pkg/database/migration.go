package database

import (
	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Employee{},
		&model.Patient{},
		&model.RefreshToken{},
		&model.Appointment{},
		&model.Prescription{},
		&model.InventoryItem{},
		&model.Supplier{},
		&model.Sale{},
		&model.Role{},
		&model.Screen{},
		&model.EmailTemplate{},
		&model.Sequence{},
	)
}
