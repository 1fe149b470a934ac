package database

import (
	"log"

	"gorm.io/gorm"
)

// OptimizedIndexes creates composite indexes for the hot query paths.
// AutoMigrate already covers the unique indexes declared on the models.
func OptimizedIndexes(db *gorm.DB) error {
	indexes := []string{
		// Login resolves identities by email OR phone in one query
		"CREATE INDEX IF NOT EXISTS idx_employees_email_phone ON employees(email, phone);",
		"CREATE INDEX IF NOT EXISTS idx_patients_email_phone ON patients(email, phone);",

		// Appointment listings filter by doctor/patient and date
		"CREATE INDEX IF NOT EXISTS idx_appointments_doctor_date ON appointments(doctor_id, visit_date);",
		"CREATE INDEX IF NOT EXISTS idx_appointments_patient_date ON appointments(patient_id, visit_date);",
		"CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status) WHERE status != 'Completed';",

		// Stock views sort by expiry and flag low stock
		"CREATE INDEX IF NOT EXISTS idx_inventory_expiry_qty ON inventory_items(expiry_date, quantity_available);",
		"CREATE INDEX IF NOT EXISTS idx_inventory_low_stock ON inventory_items(quantity_available) WHERE quantity_available <= reorder_level;",

		// JSONB lookups on role permissions and screens
		"CREATE INDEX IF NOT EXISTS idx_roles_permissions_gin ON roles USING GIN (permissions);",
		"CREATE INDEX IF NOT EXISTS idx_roles_screens_gin ON roles USING GIN (screens);",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			log.Printf("Warning: Failed to create index: %v", err)
			// Continue with the remaining indexes
		}
	}

	return nil
}
