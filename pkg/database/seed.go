package database

import (
	"time"

	"github.com/medicore-health/hms/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultAdmin defines the default admin employee credentials
type DefaultAdmin struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Role      string
}

// GetDefaultAdmin returns the default admin employee
func GetDefaultAdmin() DefaultAdmin {
	return DefaultAdmin{
		FirstName: "Admin",
		LastName:  "HMS",
		Email:     "admin@hms.local",
		Phone:     "9876543210",
		Password:  "Employee@123", // Change this in production!
		Role:      "Admin",
	}
}

// Seed creates initial data for the database
func Seed(db *gorm.DB) error {
	if err := SeedRoles(db); err != nil {
		return err
	}
	return SeedAdmin(db)
}

// SeedRoles creates the baseline roles if the table is empty
func SeedRoles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Role{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	roles := []model.Role{
		{RoleID: "R0001", Name: "Admin", Description: "Full system access", Permissions: datatypes.JSON([]byte(`["*"]`))},
		{RoleID: "R0002", Name: "Doctor", Description: "Clinical staff", Permissions: datatypes.JSON([]byte(`["patients","appointments","prescriptions"]`))},
		{RoleID: "R0003", Name: "Pharmacist", Description: "Pharmacy staff", Permissions: datatypes.JSON([]byte(`["inventory","sales","suppliers"]`))},
		{RoleID: "R0004", Name: "Receptionist", Description: "Front desk", Permissions: datatypes.JSON([]byte(`["patients","appointments"]`))},
	}

	if err := db.Create(&roles).Error; err != nil {
		return err
	}

	// Keep the role code sequence ahead of the seeded rows
	return db.Exec(
		`INSERT INTO sequences (name, value) VALUES ('role_id', ?) ON CONFLICT (name) DO NOTHING`,
		int64(len(roles)),
	).Error
}

// SeedAdmin creates the default admin employee if not exists
func SeedAdmin(db *gorm.DB) error {
	admin := GetDefaultAdmin()

	var existing model.Employee
	result := db.Where("email = ?", admin.Email).First(&existing)

	if result.Error == nil {
		return nil
	}

	if result.Error != gorm.ErrRecordNotFound {
		return result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var adminRole model.Role
	var roleID *uint
	if err := db.Where("name = ?", admin.Role).First(&adminRole).Error; err == nil {
		roleID = &adminRole.ID
	}

	employee := model.Employee{
		EmployeeID:    "EMP000001",
		FirstName:     admin.FirstName,
		LastName:      admin.LastName,
		Email:         admin.Email,
		Phone:         admin.Phone,
		Role:          admin.Role,
		RoleID:        roleID,
		DateOfJoining: time.Now(),
		Status:        "active",
		PasswordHash:  string(hashedPassword),
	}

	if err := db.Create(&employee).Error; err != nil {
		return err
	}

	return db.Exec(
		`INSERT INTO sequences (name, value) VALUES ('employee_id', 1) ON CONFLICT (name) DO NOTHING`,
	).Error
}
