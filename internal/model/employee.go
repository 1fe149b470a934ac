package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	EmployeeID string `gorm:"column:employee_id;uniqueIndex;not null"`
	FirstName  string `gorm:"column:first_name;not null"`
	LastName   string `gorm:"column:last_name;not null"`
	Email      string `gorm:"column:email;uniqueIndex;not null"`
	Phone      string `gorm:"column:phone;uniqueIndex;not null"`

	// Primary role drives authorization; secondary roles are informational.
	RoleID         *uint          `gorm:"column:role_id"`
	Role           string         `gorm:"column:role;not null"`
	SecondaryRoles datatypes.JSON `gorm:"column:secondary_roles"`

	// Weekly availability slots as [{days:[...], in_time, out_time}]
	Availability datatypes.JSON `gorm:"column:availability"`

	Price                 float64    `gorm:"column:price;default:0"`
	Department            *string    `gorm:"column:department"`
	Salary                *float64   `gorm:"column:salary"`
	Address               *string    `gorm:"column:address"`
	EmergencyContactName  *string    `gorm:"column:emergency_contact_name"`
	EmergencyContactPhone *string    `gorm:"column:emergency_contact_phone"`
	DateOfJoining         time.Time  `gorm:"column:date_of_joining"`
	Status                string     `gorm:"column:status;default:active"`
	LicenseNumber         *string    `gorm:"column:license_number"`
	Specialization        *string    `gorm:"column:specialization"`
	LastLogin             *time.Time `gorm:"column:last_login"`

	PasswordHash string `gorm:"column:password_hash;not null"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
