package model

import (
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	FirstName      string     `gorm:"column:first_name;not null"`
	LastName       string     `gorm:"column:last_name;not null"`
	Phone          *string    `gorm:"column:phone;uniqueIndex"`
	Email          *string    `gorm:"column:email;uniqueIndex"`
	DateOfBirth    *time.Time `gorm:"column:date_of_birth"`
	Gender         *string    `gorm:"column:gender"`
	BloodGroup     *string    `gorm:"column:blood_group"`
	Address        *string    `gorm:"column:address"`
	MedicalHistory *string    `gorm:"column:medical_history"`

	PasswordHash string `gorm:"column:password_hash;not null"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
