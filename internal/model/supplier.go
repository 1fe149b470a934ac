package model

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	SupplierName  string  `gorm:"column:supplier_name;not null"`
	ContactPerson *string `gorm:"column:contact_person"`
	Phone         *string `gorm:"column:phone"`
	Email         *string `gorm:"column:email"`
	LicenseNumber *string `gorm:"column:license_number"`
	Address       *string `gorm:"column:address"`
	GSTNumber     *string `gorm:"column:gst_number"`
	IsActive      bool    `gorm:"column:is_active;default:true"`
}
