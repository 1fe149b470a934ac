package dto

import "time"

type CreateSupplierRequest struct {
	SupplierName  string  `json:"supplier_name" binding:"required"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	LicenseNumber *string `json:"license_number"`
	Address       *string `json:"address"`
	GSTNumber     *string `json:"gst_number"`
	IsActive      *bool   `json:"is_active"`
}

type UpdateSupplierRequest struct {
	SupplierName  string  `json:"supplier_name"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	LicenseNumber *string `json:"license_number"`
	Address       *string `json:"address"`
	GSTNumber     *string `json:"gst_number"`
	IsActive      *bool   `json:"is_active"`
}

type SupplierResponse struct {
	ID            uint      `json:"id"`
	SupplierName  string    `json:"supplier_name"`
	ContactPerson *string   `json:"contact_person,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	LicenseNumber *string   `json:"license_number,omitempty"`
	Address       *string   `json:"address,omitempty"`
	GSTNumber     *string   `json:"gst_number,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
