package dto

import "time"

// AvailabilitySlot mirrors one entry of the employee availability schedule.
// Times are 24-hour integers; out_time must be after in_time.
type AvailabilitySlot struct {
	Days    []string `json:"days" binding:"required,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	InTime  int      `json:"in_time" binding:"min=0,max=23"`
	OutTime int      `json:"out_time" binding:"min=0,max=23"`
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string `json:"last_name" binding:"required,min=2,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=10,max=15"`

	// Role business codes (R0001, ...); the first is the primary role
	EmployeeType []string `json:"employee_type" binding:"required,min=1"`

	Availability []AvailabilitySlot `json:"availability" binding:"omitempty,dive"`

	Price                 float64 `json:"price"`
	Department            *string `json:"department"`
	Salary                *float64 `json:"salary"`
	Address               *string `json:"address"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	DateOfJoining         *string `json:"date_of_joining" binding:"omitempty,datetime=2006-01-02"`
	LicenseNumber         *string `json:"license_number"`
	Specialization        *string `json:"specialization"`
}

type UpdateEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,min=2,max=50"`
	LastName  string `json:"last_name" binding:"omitempty,min=2,max=50"`
	Phone     string `json:"phone" binding:"omitempty,min=10,max=15"`

	Availability []AvailabilitySlot `json:"availability" binding:"omitempty,dive"`

	Price                 *float64 `json:"price"`
	Department            *string  `json:"department"`
	Salary                *float64 `json:"salary"`
	Address               *string  `json:"address"`
	EmergencyContactName  *string  `json:"emergency_contact_name"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone"`
	Status                string   `json:"status" binding:"omitempty,oneof=active inactive"`
	LicenseNumber         *string  `json:"license_number"`
	Specialization        *string  `json:"specialization"`
}

type EmployeeResponse struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`

	Availability []AvailabilitySlot `json:"availability,omitempty"`

	Price                 float64    `json:"price"`
	Department            *string    `json:"department,omitempty"`
	Salary                *float64   `json:"salary,omitempty"`
	Address               *string    `json:"address,omitempty"`
	EmergencyContactName  *string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone,omitempty"`
	DateOfJoining         time.Time  `json:"date_of_joining"`
	Status                string     `json:"status"`
	LicenseNumber         *string    `json:"license_number,omitempty"`
	Specialization        *string    `json:"specialization,omitempty"`
	LastLogin             *time.Time `json:"last_login,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type CreateEmployeeResponse struct {
	Message    string `json:"message"`
	Name       string `json:"name"`
	EmployeeID uint   `json:"employee_id"`
	Note       string `json:"note"`
}
