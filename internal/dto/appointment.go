package dto

import "time"

type CreateAppointmentRequest struct {
	PatientID        uint    `json:"patient_id" binding:"required"`
	DoctorID         uint    `json:"doctor_id" binding:"required"`
	VisitDate        string  `json:"visit_date" binding:"required,datetime=2006-01-02"`
	VisitTime        string  `json:"visit_time" binding:"required,visittime"`
	VisitType        string  `json:"visit_type" binding:"required,oneof=Consultation Follow-up Emergency 'First Time Visit' others"`
	DoctorDepartment string  `json:"doctor_department" binding:"required"`
	AdditionalNotes  *string `json:"additional_notes"`
}

type UpdateAppointmentRequest struct {
	VisitDate        string  `json:"visit_date" binding:"omitempty,datetime=2006-01-02"`
	VisitTime        string  `json:"visit_time" binding:"omitempty,visittime"`
	VisitType        string  `json:"visit_type" binding:"omitempty,oneof=Consultation Follow-up Emergency 'First Time Visit' others"`
	DoctorDepartment string  `json:"doctor_department"`
	AdditionalNotes  *string `json:"additional_notes"`
	Status           string  `json:"status" binding:"omitempty,oneof=Scheduled In-Progress Completed Cancelled"`
}

type AppointmentResponse struct {
	ID               uint      `json:"id"`
	PatientID        uint      `json:"patient_id"`
	DoctorID         uint      `json:"doctor_id"`
	VisitDate        time.Time `json:"visit_date"`
	VisitTime        string    `json:"visit_time"`
	VisitType        string    `json:"visit_type"`
	DoctorDepartment string    `json:"doctor_department"`
	AdditionalNotes  *string   `json:"additional_notes,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	PatientID uint   `form:"patient_id"`
	DoctorID  uint   `form:"doctor_id"`
	Status    string `form:"status"`
	Date      string `form:"date"`
}
