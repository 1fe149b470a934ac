package dto

import (
	"time"

	"github.com/medicore-health/hms/internal/model"
)

type CreatePrescriptionRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
	PatientID     uint `json:"patient_id" binding:"required"`
	DoctorID      uint `json:"doctor_id" binding:"required"`

	VisitDate *string `json:"visit_date" binding:"omitempty,datetime=2006-01-02"`

	BloodPressure *string `json:"blood_pressure"`
	Pulse         *string `json:"pulse"`
	Height        *string `json:"height"`
	Weight        *string `json:"weight"`
	BMI           *string `json:"bmi"`
	SpO2          *string `json:"spo2"`

	Complaints []string                   `json:"complaints"`
	Medicines  []model.PrescribedMedicine `json:"medicines"`

	Advice          *string `json:"advice"`
	TestsPrescribed *string `json:"tests_prescribed"`
	NextVisit       *string `json:"next_visit"`
	DoctorNotes     *string `json:"doctor_notes"`

	Status string `json:"status" binding:"omitempty,oneof=Draft Completed"`
}

type UpdatePrescriptionRequest struct {
	BloodPressure *string `json:"blood_pressure"`
	Pulse         *string `json:"pulse"`
	Height        *string `json:"height"`
	Weight        *string `json:"weight"`
	BMI           *string `json:"bmi"`
	SpO2          *string `json:"spo2"`

	Complaints []string                   `json:"complaints"`
	Medicines  []model.PrescribedMedicine `json:"medicines"`

	Advice          *string `json:"advice"`
	TestsPrescribed *string `json:"tests_prescribed"`
	NextVisit       *string `json:"next_visit"`
	DoctorNotes     *string `json:"doctor_notes"`

	Status string `json:"status" binding:"omitempty,oneof=Draft Completed"`
}

type PrescriptionResponse struct {
	ID            uint      `json:"id"`
	AppointmentID uint      `json:"appointment_id"`
	PatientID     uint      `json:"patient_id"`
	DoctorID      uint      `json:"doctor_id"`
	VisitDate     time.Time `json:"visit_date"`

	BloodPressure *string `json:"blood_pressure,omitempty"`
	Pulse         *string `json:"pulse,omitempty"`
	Height        *string `json:"height,omitempty"`
	Weight        *string `json:"weight,omitempty"`
	BMI           *string `json:"bmi,omitempty"`
	SpO2          *string `json:"spo2,omitempty"`

	Complaints []string                   `json:"complaints"`
	Medicines  []model.PrescribedMedicine `json:"medicines"`

	Advice          *string `json:"advice,omitempty"`
	TestsPrescribed *string `json:"tests_prescribed,omitempty"`
	NextVisit       *string `json:"next_visit,omitempty"`
	DoctorNotes     *string `json:"doctor_notes,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
