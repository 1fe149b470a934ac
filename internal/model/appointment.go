package model

import (
	"time"

	"gorm.io/gorm"
)

// Appointment status transitions: Scheduled -> In-Progress -> Completed,
// or any state -> Cancelled.
const (
	AppointmentScheduled  = "Scheduled"
	AppointmentInProgress = "In-Progress"
	AppointmentCompleted  = "Completed"
	AppointmentCancelled  = "Cancelled"
)

var AppointmentVisitTypes = []string{
	"Consultation",
	"Follow-up",
	"Emergency",
	"First Time Visit",
	"others",
}

type Appointment struct {
	gorm.Model
	PatientID        uint      `gorm:"column:patient_id;not null;index"`
	DoctorID         uint      `gorm:"column:doctor_id;not null;index"`
	VisitDate        time.Time `gorm:"column:visit_date;not null"`
	VisitTime        string    `gorm:"column:visit_time;not null"`
	VisitType        string    `gorm:"column:visit_type;not null"`
	DoctorDepartment string    `gorm:"column:doctor_department;not null"`
	AdditionalNotes  *string   `gorm:"column:additional_notes"`
	Status           string    `gorm:"column:status;default:Scheduled"`
}
