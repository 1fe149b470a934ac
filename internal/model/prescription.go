package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PrescriptionDraft     = "Draft"
	PrescriptionCompleted = "Completed"
)

// PrescribedMedicine is one row of the medicines JSON column.
type PrescribedMedicine struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration"`
}

type Prescription struct {
	gorm.Model
	AppointmentID uint `gorm:"column:appointment_id;not null;index"`
	PatientID     uint `gorm:"column:patient_id;not null;index"`
	DoctorID      uint `gorm:"column:doctor_id;not null;index"`

	VisitDate time.Time `gorm:"column:visit_date"`

	BloodPressure *string `gorm:"column:blood_pressure"`
	Pulse         *string `gorm:"column:pulse"`
	Height        *string `gorm:"column:height"`
	Weight        *string `gorm:"column:weight"`
	BMI           *string `gorm:"column:bmi"`
	SpO2          *string `gorm:"column:spo2"`

	Complaints datatypes.JSON `gorm:"column:complaints"`
	Medicines  datatypes.JSON `gorm:"column:medicines"`

	Advice          *string `gorm:"column:advice"`
	TestsPrescribed *string `gorm:"column:tests_prescribed"`
	NextVisit       *string `gorm:"column:next_visit"`
	DoctorNotes     *string `gorm:"column:doctor_notes"`

	Status string `gorm:"column:status;default:Draft"`
}
