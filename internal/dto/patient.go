package dto

import "time"

type CreatePatientRequest struct {
	FirstName      string  `json:"first_name" binding:"required,min=2,max=50"`
	LastName       string  `json:"last_name" binding:"required,min=2,max=50"`
	Phone          *string `json:"phone" binding:"omitempty,min=10,max=15"`
	Email          *string `json:"email" binding:"omitempty,email"`
	DateOfBirth    *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender         *string `json:"gender"`
	BloodGroup     *string `json:"blood_group"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
	Password       string  `json:"password" binding:"omitempty,min=8,max=100"`
}

type UpdatePatientRequest struct {
	FirstName      string  `json:"first_name" binding:"omitempty,min=2,max=50"`
	LastName       string  `json:"last_name" binding:"omitempty,min=2,max=50"`
	Phone          *string `json:"phone" binding:"omitempty,min=10,max=15"`
	Email          *string `json:"email" binding:"omitempty,email"`
	DateOfBirth    *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender         *string `json:"gender"`
	BloodGroup     *string `json:"blood_group"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}

type PatientResponse struct {
	ID             uint       `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Phone          *string    `json:"phone,omitempty"`
	Email          *string    `json:"email,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Gender         *string    `json:"gender,omitempty"`
	BloodGroup     *string    `json:"blood_group,omitempty"`
	Address        *string    `json:"address,omitempty"`
	MedicalHistory *string    `json:"medical_history,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type PatientStatsResponse struct {
	TotalPatients int64 `json:"totalPatients"`
}
