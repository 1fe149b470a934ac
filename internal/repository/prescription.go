package repository

import (
	"context"

	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
)

type PrescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

func (r *PrescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	return r.db.WithContext(ctx).Create(prescription).Error
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, id uint) (*model.Prescription, error) {
	var prescription model.Prescription
	if err := r.db.WithContext(ctx).First(&prescription, id).Error; err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *PrescriptionRepository) GetByAppointmentID(ctx context.Context, appointmentID uint) (*model.Prescription, error) {
	var prescription model.Prescription
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).First(&prescription).Error
	if err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *PrescriptionRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Prescription{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PrescriptionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Prescription{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PrescriptionRepository) List(ctx context.Context, limit, offset int, patientID, doctorID uint, status string) ([]model.Prescription, int64, error) {
	var prescriptions []model.Prescription
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Prescription{})
	if patientID != 0 {
		query = query.Where("patient_id = ?", patientID)
	}
	if doctorID != 0 {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&prescriptions).Error
	if err != nil {
		return nil, 0, err
	}
	return prescriptions, total, nil
}
