package repository

import (
	"context"
	"time"

	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Appointment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Appointment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AppointmentQuery narrows List. Zero values mean "no filter".
type AppointmentQuery struct {
	PatientID uint
	DoctorID  uint
	Status    string
	From      time.Time
	To        time.Time
}

func (r *AppointmentRepository) List(ctx context.Context, limit, offset int, q AppointmentQuery) ([]model.Appointment, int64, error) {
	var appointments []model.Appointment
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Appointment{})
	if q.PatientID != 0 {
		query = query.Where("patient_id = ?", q.PatientID)
	}
	if q.DoctorID != 0 {
		query = query.Where("doctor_id = ?", q.DoctorID)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if !q.From.IsZero() {
		query = query.Where("visit_date >= ?", q.From)
	}
	if !q.To.IsZero() {
		query = query.Where("visit_date <= ?", q.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("visit_date DESC, visit_time DESC").
		Limit(limit).Offset(offset).Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

// HasConflict reports whether the doctor already has a non-cancelled
// appointment in the same date and time slot.
func (r *AppointmentRepository) HasConflict(ctx context.Context, doctorID uint, visitDate time.Time, visitTime string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("doctor_id = ? AND visit_date = ? AND visit_time = ? AND status <> ?",
			doctorID, visitDate, visitTime, model.AppointmentCancelled)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
