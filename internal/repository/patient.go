package repository

import (
	"context"
	"time"

	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// FindByIdentifier matches one identifier string against both email and
// phone, mirroring the employee lookup.
func (r *PatientRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.Patient, error) {
	var patient model.Patient
	err := r.db.WithContext(ctx).
		Where("email = ? OR phone = ?", identifier, identifier).
		First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id uint) (*model.Patient, error) {
	var patient model.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Patient{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *PatientRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Patient{}).
		Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (r *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *PatientRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Patient{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Patient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PatientRepository) List(ctx context.Context, limit, offset int, search string) ([]model.Patient, int64, error) {
	var patients []model.Patient
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Patient{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&patients).Error; err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

// PatientStats is the aggregate snapshot served by the stats endpoint.
type PatientStats struct {
	Total        int64            `json:"total"`
	NewThisMonth int64            `json:"new_this_month"`
	NewToday     int64            `json:"new_today"`
	ByGender     map[string]int64 `json:"by_gender"`
}

func (r *PatientRepository) Stats(ctx context.Context) (*PatientStats, error) {
	stats := &PatientStats{ByGender: make(map[string]int64)}

	db := r.db.WithContext(ctx).Model(&model.Patient{})
	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if err := r.db.WithContext(ctx).Model(&model.Patient{}).
		Where("created_at >= ?", monthStart).Count(&stats.NewThisMonth).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Patient{}).
		Where("created_at >= ?", dayStart).Count(&stats.NewToday).Error; err != nil {
		return nil, err
	}

	rows := []struct {
		Gender string
		Count  int64
	}{}
	err := r.db.WithContext(ctx).Model(&model.Patient{}).
		Select("COALESCE(gender, 'unknown') AS gender, COUNT(*) AS count").
		Group("COALESCE(gender, 'unknown')").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ByGender[row.Gender] = row.Count
	}
	return stats, nil
}
