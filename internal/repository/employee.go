package repository

import (
	"context"
	"time"

	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// FindByIdentifier matches one identifier string against both email and
// phone. Login accepts either interchangeably.
func (r *EmployeeRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("email = ? OR phone = ?", identifier, identifier).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Employee{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EmployeeRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).Update("last_login", time.Now()).Error
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List filters by role, department or status, with an ILIKE search across
// name, email, phone and employee_id.
func (r *EmployeeRepository) List(ctx context.Context, limit, offset int, role, department, status, search string) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Employee{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if department != "" {
		query = query.Where("department = ?", department)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR employee_id ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&employees).Error; err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// ListDoctors returns active employees holding the doctor role, optionally
// narrowed to a department.
func (r *EmployeeRepository) ListDoctors(ctx context.Context, department string) ([]model.Employee, error) {
	var employees []model.Employee
	query := r.db.WithContext(ctx).
		Where("role = ? AND status = ?", "Doctor", "active")
	if department != "" {
		query = query.Where("department = ?", department)
	}
	if err := query.Order("first_name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
