package repository

import (
	"context"

	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *SupplierRepository) GetByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *SupplierRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Supplier{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SupplierRepository) List(ctx context.Context, limit, offset int, search string, activeOnly bool) ([]model.Supplier, int64, error) {
	var suppliers []model.Supplier
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Supplier{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"supplier_name ILIKE ? OR contact_person ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if activeOnly {
		query = query.Where("is_active = TRUE")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("supplier_name ASC").Limit(limit).Offset(offset).Find(&suppliers).Error
	if err != nil {
		return nil, 0, err
	}
	return suppliers, total, nil
}
