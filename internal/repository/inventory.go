package repository

import (
	"context"
	"time"

	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *InventoryRepository) GetByID(ctx context.Context, id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.InventoryItem{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *InventoryRepository) List(ctx context.Context, limit, offset int, search, category string, lowStock bool) ([]model.InventoryItem, int64, error) {
	var items []model.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&model.InventoryItem{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"brand_name ILIKE ? OR generic_name ILIKE ? OR drug_code ILIKE ? OR batch_number ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if category != "" {
		query = query.Where("drug_category = ?", category)
	}
	if lowStock {
		query = query.Where("quantity_available <= reorder_level")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("brand_name ASC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListExpiringBefore returns stocked batches that expire on or before the
// cutoff date.
func (r *InventoryRepository) ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).
		Where("expiry_date <= ? AND quantity_available > 0", cutoff).
		Order("expiry_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AdjustQuantity applies a signed delta. The guard clause keeps stock from
// going negative under concurrent sales.
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, id uint, delta int, updatedBy *uint, reason *string) error {
	updates := map[string]interface{}{
		"quantity_available": gorm.Expr("quantity_available + ?", delta),
	}
	if updatedBy != nil {
		updates["last_updated_by"] = *updatedBy
	}
	if reason != nil {
		updates["reason_for_adjustment"] = *reason
	}

	query := r.db.WithContext(ctx).Model(&model.InventoryItem{}).Where("id = ?", id)
	if delta < 0 {
		query = query.Where("quantity_available + ? >= 0", delta)
	}
	result := query.Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
