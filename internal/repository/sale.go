package repository

import (
	"context"
	"time"

	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, sale *model.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// CreateInTx runs fn with the sale insert in one transaction, so stock
// deductions roll back if the sale cannot be recorded.
func (r *SaleRepository) CreateInTx(ctx context.Context, sale *model.Sale, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(tx); err != nil {
			return err
		}
		return tx.Create(sale).Error
	})
}

func (r *SaleRepository) GetByID(ctx context.Context, id uint) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.WithContext(ctx).First(&sale, id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *SaleRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Sale{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SaleRepository) List(ctx context.Context, limit, offset int, customerID, status string, from, to time.Time) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Sale{})
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("created_at <= ?", to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}
