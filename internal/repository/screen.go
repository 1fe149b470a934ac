package repository

import (
	"context"

	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
)

type ScreenRepository struct {
	db *gorm.DB
}

func NewScreenRepository(db *gorm.DB) *ScreenRepository {
	return &ScreenRepository{db: db}
}

func (r *ScreenRepository) Create(ctx context.Context, screen *model.Screen) error {
	return r.db.WithContext(ctx).Create(screen).Error
}

func (r *ScreenRepository) GetByID(ctx context.Context, id uint) (*model.Screen, error) {
	var screen model.Screen
	if err := r.db.WithContext(ctx).First(&screen, id).Error; err != nil {
		return nil, err
	}
	return &screen, nil
}

func (r *ScreenRepository) GetByCode(ctx context.Context, code string) (*model.Screen, error) {
	var screen model.Screen
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&screen).Error; err != nil {
		return nil, err
	}
	return &screen, nil
}

func (r *ScreenRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Screen{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScreenRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Screen{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScreenRepository) ListAll(ctx context.Context) ([]model.Screen, error) {
	var screens []model.Screen
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&screens).Error; err != nil {
		return nil, err
	}
	return screens, nil
}
