package repository

import (
	"context"

	"gorm.io/gorm"
)

// SequenceRepository hands out monotonically increasing values for generated
// business codes (EMP000001, R0001, SCRN001).
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next bumps the named counter and returns its new value. The upsert makes
// the increment atomic, so concurrent callers never see the same value.
func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO sequences (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		 RETURNING value`,
		name,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
