package repository

import (
	"context"

	"github.com/medicore-health/hms/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RefreshTokenRepository manages the ledger of honored refresh tokens.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Upsert replaces the ledger row for (user_id, user_type) in a single
// statement, so two concurrent logins cannot both survive.
func (r *RefreshTokenRepository) Upsert(ctx context.Context, token *model.RefreshToken) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "user_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at", "created_at"}),
	}).Create(token).Error
}

// FindByToken looks the token up verbatim. gorm.ErrRecordNotFound means the
// token was never issued or has been revoked.
func (r *RefreshTokenRepository) FindByToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	var row model.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteByToken removes the ledger row if present. Deleting an absent token
// is not an error; logout is idempotent. Expired rows are left in place and
// refused at refresh time rather than swept.
func (r *RefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.RefreshToken{}).Error
}
