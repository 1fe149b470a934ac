package model

import "time"

// User identity variants. Login resolves employees before patients, so an
// email or phone shared across both tables always yields the employee.
const (
	UserTypeEmployee = "employee"
	UserTypePatient  = "patient"
)

// RefreshToken is the ledger of currently honored refresh tokens. The
// composite unique index on (user_id, user_type) enforces at most one live
// row per identity; a new login upserts over the previous one.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"column:token;uniqueIndex;not null"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_refresh_tokens_identity"`
	UserType  string    `gorm:"column:user_type;not null;uniqueIndex:idx_refresh_tokens_identity"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}
