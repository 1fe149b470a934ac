package model

// Sequence backs generated business codes (EMP000001, R0001, SCRN001).
// Incremented with a single conflict-resolving upsert so concurrent creates
// never observe the same value.
type Sequence struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value int64  `gorm:"column:value;not null;default:0"`
}
