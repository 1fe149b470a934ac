package model

import "gorm.io/gorm"

// EmailTemplate fields may contain {{placeholder}} expressions resolved at
// send time; `to` itself is commonly templated (e.g. {{email}}).
type EmailTemplate struct {
	gorm.Model
	From    string `gorm:"column:from_address;not null"`
	To      string `gorm:"column:to_address;not null"`
	Subject string `gorm:"column:subject;not null"`
	Body    string `gorm:"column:body;not null"`
}
