package model

import "gorm.io/gorm"

type Screen struct {
	gorm.Model
	// Code like SCRN001, generated from the sequences table
	Code string `gorm:"column:code;uniqueIndex;not null"`
	Name string `gorm:"column:name;not null"`
	URL  string `gorm:"column:url;not null"`
	Icon string `gorm:"column:icon;default:''"`
}
