package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role struct {
	gorm.Model
	// Short business code like R0001, generated from the sequences table
	RoleID      string         `gorm:"column:role_id;uniqueIndex;not null;size:5"`
	Name        string         `gorm:"column:name;uniqueIndex;not null"`
	Description string         `gorm:"column:description;default:''"`
	Permissions datatypes.JSON `gorm:"column:permissions"`
	// Screen codes (SCRN001, ...) this role may access
	Screens datatypes.JSON `gorm:"column:screens"`
}
