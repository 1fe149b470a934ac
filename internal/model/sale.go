package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SaleItem is one line of the sale_items JSON column.
type SaleItem struct {
	MedicineID string  `json:"medicine_id"`
	Name       string  `json:"name,omitempty"`
	Quantity   int     `json:"quantity"`
	Strength   string  `json:"strength,omitempty"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// SaleCustomer is the embedded customer snapshot on a sale.
type SaleCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Sale struct {
	gorm.Model
	CustomerID     string  `gorm:"column:customer_id;not null;index"`
	Subtotal       float64 `gorm:"column:subtotal;not null"`
	GSTEnabled     bool    `gorm:"column:gst_enabled;default:false"`
	GSTAmount      float64 `gorm:"column:gst_amount;default:0"`
	TotalAmount    float64 `gorm:"column:total_amount;not null"`
	Status         string  `gorm:"column:status;default:pending"`
	CouponCode     *string `gorm:"column:coupon_code"`
	DiscountAmount float64 `gorm:"column:discount_amount;default:0"`

	Customer  datatypes.JSON `gorm:"column:customer;not null"`
	SaleItems datatypes.JSON `gorm:"column:sale_items;not null"`
}
