package dto

import (
	"time"

	"github.com/medicore-health/hms/internal/model"
)

type SaleItemRequest struct {
	MedicineID string  `json:"medicine_id" binding:"required"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Strength   string  `json:"strength"`
	UnitPrice  float64 `json:"unit_price" binding:"min=0"`
	TotalPrice float64 `json:"total_price" binding:"min=0"`
}

type SaleCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type CreateSaleRequest struct {
	CustomerID     string              `json:"customer_id" binding:"required"`
	Customer       SaleCustomerRequest `json:"customer" binding:"required"`
	Items          []SaleItemRequest   `json:"sale_items" binding:"required,min=1,dive"`
	Subtotal       float64             `json:"subtotal" binding:"min=0"`
	GSTEnabled     bool                `json:"gst_enabled"`
	GSTAmount      float64             `json:"gst_amount" binding:"min=0"`
	TotalAmount    float64             `json:"total_amount" binding:"min=0"`
	Status         string              `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	CouponCode     *string             `json:"coupon_code"`
	DiscountAmount float64             `json:"discount_amount" binding:"min=0"`
}

type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
}

type SaleResponse struct {
	ID             uint               `json:"id"`
	CustomerID     string             `json:"customer_id"`
	Customer       model.SaleCustomer `json:"customer"`
	Items          []model.SaleItem   `json:"sale_items"`
	Subtotal       float64            `json:"subtotal"`
	GSTEnabled     bool               `json:"gst_enabled"`
	GSTAmount      float64            `json:"gst_amount"`
	TotalAmount    float64            `json:"total_amount"`
	Status         string             `json:"status"`
	CouponCode     *string            `json:"coupon_code,omitempty"`
	DiscountAmount float64            `json:"discount_amount"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type SaleFilter struct {
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
