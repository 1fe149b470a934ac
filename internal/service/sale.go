package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"github.com/medicore-health/hms/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const saleGSTRate = 0.18

type SaleService struct {
	sales     *repository.SaleRepository
	inventory *repository.InventoryRepository
	logger    *zap.Logger
}

func NewSaleService(sales *repository.SaleRepository, inventory *repository.InventoryRepository, logger *zap.Logger) *SaleService {
	return &SaleService{sales: sales, inventory: inventory, logger: logger}
}

// Create records a pharmacy sale and deducts stock in the same transaction.
// Totals are recomputed server-side; client-sent amounts are advisory only.
func (s *SaleService) Create(ctx context.Context, req *dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	items := make([]model.SaleItem, 0, len(req.Items))
	var subtotal float64
	for _, line := range req.Items {
		total := line.UnitPrice * float64(line.Quantity)
		items = append(items, model.SaleItem{
			MedicineID: line.MedicineID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Strength:   line.Strength,
			UnitPrice:  line.UnitPrice,
			TotalPrice: total,
		})
		subtotal += total
	}

	var gstAmount float64
	if req.GSTEnabled {
		gstAmount = subtotal * saleGSTRate
	}
	totalAmount := subtotal + gstAmount - req.DiscountAmount
	if totalAmount < 0 {
		totalAmount = 0
	}

	status := req.Status
	if status == "" {
		status = "completed"
	}

	sale := &model.Sale{
		CustomerID:     req.CustomerID,
		Subtotal:       subtotal,
		GSTEnabled:     req.GSTEnabled,
		GSTAmount:      gstAmount,
		TotalAmount:    totalAmount,
		Status:         status,
		CouponCode:     req.CouponCode,
		DiscountAmount: req.DiscountAmount,
		Customer: mustJSON(model.SaleCustomer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		}),
		SaleItems: mustJSON(items),
	}

	err := s.sales.CreateInTx(ctx, sale, func(tx *gorm.DB) error {
		for _, line := range items {
			itemID, perr := strconv.ParseUint(line.MedicineID, 10, 32)
			if perr != nil {
				// External catalog references pass through without a stock hit.
				continue
			}
			result := tx.Model(&model.InventoryItem{}).
				Where("id = ? AND quantity_available >= ?", uint(itemID), line.Quantity).
				Update("quantity_available", gorm.Expr("quantity_available - ?", line.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.WrapError(apperrors.ErrInvalidInput,
					errors.New("insufficient stock for medicine "+line.MedicineID))
			}
		}
		return nil
	})
	if err != nil {
		if apperrors.IsDomainError(err) {
			return nil, err
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.logger.Info("sale recorded",
		zap.Uint("sale_id", sale.ID),
		zap.String("customer_id", sale.CustomerID),
		zap.Float64("total_amount", sale.TotalAmount))
	return saleToResponse(sale)
}

func (s *SaleService) Get(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	sale, err := s.sales.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return saleToResponse(sale)
}

func (s *SaleService) List(ctx context.Context, limit, offset int, filter *dto.SaleFilter) ([]dto.SaleResponse, int64, error) {
	var from, to time.Time
	if filter.From != "" {
		from, _ = time.Parse("2006-01-02", filter.From)
	}
	if filter.To != "" {
		to, _ = time.Parse("2006-01-02", filter.To)
		// Inclusive upper bound covers the whole closing day.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	sales, total, err := s.sales.List(ctx, limit, offset, filter.CustomerID, filter.Status, from, to)
	if err != nil {
		return nil, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp, rerr := saleToResponse(&sales[i])
		if rerr != nil {
			return nil, 0, rerr
		}
		out = append(out, *resp)
	}
	return out, total, nil
}

func (s *SaleService) UpdateStatus(ctx context.Context, id uint, status string) (*dto.SaleResponse, error) {
	if err := s.sales.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return s.Get(ctx, id)
}

func saleToResponse(sale *model.Sale) (*dto.SaleResponse, error) {
	resp := &dto.SaleResponse{
		ID:             sale.ID,
		CustomerID:     sale.CustomerID,
		Subtotal:       sale.Subtotal,
		GSTEnabled:     sale.GSTEnabled,
		GSTAmount:      sale.GSTAmount,
		TotalAmount:    sale.TotalAmount,
		Status:         sale.Status,
		CouponCode:     sale.CouponCode,
		DiscountAmount: sale.DiscountAmount,
		CreatedAt:      sale.CreatedAt,
		UpdatedAt:      sale.UpdatedAt,
	}
	if err := unmarshalJSON(sale.Customer, &resp.Customer); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if err := unmarshalJSON(sale.SaleItems, &resp.Items); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return resp, nil
}
