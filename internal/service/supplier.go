package service

import (
	"context"
	"errors"

	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"github.com/medicore-health/hms/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SupplierService struct {
	suppliers *repository.SupplierRepository
	logger    *zap.Logger
}

func NewSupplierService(suppliers *repository.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{suppliers: suppliers, logger: logger}
}

func (s *SupplierService) Create(ctx context.Context, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &model.Supplier{
		SupplierName:  req.SupplierName,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		LicenseNumber: req.LicenseNumber,
		Address:       req.Address,
		GSTNumber:     req.GSTNumber,
		IsActive:      true,
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	s.logger.Info("supplier created", zap.Uint("supplier_id", supplier.ID))
	return supplierToResponse(supplier), nil
}

func (s *SupplierService) Get(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	supplier, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return supplierToResponse(supplier), nil
}

func (s *SupplierService) List(ctx context.Context, limit, offset int, search string, activeOnly bool) ([]dto.SupplierResponse, int64, error) {
	suppliers, total, err := s.suppliers.List(ctx, limit, offset, search, activeOnly)
	if err != nil {
		return nil, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *supplierToResponse(&suppliers[i]))
	}
	return out, total, nil
}

func (s *SupplierService) Update(ctx context.Context, id uint, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	updates := map[string]interface{}{}
	if req.SupplierName != "" {
		updates["supplier_name"] = req.SupplierName
	}
	if req.ContactPerson != nil {
		updates["contact_person"] = *req.ContactPerson
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.LicenseNumber != nil {
		updates["license_number"] = *req.LicenseNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.GSTNumber != nil {
		updates["gst_number"] = *req.GSTNumber
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.suppliers.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return s.Get(ctx, id)
}

// Delete deactivates rather than removes, so historic stock rows keep their
// supplier reference.
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	if err := s.suppliers.Update(ctx, id, map[string]interface{}{"is_active": false}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		SupplierName:  s.SupplierName,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		LicenseNumber: s.LicenseNumber,
		Address:       s.Address,
		GSTNumber:     s.GSTNumber,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
