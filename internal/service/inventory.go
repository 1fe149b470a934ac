package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"github.com/medicore-health/hms/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InventoryService struct {
	inventory *repository.InventoryRepository
	logger    *zap.Logger
}

func NewInventoryService(inventory *repository.InventoryRepository, logger *zap.Logger) *InventoryService {
	return &InventoryService{inventory: inventory, logger: logger}
}

func (s *InventoryService) Create(ctx context.Context, req *dto.CreateInventoryItemRequest, actorID *uint) (*dto.InventoryItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}
	if !expiryDate.After(time.Now()) {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput,
			errors.New("expiry date must be in the future"))
	}

	item := &model.InventoryItem{
		BrandName:             req.BrandName,
		GenericName:           req.GenericName,
		DrugCategory:          req.DrugCategory,
		Form:                  req.Form,
		Strength:              req.Strength,
		DrugCode:              req.DrugCode,
		UnitOfMeasure:         req.UnitOfMeasure,
		PackSize:              req.PackSize,
		ConversionFactor:      req.ConversionFactor,
		BatchNumber:           req.BatchNumber,
		LotNumber:             req.LotNumber,
		ExpiryDate:            expiryDate,
		QuantityAvailable:     req.QuantityAvailable,
		ReorderLevel:          req.ReorderLevel,
		MaxStockLevel:         req.MaxStockLevel,
		InvoiceNumber:         req.InvoiceNumber,
		PurchasePrice:         req.PurchasePrice,
		MRP:                   req.MRP,
		SellingPrice:          req.SellingPrice,
		TaxPercent:            req.TaxPercent,
		StorageConditions:     req.StorageConditions,
		LocationCode:          req.LocationCode,
		ColdChainRequired:     req.ColdChainRequired,
		IsControlledSubstance: req.IsControlledSubstance,
		PrescriptionRequired:  true,
		DrugLicenseNumber:     req.DrugLicenseNumber,
		SupplierIDs:           mustJSON(req.SupplierIDs),
		Manufacturer:          req.Manufacturer,
		UsageInstructions:     req.UsageInstructions,
		SideEffects:           req.SideEffects,
		LastUpdatedBy:         actorID,
		ReasonForAdjustment:   req.ReasonForAdjustment,
	}
	if req.PrescriptionRequired != nil {
		item.PrescriptionRequired = *req.PrescriptionRequired
	}
	if req.ManufacturingDate != nil {
		if parsed, perr := time.Parse("2006-01-02", *req.ManufacturingDate); perr == nil {
			item.ManufacturingDate = &parsed
		}
	}
	if req.PurchaseDate != nil {
		if parsed, perr := time.Parse("2006-01-02", *req.PurchaseDate); perr == nil {
			item.PurchaseDate = &parsed
		}
	}

	if err := s.inventory.Create(ctx, item); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	s.logger.Info("inventory item created",
		zap.Uint("item_id", item.ID),
		zap.String("brand_name", item.BrandName),
		zap.String("batch_number", item.BatchNumber))
	return inventoryToResponse(item), nil
}

func (s *InventoryService) Get(ctx context.Context, id uint) (*dto.InventoryItemResponse, error) {
	item, err := s.inventory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return inventoryToResponse(item), nil
}

func (s *InventoryService) List(ctx context.Context, limit, offset int, search, category string, lowStock bool) ([]dto.InventoryItemResponse, int64, error) {
	items, total, err := s.inventory.List(ctx, limit, offset, search, category, lowStock)
	if err != nil {
		return nil, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *inventoryToResponse(&items[i]))
	}
	return out, total, nil
}

// ListExpiring reports stocked batches expiring within the window.
func (s *InventoryService) ListExpiring(ctx context.Context, withinDays int) ([]dto.InventoryItemResponse, error) {
	if withinDays <= 0 {
		withinDays = 90
	}
	cutoff := time.Now().AddDate(0, 0, withinDays)
	items, err := s.inventory.ListExpiringBefore(ctx, cutoff)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *inventoryToResponse(&items[i]))
	}
	return out, nil
}

func (s *InventoryService) Update(ctx context.Context, id uint, req *dto.UpdateInventoryItemRequest, actorID *uint) (*dto.InventoryItemResponse, error) {
	updates := map[string]interface{}{}
	if req.BrandName != "" {
		updates["brand_name"] = req.BrandName
	}
	if req.GenericName != "" {
		updates["generic_name"] = req.GenericName
	}
	if req.DrugCategory != nil {
		updates["drug_category"] = *req.DrugCategory
	}
	if req.Form != "" {
		updates["form"] = req.Form
	}
	if req.Strength != nil {
		updates["strength"] = *req.Strength
	}
	if req.DrugCode != nil {
		updates["drug_code"] = *req.DrugCode
	}
	if req.UnitOfMeasure != nil {
		updates["unit_of_measure"] = *req.UnitOfMeasure
	}
	if req.PackSize != nil {
		updates["pack_size"] = *req.PackSize
	}
	if req.ConversionFactor != nil {
		updates["conversion_factor"] = *req.ConversionFactor
	}
	if req.BatchNumber != "" {
		updates["batch_number"] = req.BatchNumber
	}
	if req.LotNumber != nil {
		updates["lot_number"] = *req.LotNumber
	}
	if req.ManufacturingDate != nil {
		if parsed, perr := time.Parse("2006-01-02", *req.ManufacturingDate); perr == nil {
			updates["manufacturing_date"] = parsed
		}
	}
	if req.ExpiryDate != "" {
		parsed, perr := time.Parse("2006-01-02", req.ExpiryDate)
		if perr != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, perr)
		}
		updates["expiry_date"] = parsed
	}
	if req.QuantityAvailable != nil {
		updates["quantity_available"] = *req.QuantityAvailable
	}
	if req.ReorderLevel != nil {
		updates["reorder_level"] = *req.ReorderLevel
	}
	if req.MaxStockLevel != nil {
		updates["max_stock_level"] = *req.MaxStockLevel
	}
	if req.PurchaseDate != nil {
		if parsed, perr := time.Parse("2006-01-02", *req.PurchaseDate); perr == nil {
			updates["purchase_date"] = parsed
		}
	}
	if req.InvoiceNumber != nil {
		updates["invoice_number"] = *req.InvoiceNumber
	}
	if req.PurchasePrice != nil {
		updates["purchase_price"] = *req.PurchasePrice
	}
	if req.MRP != nil {
		updates["mrp"] = *req.MRP
	}
	if req.SellingPrice != nil {
		updates["selling_price"] = *req.SellingPrice
	}
	if req.TaxPercent != nil {
		updates["tax_percent"] = *req.TaxPercent
	}
	if req.StorageConditions != nil {
		updates["storage_conditions"] = *req.StorageConditions
	}
	if req.LocationCode != nil {
		updates["location_code"] = *req.LocationCode
	}
	if req.ColdChainRequired != nil {
		updates["cold_chain_required"] = *req.ColdChainRequired
	}
	if req.IsControlledSubstance != nil {
		updates["is_controlled_substance"] = *req.IsControlledSubstance
	}
	if req.PrescriptionRequired != nil {
		updates["prescription_required"] = *req.PrescriptionRequired
	}
	if req.DrugLicenseNumber != nil {
		updates["drug_license_number"] = *req.DrugLicenseNumber
	}
	if req.SupplierIDs != nil {
		updates["supplier_ids"] = mustJSON(req.SupplierIDs)
	}
	if req.Manufacturer != nil {
		updates["manufacturer"] = *req.Manufacturer
	}
	if req.UsageInstructions != nil {
		updates["usage_instructions"] = *req.UsageInstructions
	}
	if req.SideEffects != nil {
		updates["side_effects"] = *req.SideEffects
	}
	if req.ReasonForAdjustment != nil {
		updates["reason_for_adjustment"] = *req.ReasonForAdjustment
	}

	if len(updates) > 0 {
		if actorID != nil {
			updates["last_updated_by"] = *actorID
		}
		if err := s.inventory.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return s.Get(ctx, id)
}

func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	if err := s.inventory.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func inventoryToResponse(item *model.InventoryItem) *dto.InventoryItemResponse {
	resp := &dto.InventoryItemResponse{
		ID:                    item.ID,
		BrandName:             item.BrandName,
		GenericName:           item.GenericName,
		DrugCategory:          item.DrugCategory,
		Form:                  item.Form,
		Strength:              item.Strength,
		DrugCode:              item.DrugCode,
		UnitOfMeasure:         item.UnitOfMeasure,
		PackSize:              item.PackSize,
		ConversionFactor:      item.ConversionFactor,
		BatchNumber:           item.BatchNumber,
		LotNumber:             item.LotNumber,
		ManufacturingDate:     item.ManufacturingDate,
		ExpiryDate:            item.ExpiryDate,
		QuantityAvailable:     item.QuantityAvailable,
		ReorderLevel:          item.ReorderLevel,
		MaxStockLevel:         item.MaxStockLevel,
		PurchaseDate:          item.PurchaseDate,
		InvoiceNumber:         item.InvoiceNumber,
		PurchasePrice:         item.PurchasePrice,
		MRP:                   item.MRP,
		SellingPrice:          item.SellingPrice,
		TaxPercent:            item.TaxPercent,
		StorageConditions:     item.StorageConditions,
		LocationCode:          item.LocationCode,
		ColdChainRequired:     item.ColdChainRequired,
		IsControlledSubstance: item.IsControlledSubstance,
		PrescriptionRequired:  item.PrescriptionRequired,
		DrugLicenseNumber:     item.DrugLicenseNumber,
		Manufacturer:          item.Manufacturer,
		UsageInstructions:     item.UsageInstructions,
		SideEffects:           item.SideEffects,
		LinkedToBilling:       item.LinkedToBilling,
		LinkedToEMR:           item.LinkedToEMR,
		LastUpdatedBy:         item.LastUpdatedBy,
		ReasonForAdjustment:   item.ReasonForAdjustment,
		CreatedAt:             item.CreatedAt,
		UpdatedAt:             item.UpdatedAt,
	}
	if len(item.SupplierIDs) > 0 {
		_ = json.Unmarshal(item.SupplierIDs, &resp.SupplierIDs)
	}
	return resp
}
