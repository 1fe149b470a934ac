package dto

import "time"

type CreateInventoryItemRequest struct {
	BrandName    string  `json:"brand_name" binding:"required"`
	GenericName  string  `json:"generic_name" binding:"required"`
	DrugCategory *string `json:"drug_category"`
	Form         string  `json:"form" binding:"required"`
	Strength     *string `json:"strength"`
	DrugCode     *string `json:"drug_code"`

	UnitOfMeasure    *string  `json:"unit_of_measure"`
	PackSize         *string  `json:"pack_size"`
	ConversionFactor *float64 `json:"conversion_factor"`

	BatchNumber       string  `json:"batch_number" binding:"required"`
	LotNumber         *string `json:"lot_number"`
	ManufacturingDate *string `json:"manufacturing_date" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate        string  `json:"expiry_date" binding:"required,datetime=2006-01-02"`
	QuantityAvailable int     `json:"quantity_available" binding:"min=0"`
	ReorderLevel      int     `json:"reorder_level" binding:"min=0"`
	MaxStockLevel     *int    `json:"max_stock_level"`

	PurchaseDate  *string  `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	InvoiceNumber *string  `json:"invoice_number"`
	PurchasePrice *float64 `json:"purchase_price"`
	MRP           *float64 `json:"mrp"`
	SellingPrice  *float64 `json:"selling_price"`
	TaxPercent    *float64 `json:"tax_percent"`

	StorageConditions *string `json:"storage_conditions"`
	LocationCode      *string `json:"location_code"`
	ColdChainRequired bool    `json:"cold_chain_required"`

	IsControlledSubstance bool    `json:"is_controlled_substance"`
	PrescriptionRequired  *bool   `json:"prescription_required"`
	DrugLicenseNumber     *string `json:"drug_license_number"`

	SupplierIDs  []uint  `json:"suppliers"`
	Manufacturer *string `json:"manufacturer"`

	UsageInstructions *string `json:"usage_instructions"`
	SideEffects       *string `json:"side_effects"`

	ReasonForAdjustment *string `json:"reason_for_adjustment"`
}

// UpdateInventoryItemRequest accepts the same surface as create with every
// field optional.
type UpdateInventoryItemRequest struct {
	BrandName    string  `json:"brand_name"`
	GenericName  string  `json:"generic_name"`
	DrugCategory *string `json:"drug_category"`
	Form         string  `json:"form"`
	Strength     *string `json:"strength"`
	DrugCode     *string `json:"drug_code"`

	UnitOfMeasure    *string  `json:"unit_of_measure"`
	PackSize         *string  `json:"pack_size"`
	ConversionFactor *float64 `json:"conversion_factor"`

	BatchNumber       string  `json:"batch_number"`
	LotNumber         *string `json:"lot_number"`
	ManufacturingDate *string `json:"manufacturing_date" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate        string  `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	QuantityAvailable *int    `json:"quantity_available" binding:"omitempty,min=0"`
	ReorderLevel      *int    `json:"reorder_level" binding:"omitempty,min=0"`
	MaxStockLevel     *int    `json:"max_stock_level"`

	PurchaseDate  *string  `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	InvoiceNumber *string  `json:"invoice_number"`
	PurchasePrice *float64 `json:"purchase_price"`
	MRP           *float64 `json:"mrp"`
	SellingPrice  *float64 `json:"selling_price"`
	TaxPercent    *float64 `json:"tax_percent"`

	StorageConditions *string `json:"storage_conditions"`
	LocationCode      *string `json:"location_code"`
	ColdChainRequired *bool   `json:"cold_chain_required"`

	IsControlledSubstance *bool   `json:"is_controlled_substance"`
	PrescriptionRequired  *bool   `json:"prescription_required"`
	DrugLicenseNumber     *string `json:"drug_license_number"`

	SupplierIDs  []uint  `json:"suppliers"`
	Manufacturer *string `json:"manufacturer"`

	UsageInstructions *string `json:"usage_instructions"`
	SideEffects       *string `json:"side_effects"`

	ReasonForAdjustment *string `json:"reason_for_adjustment"`
}

type InventoryItemResponse struct {
	ID           uint    `json:"id"`
	BrandName    string  `json:"brand_name"`
	GenericName  string  `json:"generic_name"`
	DrugCategory *string `json:"drug_category,omitempty"`
	Form         string  `json:"form"`
	Strength     *string `json:"strength,omitempty"`
	DrugCode     *string `json:"drug_code,omitempty"`

	UnitOfMeasure    *string  `json:"unit_of_measure,omitempty"`
	PackSize         *string  `json:"pack_size,omitempty"`
	ConversionFactor *float64 `json:"conversion_factor,omitempty"`

	BatchNumber       string     `json:"batch_number"`
	LotNumber         *string    `json:"lot_number,omitempty"`
	ManufacturingDate *time.Time `json:"manufacturing_date,omitempty"`
	ExpiryDate        time.Time  `json:"expiry_date"`
	QuantityAvailable int        `json:"quantity_available"`
	ReorderLevel      int        `json:"reorder_level"`
	MaxStockLevel     *int       `json:"max_stock_level,omitempty"`

	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	InvoiceNumber *string    `json:"invoice_number,omitempty"`
	PurchasePrice *float64   `json:"purchase_price,omitempty"`
	MRP           *float64   `json:"mrp,omitempty"`
	SellingPrice  *float64   `json:"selling_price,omitempty"`
	TaxPercent    *float64   `json:"tax_percent,omitempty"`

	StorageConditions *string `json:"storage_conditions,omitempty"`
	LocationCode      *string `json:"location_code,omitempty"`
	ColdChainRequired bool    `json:"cold_chain_required"`

	IsControlledSubstance bool    `json:"is_controlled_substance"`
	PrescriptionRequired  bool    `json:"prescription_required"`
	DrugLicenseNumber     *string `json:"drug_license_number,omitempty"`

	SupplierIDs  []uint  `json:"suppliers,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`

	UsageInstructions *string `json:"usage_instructions,omitempty"`
	SideEffects       *string `json:"side_effects,omitempty"`

	LinkedToBilling bool `json:"linked_to_billing"`
	LinkedToEMR     bool `json:"linked_to_emr"`

	LastUpdatedBy       *uint   `json:"last_updated_by,omitempty"`
	ReasonForAdjustment *string `json:"reason_for_adjustment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
