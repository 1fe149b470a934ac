package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InventoryItem struct {
	gorm.Model
	BrandName    string  `gorm:"column:brand_name;not null"`
	GenericName  string  `gorm:"column:generic_name;not null"`
	DrugCategory *string `gorm:"column:drug_category"`
	Form         string  `gorm:"column:form;not null"`
	Strength     *string `gorm:"column:strength"`
	DrugCode     *string `gorm:"column:drug_code"`

	UnitOfMeasure    *string  `gorm:"column:unit_of_measure"`
	PackSize         *string  `gorm:"column:pack_size"`
	ConversionFactor *float64 `gorm:"column:conversion_factor"`

	BatchNumber       string     `gorm:"column:batch_number;not null"`
	LotNumber         *string    `gorm:"column:lot_number"`
	ManufacturingDate *time.Time `gorm:"column:manufacturing_date"`
	ExpiryDate        time.Time  `gorm:"column:expiry_date;not null;index"`
	QuantityAvailable int        `gorm:"column:quantity_available;not null;default:0"`
	ReorderLevel      int        `gorm:"column:reorder_level;default:0"`
	MaxStockLevel     *int       `gorm:"column:max_stock_level"`

	PurchaseDate  *time.Time `gorm:"column:purchase_date"`
	InvoiceNumber *string    `gorm:"column:invoice_number"`
	PurchasePrice *float64   `gorm:"column:purchase_price"`
	MRP           *float64   `gorm:"column:mrp"`
	SellingPrice  *float64   `gorm:"column:selling_price"`
	TaxPercent    *float64   `gorm:"column:tax_percent"`

	StorageConditions *string `gorm:"column:storage_conditions"`
	LocationCode      *string `gorm:"column:location_code"`
	ColdChainRequired bool    `gorm:"column:cold_chain_required;default:false"`

	IsControlledSubstance bool    `gorm:"column:is_controlled_substance;default:false"`
	PrescriptionRequired  bool    `gorm:"column:prescription_required;default:true"`
	DrugLicenseNumber     *string `gorm:"column:drug_license_number"`

	// Supplier surrogate IDs, kept as a JSON list like the other array columns
	SupplierIDs  datatypes.JSON `gorm:"column:supplier_ids"`
	Manufacturer *string        `gorm:"column:manufacturer"`

	UsageInstructions *string `gorm:"column:usage_instructions"`
	SideEffects       *string `gorm:"column:side_effects"`

	LinkedToBilling bool `gorm:"column:linked_to_billing;default:true"`
	LinkedToEMR     bool `gorm:"column:linked_to_emr;default:true"`

	LastUpdatedBy       *uint   `gorm:"column:last_updated_by"`
	ReasonForAdjustment *string `gorm:"column:reason_for_adjustment"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
