package models

import "github.com/shopspring/decimal"

// SupplierAltComponent mirrors SupplierComponent for substitute parts.
type SupplierAltComponent struct {
	AltComponentID  int64           `gorm:"column:alt_component_id;primaryKey"`
	SupplierID      int64           `gorm:"column:supplier_id;primaryKey"`
	QuantityInStock int             `gorm:"column:alt_quantity_in_stock;not null;default:0"`
	Price           decimal.Decimal `gorm:"column:alt_price_component_per_supplier;type:numeric(10,2);not null"`

	AltComponent *AltComponent `gorm:"foreignKey:AltComponentID;references:ID;constraint:OnDelete:CASCADE"`
	Supplier     *Supplier     `gorm:"foreignKey:SupplierID;references:ID;constraint:OnDelete:CASCADE"`
}

func (SupplierAltComponent) TableName() string { return "supplier_alt_components" }
