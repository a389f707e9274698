package models

import "github.com/shopspring/decimal"

// SupplierComponent is the (component, supplier) offer carrying stock and
// unit price.
type SupplierComponent struct {
	ComponentID     int64           `gorm:"column:component_id;primaryKey"`
	SupplierID      int64           `gorm:"column:supplier_id;primaryKey"`
	QuantityInStock int             `gorm:"column:quantity_in_stock;not null;default:0"`
	Price           decimal.Decimal `gorm:"column:price_component_per_supplier;type:numeric(10,2);not null"`

	Component *Component `gorm:"foreignKey:ComponentID;references:ID;constraint:OnDelete:CASCADE"`
	Supplier  *Supplier  `gorm:"foreignKey:SupplierID;references:ID;constraint:OnDelete:CASCADE"`
}

func (SupplierComponent) TableName() string { return "supplier_components" }
