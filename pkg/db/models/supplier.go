package models

import "time"

// Supplier is a campus store stocking components.
type Supplier struct {
	ID        int64     `gorm:"column:supplier_id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:supplier_name;not null"`
	Location  *string   `gorm:"column:supplier_location"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Supplier) TableName() string { return "suppliers" }
