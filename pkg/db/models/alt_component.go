package models

import "time"

// AltComponent is a substitute part offered in place of a primary component.
type AltComponent struct {
	ID        int64     `gorm:"column:alt_component_id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:alt_component_name;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AltComponent) TableName() string { return "alt_components" }
