package models

import "time"

// Component is a primary catalog part.
type Component struct {
	ID        int64     `gorm:"column:component_id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:component_name;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Component) TableName() string { return "components" }
