package models

import "time"

// Practical is a lab exercise with an associated bill of components. Seed data
// only; the application never writes this table.
type Practical struct {
	PracNumber int64     `gorm:"column:prac_number;primaryKey;autoIncrement"`
	PracName   string    `gorm:"column:prac_name;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Practical) TableName() string { return "practicals" }
