package models

// PracticalComponent maps a practical to a required component, with quantity
// and an optional substitute. The alternate reference is nulled when the
// substitute part is removed.
type PracticalComponent struct {
	ComponentID    int64  `gorm:"column:component_id;primaryKey"`
	PracNumber     int64  `gorm:"column:prac_number;primaryKey"`
	Quantity       int    `gorm:"column:quantity;not null;default:1"`
	AltComponentID *int64 `gorm:"column:alt_component_id"`

	Component    *Component    `gorm:"foreignKey:ComponentID;references:ID;constraint:OnDelete:CASCADE"`
	Practical    *Practical    `gorm:"foreignKey:PracNumber;references:PracNumber;constraint:OnDelete:CASCADE"`
	AltComponent *AltComponent `gorm:"foreignKey:AltComponentID;references:ID;constraint:OnDelete:SET NULL"`
}

func (PracticalComponent) TableName() string { return "practical_components" }
