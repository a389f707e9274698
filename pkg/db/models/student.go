package models

import "time"

// Student represents a registered account. Created at signup and only ever
// touched again to stamp last_login_at.
type Student struct {
	ID           int64      `gorm:"column:student_id;primaryKey;autoIncrement"`
	FullName     string     `gorm:"column:full_name;not null"`
	Email        string     `gorm:"column:email_address;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Student) TableName() string { return "students" }
