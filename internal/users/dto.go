package users

import (
	"time"

	"github.com/ers220/component-compass/pkg/db/models"
)

// StudentDTO is the transport shape that omits sensitive credentials.
type StudentDTO struct {
	ID          int64      `json:"student_id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email_address"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateStudentDTO holds the data required by the repo to persist a new account.
type CreateStudentDTO struct {
	FullName     string
	Email        string
	PasswordHash string
}

func FromModel(s *models.Student) *StudentDTO {
	if s == nil {
		return nil
	}

	return &StudentDTO{
		ID:          s.ID,
		FullName:    s.FullName,
		Email:       s.Email,
		LastLoginAt: s.LastLoginAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (c CreateStudentDTO) ToModel() *models.Student {
	return &models.Student{
		FullName:     c.FullName,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	}
}
