package users

import (
	"context"
	"time"

	"github.com/ers220/component-compass/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes student-account persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a students repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new student and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateStudentDTO) (*models.Student, error) {
	student := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return nil, err
	}
	return student, nil
}

// FindByEmail retrieves the student matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("email_address = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByID loads a student by their numeric id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, "student_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByEmail reports whether an account already uses the email.
func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("email_address = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateLastLogin refreshes the student's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("student_id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
