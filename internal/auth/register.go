package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/ers220/component-compass/internal/users"
	"github.com/ers220/component-compass/pkg/config"
	"github.com/ers220/component-compass/pkg/db"
	pkgerrors "github.com/ers220/component-compass/pkg/errors"
	"github.com/ers220/component-compass/pkg/security"
	"gorm.io/gorm"
)

// RegisterService handles the signup transaction.
type RegisterService interface {
	Register(ctx context.Context, req SignupRequest) (*LoginResponse, error)
}

// RegisterServiceParams packages the dependencies for the signup flow.
type RegisterServiceParams struct {
	DB             *db.Client
	Login          Service
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db          *db.Client
	login       Service
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a signup service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	if params.Login == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "login service required")
	}
	return &registerService{
		db:          params.DB,
		login:       params.Login,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Register creates the account and signs the new student straight in.
func (s *registerService) Register(ctx context.Context, req SignupRequest) (*LoginResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if fullName == "" || email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "All fields are required.")
	}
	minLength := s.passwordCfg.MinLength
	if minLength <= 0 {
		minLength = 6
	}
	if len(req.Password) < minLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Password must be at least 6 characters long.")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := users.NewRepository(tx)

		if _, err := repo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "An account with this email already exists. Please login instead.")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check student email")
		}

		if _, err := repo.Create(ctx, users.CreateStudentDTO{
			FullName:     fullName,
			Email:        email,
			PasswordHash: passwordHash,
		}); err != nil {
			if pkgerrors.IsDuplicateKey(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "An account with this email already exists. Please login instead.")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create student")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.login.Login(ctx, LoginRequest{Email: email, Password: req.Password})
}
