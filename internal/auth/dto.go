package auth

import "github.com/ers220/component-compass/internal/users"

// LoginRequest carries the credentials posted by the login form.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SignupRequest carries the fields posted by the signup form.
type SignupRequest struct {
	FullName string `json:"fullname" form:"fullname" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	AccessID    string            `json:"-"`
	Student     *users.StudentDTO `json:"student"`
}
