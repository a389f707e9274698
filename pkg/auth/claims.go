package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	StudentID int64
	Email     string
	FullName  string
	JTI       string
}

// AccessTokenClaims represents the typed JWT carried by the session cookie.
type AccessTokenClaims struct {
	StudentID int64  `json:"student_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	jwt.RegisteredClaims
}
