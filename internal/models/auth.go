package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleTeacher is the only elevated role.
const RoleTeacher = "TEACHER"

// LoginRequest holds the shared teacher password.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued teacher session token.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresIn   int64     `json:"expiresIn"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Role        string    `json:"role"`
}

// TeacherClaims is the JWT payload of a teacher session.
type TeacherClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TeacherSession is the explicit capability object handed to operations that need elevation.
type TeacherSession struct {
	SessionID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
