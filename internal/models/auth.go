package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignInRequest is the sign-in collaborator payload. The values are
// used as a greeting and session presence flag only; nothing verifies
// them against a student-information system.
type SignInRequest struct {
	Username  string `json:"username" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
}

// SignInResponse returns the issued session token and echo of the
// display identity.
type SignInResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	Username  string    `json:"username"`
	StudentID string    `json:"student_id"`
	ExpiresIn int64     `json:"expires_in"`
	IssuedAt  time.Time `json:"issued_at"`
}

// SessionClaims are the JWT claims carried by a session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Username  string `json:"username"`
	StudentID string `json:"student_id"`
	jwt.RegisteredClaims
}
