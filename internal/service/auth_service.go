package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/students-sa/planner-api/internal/models"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
)

type sessionCreator interface {
	Create(ctx context.Context, session *models.PlannerSession) error
}

// AuthConfig defines configuration for session token issuing.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	Issuer      string
}

// AuthService issues and validates planner session tokens. Sign-in is
// a display identity only; nothing is verified against a student
// information system and the token is not a security boundary.
type AuthService struct {
	sessions  sessionCreator
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(sessions sessionCreator, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{sessions: sessions, validator: validate, logger: logger, config: config}
}

// SignIn creates a fresh planner session and returns a signed token
// carrying the session id and display identity.
func (s *AuthService) SignIn(ctx context.Context, req models.SignInRequest) (*models.SignInResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid sign-in payload")
	}

	session := &models.PlannerSession{
		Username:  req.Username,
		StudentID: req.StudentID,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create planner session")
	}

	now := time.Now().UTC()
	claims := models.SessionClaims{
		SessionID: session.ID,
		Username:  req.Username,
		StudentID: req.StudentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   session.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign session token")
	}

	s.logger.Info("planner session opened", zap.String("session_id", session.ID), zap.String("username", req.Username))

	return &models.SignInResponse{
		Token:     signed,
		SessionID: session.ID,
		Username:  req.Username,
		StudentID: req.StudentID,
		ExpiresIn: int64(s.config.TokenExpiry.Seconds()),
		IssuedAt:  now,
	}, nil
}

// ParseToken validates a session token and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session token")
	}
	if claims.SessionID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session token missing session id")
	}
	return claims, nil
}
