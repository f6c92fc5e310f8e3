package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/students-sa/planner-api/internal/models"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
)

func newAuthFixture() (*AuthService, *mockSessionRepo) {
	sessions := newMockSessionRepo()
	svc := NewAuthService(sessions, nil, nil, AuthConfig{
		TokenSecret: "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "planner-api",
	})
	return svc, sessions
}

func TestSignInIssuesParseableToken(t *testing.T) {
	svc, sessions := newAuthFixture()

	resp, err := svc.SignIn(context.Background(), models.SignInRequest{Username: "sara", StudentID: "441001234"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Contains(t, sessions.sessions, resp.SessionID)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, claims.SessionID)
	assert.Equal(t, "sara", claims.Username)
	assert.Equal(t, "441001234", claims.StudentID)
}

func TestSignInRequiresUsernameAndStudentID(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.SignIn(context.Background(), models.SignInRequest{Username: "sara"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	svc, _ := newAuthFixture()
	resp, err := svc.SignIn(context.Background(), models.SignInRequest{Username: "sara", StudentID: "441001234"})
	require.NoError(t, err)

	other := NewAuthService(newMockSessionRepo(), nil, nil, AuthConfig{TokenSecret: "different", TokenExpiry: time.Hour})
	_, err = other.ParseToken(resp.Token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
