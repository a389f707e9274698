package auth

import (
	"context"
	"testing"
	"time"

	"github.com/ers220/component-compass/pkg/config"
	"github.com/ers220/component-compass/pkg/db/models"
	pkgerrors "github.com/ers220/component-compass/pkg/errors"
	"github.com/ers220/component-compass/pkg/security"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	students  map[string]*models.Student
	lastLogin map[int64]time.Time
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	student, ok := f.students[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return student, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	if f.lastLogin == nil {
		f.lastLogin = map[int64]time.Time{}
	}
	f.lastLogin[id] = at
	return nil
}

type fakeSessions struct {
	started []string
	revoked []string
}

func (f *fakeSessions) Start(_ context.Context, accessID string) error {
	f.started = append(f.started, accessID)
	return nil
}

func (f *fakeSessions) Revoke(_ context.Context, accessID string) error {
	f.revoked = append(f.revoked, accessID)
	return nil
}

func testService(t *testing.T) (Service, *fakeUserRepo, *fakeSessions) {
	t.Helper()

	hash, err := security.HashPassword("secret123", config.PasswordConfig{MinLength: 6})
	require.NoError(t, err)

	repo := &fakeUserRepo{students: map[string]*models.Student{
		"u12345678@tuks.co.za": {
			ID:           42,
			FullName:     "Thandi Nkosi",
			Email:        "u12345678@tuks.co.za",
			PasswordHash: hash,
		},
	}}
	sessions := &fakeSessions{}

	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "component-compass",
			ExpirationMinutes: 30,
		},
	})
	require.NoError(t, err)
	return svc, repo, sessions
}

func TestLoginSuccess(t *testing.T) {
	svc, repo, sessions := testService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  U12345678@tuks.co.za ",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.AccessID)
	require.Equal(t, int64(42), resp.Student.ID)

	require.Len(t, sessions.started, 1)
	require.Equal(t, resp.AccessID, sessions.started[0])

	_, stamped := repo.lastLogin[42]
	require.True(t, stamped, "last login should be recorded")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, sessions := testService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "u12345678@tuks.co.za",
		Password: "wrong",
	})
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())
	require.Equal(t, invalidCredentialsMessage, appErr.Message())
	require.Empty(t, sessions.started)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := testService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@tuks.co.za",
		Password: "secret123",
	})
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())
	require.Equal(t, invalidCredentialsMessage, appErr.Message())
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := testService(t)

	require.NoError(t, svc.Logout(context.Background(), "session-9"))
	require.Equal(t, []string{"session-9"}, sessions.revoked)
}
