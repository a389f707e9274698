package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgAuth "github.com/ers220/component-compass/pkg/auth"
	"github.com/ers220/component-compass/pkg/auth/session"
	"github.com/ers220/component-compass/pkg/config"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "component-compass", ExpirationMinutes: 30}
}

func mintToken(t *testing.T, mgr *session.Manager) (string, string) {
	t.Helper()
	accessID := session.NewAccessID()
	require.NoError(t, mgr.Start(context.Background(), accessID))

	token, err := pkgAuth.MintAccessToken(testJWTConfig(), time.Now(), pkgAuth.AccessTokenPayload{
		StudentID: 7,
		Email:     "u12345678@tuks.co.za",
		FullName:  "Thandi Nkosi",
		JTI:       accessID,
	})
	require.NoError(t, err)
	return token, accessID
}

func identityEcho(t *testing.T, wantAccessID string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, int64(7), StudentIDFromContext(r.Context()))
		require.Equal(t, "u12345678@tuks.co.za", EmailFromContext(r.Context()))
		require.Equal(t, "Thandi Nkosi", FullNameFromContext(r.Context()))
		require.Equal(t, wantAccessID, AccessIDFromContext(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthAcceptsCookie(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Minute)
	token, accessID := mintToken(t, mgr)

	handler := Auth(testJWTConfig(), mgr, nil)(identityEcho(t, accessID))

	req := httptest.NewRequest("GET", "/api/practicals", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthAcceptsBearerHeader(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Minute)
	token, accessID := mintToken(t, mgr)

	handler := Auth(testJWTConfig(), mgr, nil)(identityEcho(t, accessID))

	req := httptest.NewRequest("GET", "/api/practicals", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthRejectsMissingToken(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Minute)
	handler := Auth(testJWTConfig(), mgr, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/practicals", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Minute)
	token, accessID := mintToken(t, mgr)
	require.NoError(t, mgr.Revoke(context.Background(), accessID))

	handler := Auth(testJWTConfig(), mgr, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/api/practicals", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRedirectBouncesToLanding(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Minute)
	handler := AuthRedirect(testJWTConfig(), mgr, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/main", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	flashed := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == FlashCookie && cookie.Value != "" {
			flashed = true
		}
	}
	require.True(t, flashed, "expected a flash cookie on redirect")
}

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	SetFlash(rec, "Please log in to continue.")

	req := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}

	rec2 := httptest.NewRecorder()
	require.Equal(t, "Please log in to continue.", PopFlash(rec2, req))
}
