package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ers220/component-compass/api/responses"
	pkgAuth "github.com/ers220/component-compass/pkg/auth"
	"github.com/ers220/component-compass/pkg/config"
	pkgerrors "github.com/ers220/component-compass/pkg/errors"
	"github.com/ers220/component-compass/pkg/logger"
)

// TokenCookie is the session cookie set on login and cleared on logout.
const TokenCookie = "cc_token"

// SessionChecker verifies a session id is still live in the server-side store.
type SessionChecker interface {
	HasSession(ctx context.Context, accessID string) (bool, error)
}

// TokenFromRequest pulls the JWT from the session cookie, falling back to a
// bearer header for non-browser clients.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}

func authenticate(r *http.Request, cfg config.JWTConfig, verifier SessionChecker) (*pkgAuth.AccessTokenClaims, error) {
	token := TokenFromRequest(r)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}

	claims, err := pkgAuth.ParseAccessToken(cfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}
	if claims.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id")
	}

	if verifier != nil {
		ok, err := verifier.HasSession(r.Context(), claims.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session")
		}
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable")
		}
	}
	return claims, nil
}

func identityContext(r *http.Request, logg *logger.Logger, claims *pkgAuth.AccessTokenClaims) context.Context {
	ctx := WithIdentity(r.Context(), claims.StudentID, claims.Email, claims.FullName, claims.ID)
	if logg != nil {
		ctx = logg.WithStudentID(ctx, claims.StudentID)
		ctx = logg.WithSessionID(ctx, claims.ID)
	}
	return ctx
}

// Auth guards JSON routes: a missing or dead session yields the 401 envelope.
func Auth(cfg config.JWTConfig, verifier SessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticate(r, cfg, verifier)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(identityContext(r, logg, claims)))
		})
	}
}

// AuthRedirect guards page routes: a missing or dead session flashes a notice
// and bounces the browser back to the landing page.
func AuthRedirect(cfg config.JWTConfig, verifier SessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticate(r, cfg, verifier)
			if err != nil {
				SetFlash(w, "Please log in to continue.")
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(identityContext(r, logg, claims)))
		})
	}
}
