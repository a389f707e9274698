package controllers

import (
	"net/http"

	"github.com/ers220/component-compass/api/middleware"
	"github.com/ers220/component-compass/api/validators"
	"github.com/ers220/component-compass/internal/auth"
	pkgAuth "github.com/ers220/component-compass/pkg/auth"
	"github.com/ers220/component-compass/pkg/config"
	pkgerrors "github.com/ers220/component-compass/pkg/errors"
	"github.com/ers220/component-compass/pkg/logger"
)

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// Login handles the landing-page form post. Success sets the session cookie
// and sends the browser to /main; failure flashes the reason and returns home.
func Login(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			middleware.SetFlash(w, "Login is temporarily unavailable.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeForm(r, &body); err != nil {
			middleware.SetFlash(w, flashMessage(err))
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			middleware.SetFlash(w, flashMessage(err))
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		setSessionCookie(w, result.AccessToken, 0)
		http.Redirect(w, r, "/main", http.StatusSeeOther)
	}
}

// Logout revokes the server-side session, clears the cookie and returns home.
func Logout(svc auth.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := middleware.TokenFromRequest(r); token != "" && svc != nil {
			// expired cookies still resolve to a session id worth revoking
			if claims, err := pkgAuth.ParseAccessTokenAllowExpired(jwtCfg, token); err == nil {
				if err := svc.Logout(r.Context(), claims.ID); err != nil && logg != nil {
					logg.Error(r.Context(), "logout.revoke", err)
				}
			}
		}

		setSessionCookie(w, "", -1)
		middleware.SetFlash(w, "You have been logged out.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func flashMessage(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		switch typed.Code() {
		case pkgerrors.CodeValidation, pkgerrors.CodeUnauthorized, pkgerrors.CodeConflict, pkgerrors.CodeNotFound:
			if m := typed.Message(); m != "" {
				return m
			}
		}
		return pkgerrors.MetadataFor(typed.Code()).PublicMessage
	}
	return "Something went wrong. Please try again."
}
