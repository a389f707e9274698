package controllers

import (
	"net/http"

	"github.com/ers220/component-compass/api/middleware"
	"github.com/ers220/component-compass/api/validators"
	"github.com/ers220/component-compass/internal/auth"
	"github.com/ers220/component-compass/pkg/logger"
)

// Signup handles the signup form post. A new account is logged straight in;
// failures flash the reason and return to the signup page.
func Signup(svc auth.RegisterService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			middleware.SetFlash(w, "Signup is temporarily unavailable.")
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
			return
		}

		var body auth.SignupRequest
		if err := validators.DecodeForm(r, &body); err != nil {
			middleware.SetFlash(w, flashMessage(err))
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
			return
		}

		result, err := svc.Register(r.Context(), body)
		if err != nil {
			middleware.SetFlash(w, flashMessage(err))
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
			return
		}

		setSessionCookie(w, result.AccessToken, 0)
		http.Redirect(w, r, "/main", http.StatusSeeOther)
	}
}
