package controllers

import (
	"net/http"

	"github.com/ers220/component-compass/api/middleware"
	"github.com/ers220/component-compass/api/responses"
	"github.com/ers220/component-compass/api/validators"
	"github.com/ers220/component-compass/internal/cart"
	"github.com/ers220/component-compass/pkg/logger"
)

type completePracticalRequest struct {
	Cart []cart.Item `json:"cart"`
}

// CompletePractical stores the finalized cart in the session and points the
// browser at the exit page.
func CompletePractical(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body completePracticalRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		accessID := middleware.AccessIDFromContext(r.Context())
		if err := svc.Save(r.Context(), accessID, body.Cart); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"redirect": "/exit"})
	}
}
