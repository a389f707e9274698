package controllers

import (
	"fmt"
	"net/http"

	"github.com/ers220/component-compass/api/middleware"
	"github.com/ers220/component-compass/api/responses"
	"github.com/ers220/component-compass/api/validators"
	"github.com/ers220/component-compass/internal/receipts"
	"github.com/ers220/component-compass/pkg/logger"
)

type exportRequest struct {
	Components []receipts.Line `json:"components"`
}

// ExportReceipt writes the reservation receipt for the posted component list.
func ExportReceipt(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body exportRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		result, err := svc.Export(ctx, receipts.StudentInfo{
			FullName: middleware.FullNameFromContext(ctx),
			Email:    middleware.EmailFromContext(ctx),
		}, body.Components)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{
			"message":  fmt.Sprintf("Receipt exported successfully! %s file created.", result.Format),
			"filename": result.Filename,
			"format":   result.Format,
		})
	}
}
