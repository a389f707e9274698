package controllers

import (
	"net/http"

	"github.com/ers220/component-compass/api/middleware"
	"github.com/ers220/component-compass/api/responses"
	"github.com/ers220/component-compass/api/validators"
	"github.com/ers220/component-compass/internal/feedback"
	"github.com/ers220/component-compass/pkg/logger"
)

type submitFeedbackRequest struct {
	Rating   int    `json:"rating" validate:"min=0,max=5"`
	Feedback string `json:"feedback"`
}

// SubmitFeedback archives an exit-page feedback submission to disk.
func SubmitFeedback(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body submitFeedbackRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		result, err := svc.Save(ctx, feedback.Entry{
			StudentName:  middleware.FullNameFromContext(ctx),
			StudentEmail: middleware.EmailFromContext(ctx),
			Rating:       body.Rating,
			Feedback:     body.Feedback,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{
			"message":  "Feedback saved successfully",
			"filename": result.Filename,
		})
	}
}
