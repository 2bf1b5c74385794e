package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/artifexgroup/artifex-site-backend/errs"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    EmailSender
}

func newContactHandler(mailer EmailSender) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

// ContactRequest is a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitContact validates a contact-form submission and forwards it to the
// transactional-mail provider. Nothing is persisted.
// @Summary Submit contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "Contact form data"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or invalid fields"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Email delivery failed"
// @Router /contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		if !emailPattern.MatchString(req.Email) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "invalid email format"))
			return
		}

		if h.mailer == nil {
			h.responder.WriteError(w, errs.NewServiceUnavailableError("email", nil))
			return
		}

		if err := h.mailer.SendContactNotification(r.Context(), req.Name, req.Email, req.Message); err != nil {
			h.logger.Error().Err(err).Msg("contact notification failed")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message sent successfully",
		})
	}
}
