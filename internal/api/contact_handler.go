package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/people-api/internal/api/shared"
	"github.com/phrazzld/people-api/internal/domain"
	"github.com/phrazzld/people-api/internal/platform/logger"
	"github.com/phrazzld/people-api/internal/validation"
)

// ContactHandler handles the contact form.
type ContactHandler struct {
	binder    binder
	maxMemory int64
	logger    *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(v *validation.Validator, b FormBinding, logger *slog.Logger) *ContactHandler {
	if v == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("validator cannot be nil for ContactHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ContactHandler")
	}

	return &ContactHandler{
		binder:    binder{validator: v, metrics: b.Metrics},
		maxMemory: b.MaxMemory,
		logger:    logger.With(slog.String("component", "contact_handler")),
	}
}

// Contact handles POST /contact. It answers with the caller's User-Agent,
// or null when the header was not sent.
func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if vs := h.binder.form(r, h.maxMemory); vs.Len() > 0 {
		h.binder.respondViolations(w, r, vs)
		return
	}

	form := domain.ContactForm{
		FirstName: formValue(r, "first_name"),
		LastName:  formValue(r, "last_name"),
		Email:     formValue(r, "email"),
		Message:   formValue(r, "message"),
	}
	params := ContactParams{
		UserAgent: shared.HeaderParam(r, "User-Agent"),
		Ads:       shared.CookieParam(r, "ads"),
	}

	if vs := h.binder.validator.Struct(validation.LocForm, nil, form); vs.Len() > 0 {
		h.binder.respondViolations(w, r, vs)
		return
	}

	log.Debug("contact message received",
		slog.Int("message_length", len(form.Message)),
		slog.Bool("ads_cookie", params.Ads != nil))
	shared.RespondWithJSON(w, r, http.StatusOK, params.UserAgent)
}
