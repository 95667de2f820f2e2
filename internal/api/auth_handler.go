package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/people-api/internal/api/shared"
	"github.com/phrazzld/people-api/internal/domain"
	"github.com/phrazzld/people-api/internal/platform/logger"
	"github.com/phrazzld/people-api/internal/validation"
)

// AuthHandler handles the login form. Credentials are accepted but never
// checked, stored or echoed.
type AuthHandler struct {
	binder    binder
	maxMemory int64
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(v *validation.Validator, b FormBinding, logger *slog.Logger) *AuthHandler {
	if v == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("validator cannot be nil for AuthHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		binder:    binder{validator: v, metrics: b.Metrics},
		maxMemory: b.MaxMemory,
		logger:    logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if vs := h.binder.form(r, h.maxMemory); vs.Len() > 0 {
		h.binder.respondViolations(w, r, vs)
		return
	}

	form := LoginForm{
		Username: formValue(r, "username"),
		Password: domain.SecretString(formValue(r, "password")),
	}
	if vs := h.binder.validator.Struct(validation.LocForm, nil, form); vs.Len() > 0 {
		h.binder.respondViolations(w, r, vs)
		return
	}

	log.Debug("login accepted", slog.String("username", form.Username))
	shared.RespondWithJSON(w, r, http.StatusOK, domain.NewLoginOut(form.Username))
}
