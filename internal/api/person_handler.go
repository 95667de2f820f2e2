package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/people-api/internal/api/shared"
	"github.com/phrazzld/people-api/internal/domain"
	"github.com/phrazzld/people-api/internal/platform/logger"
	"github.com/phrazzld/people-api/internal/platform/metrics"
	"github.com/phrazzld/people-api/internal/validation"
)

// PersonDirectory answers whether a person ID is known.
type PersonDirectory interface {
	Lookup(id int) error
}

// PersonHandler handles the person routes.
type PersonHandler struct {
	directory PersonDirectory
	binder    binder
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewPersonHandler creates a new PersonHandler. m may be nil to disable metrics.
func NewPersonHandler(
	directory PersonDirectory,
	v *validation.Validator,
	m *metrics.Metrics,
	logger *slog.Logger,
) *PersonHandler {
	if directory == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("directory cannot be nil for PersonHandler")
	}
	if v == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("validator cannot be nil for PersonHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PersonHandler")
	}

	return &PersonHandler{
		directory: directory,
		binder:    binder{validator: v, metrics: m},
		metrics:   m,
		logger:    logger.With(slog.String("component", "person_handler")),
	}
}

// Create handles POST /person/new. The response never carries the password
// or card number.
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var person domain.Person
	if vs := h.binder.body(r, &person); vs.Len() > 0 {
		h.binder.respondViolations(w, r, vs)
		return
	}

	log.Debug("person created",
		slog.String("card_brand", person.CardNumber.Brand()),
		slog.String("card_last4", person.CardNumber.Last4()))
	shared.RespondWithJSON(w, r, http.StatusCreated, person.Out())
}

// ShowByQuery handles GET /person/detail. The response maps the given name
// to the given age; without a name the key is "null".
func (h *PersonHandler) ShowByQuery(w http.ResponseWriter, r *http.Request) {
	query := PersonQuery{
		Name: shared.QueryParam(r, "name"),
		Age:  shared.QueryParam(r, "age"),
	}

	if vs := h.binder.validator.Struct(validation.LocQuery, nil, query); vs.Len() > 0 {
		h.binder.respondViolations(w, r, vs)
		return
	}

	key := absentNameKey
	if query.Name != nil {
		key = *query.Name
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{key: *query.Age})
}

// ShowByID handles GET /person/detail/{person_id}.
func (h *PersonHandler) ShowByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, vs := h.binder.pathPersonID(r)
	if vs.Len() > 0 {
		h.binder.respondViolations(w, r, vs)
		return
	}

	if err := h.directory.Lookup(id); err != nil {
		h.metrics.ObserveLookup(metrics.LookupNotFound)
		log.Debug("person lookup missed", slog.Int("person_id", id))
		HandleAPIError(w, r, err, "Failed to look up person")
		return
	}

	h.metrics.ObserveLookup(metrics.LookupFound)
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{strconv.Itoa(id): PersonExistsMessage})
}

// Update handles PUT /person/{person_id}. Path and body violations are
// reported together. The response merges the public person fields with the
// location fields.
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, vs := h.binder.pathPersonID(r)

	var req UpdatePersonRequest
	vs.Extend(h.binder.body(r, &req))
	if vs.Len() > 0 {
		h.binder.respondViolations(w, r, vs)
		return
	}

	log.Debug("person updated", slog.Int("person_id", id))
	merged := domain.MergeFields(req.Person.Out(), *req.Location)
	shared.RespondWithJSON(w, r, http.StatusCreated, merged)
}
