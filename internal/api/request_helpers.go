package api

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/people-api/internal/api/shared"
	"github.com/phrazzld/people-api/internal/domain"
	"github.com/phrazzld/people-api/internal/platform/metrics"
	"github.com/phrazzld/people-api/internal/validation"
)

// personIDParam is the chi URL parameter carrying a person ID.
const personIDParam = "person_id"

// FormBinding configures how form bodies are parsed.
type FormBinding struct {
	// MaxMemory is the number of bytes of a multipart body kept in memory
	// before spilling to temporary files.
	MaxMemory int64
	Metrics   *metrics.Metrics
}

// binder turns request parameters into validated values.
type binder struct {
	validator *validation.Validator
	metrics   *metrics.Metrics
}

// pathPersonID reads person_id from the URL. The value must be an integer
// greater than zero.
func (b binder) pathPersonID(r *http.Request) (int, validation.Violations) {
	raw := chi.URLParam(r, personIDParam)
	if raw == "" {
		return 0, validation.Violations{validation.Missing(validation.LocPath, personIDParam)}
	}

	id, err := parsePersonID(raw)
	if err != nil {
		return 0, validation.Violations{
			validation.NewViolation(validation.LocPath, []string{personIDParam},
				validation.TypeInteger, validation.MsgInteger, raw),
		}
	}

	return id, b.validator.Struct(validation.LocPath, nil, PersonIDPath{PersonID: id})
}

// parsePersonID converts the raw path segment into an ID. Range checks are
// left to the PersonIDPath rules.
func parsePersonID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}

// body decodes a JSON body into v and validates it. When decoding only hit
// type mismatches the rest of v is still validated, so every failing field
// is reported at once.
func (b binder) body(r *http.Request, v any) validation.Violations {
	vs := shared.BindJSON(r, v)
	if !onlyTypeErrors(vs) {
		return vs
	}

	for _, fv := range b.validator.Struct(validation.LocBody, nil, v) {
		if !hasLoc(vs, fv.Loc) {
			vs.Add(fv)
		}
	}
	return vs
}

// form parses a urlencoded or multipart form body.
func (b binder) form(r *http.Request, maxMemory int64) validation.Violations {
	var err error
	if isMultipart(r) {
		err = r.ParseMultipartForm(maxMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return validation.Violations{
			validation.NewViolation(validation.LocForm, nil, validation.TypeGeneric, "form body could not be parsed", nil),
		}
	}
	return nil
}

// respondViolations records each violation and writes the 422 response.
func (b binder) respondViolations(w http.ResponseWriter, r *http.Request, vs validation.Violations) {
	for _, v := range vs {
		b.metrics.ObserveViolation(string(v.Source()))
	}
	shared.RespondWithViolations(w, r, vs)
}

// formValue returns a form field, treating an empty value as absent.
func formValue(r *http.Request, name string) string {
	if v := shared.FormParam(r, name); v != nil {
		return *v
	}
	return ""
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "multipart/")
}

func onlyTypeErrors(vs validation.Violations) bool {
	for _, v := range vs {
		if !strings.HasPrefix(v.Type, "type_error.") {
			return false
		}
	}
	return true
}

func hasLoc(vs validation.Violations, loc []string) bool {
	for _, v := range vs {
		if slices.Equal(v.Loc, loc) {
			return true
		}
	}
	return false
}

// isMissingUpload reports whether a multipart parse or lookup error means no
// file was sent.
func isMissingUpload(err error) bool {
	return errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)
}
