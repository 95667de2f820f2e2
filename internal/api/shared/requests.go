package shared

import (
	"encoding/json"
	"net/http"

	"github.com/phrazzld/people-api/internal/validation"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// BindJSON decodes the request body into v and reports decoding problems as
// body violations. An empty body is reported as a missing field.
func BindJSON(r *http.Request, v interface{}) validation.Violations {
	if r.Body == nil || r.Body == http.NoBody {
		return validation.Violations{validation.Missing(validation.LocBody)}
	}
	return validation.FromDecodeError(DecodeJSON(r, v), v)
}

// QueryParam returns the first value of a query parameter, or nil when the
// parameter is absent.
func QueryParam(r *http.Request, name string) *string {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// FormParam returns the first value of a form field, or nil when absent.
// The form must already be parsed.
func FormParam(r *http.Request, name string) *string {
	if r.PostForm == nil {
		return nil
	}
	values, ok := r.PostForm[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// HeaderParam returns a header value, or nil when the header is absent.
func HeaderParam(r *http.Request, name string) *string {
	values := r.Header.Values(name)
	if len(values) == 0 {
		return nil
	}
	return &values[0]
}

// CookieParam returns a cookie value, or nil when the cookie is absent.
func CookieParam(r *http.Request, name string) *string {
	c, err := r.Cookie(name)
	if err != nil {
		return nil
	}
	return &c.Value
}
