package shared

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/people-api/internal/validation"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "test", "age": 30}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "test", "age": 30,}`, // trailing comma
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
			errContains: "EOF",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var target struct {
				Name string `json:"name"`
				Age  int    `json:"age"`
			}
			err := DecodeJSON(req, &target)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", target.Name)
			assert.Equal(t, 30, target.Age)
		})
	}
}

// errorReader is a body that fails on read.
type errorReader struct{}

func (er errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONWithReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})

	var target struct{}
	err := DecodeJSON(req, &target)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestBindJSON(t *testing.T) {
	t.Run("no body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		var target struct{}
		vs := BindJSON(req, &target)
		require.Len(t, vs, 1)
		assert.Equal(t, validation.TypeMissing, vs[0].Type)
	})

	t.Run("type mismatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"age":"x"}`))
		var target struct {
			Age int `json:"age"`
		}
		vs := BindJSON(req, &target)
		require.Len(t, vs, 1)
		assert.Equal(t, []string{"body", "age"}, vs[0].Loc)
	})

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"age":3}`))
		var target struct {
			Age int `json:"age"`
		}
		assert.Empty(t, BindJSON(req, &target))
		assert.Equal(t, 3, target.Age)
	})
}

func TestParams(t *testing.T) {
	form := url.Values{"username": {"alice"}, "empty": {""}}
	req := httptest.NewRequest(http.MethodPost, "/test?name=bob&blank=", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "curl/8.0")
	req.AddCookie(&http.Cookie{Name: "ads", Value: "yes"})
	require.NoError(t, req.ParseForm())

	require.NotNil(t, QueryParam(req, "name"))
	assert.Equal(t, "bob", *QueryParam(req, "name"))
	require.NotNil(t, QueryParam(req, "blank"))
	assert.Equal(t, "", *QueryParam(req, "blank"))
	assert.Nil(t, QueryParam(req, "missing"))

	require.NotNil(t, FormParam(req, "username"))
	assert.Equal(t, "alice", *FormParam(req, "username"))
	assert.NotNil(t, FormParam(req, "empty"))
	assert.Nil(t, FormParam(req, "password"))

	require.NotNil(t, HeaderParam(req, "User-Agent"))
	assert.Equal(t, "curl/8.0", *HeaderParam(req, "User-Agent"))
	assert.Nil(t, HeaderParam(req, "X-Missing"))

	require.NotNil(t, CookieParam(req, "ads"))
	assert.Equal(t, "yes", *CookieParam(req, "ads"))
	assert.Nil(t, CookieParam(req, "session"))
}
