package validation_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/people-api/internal/domain"
	"github.com/phrazzld/people-api/internal/validation"
)

func decode(body string, dst any) error {
	return json.NewDecoder(bytes.NewBufferString(body)).Decode(dst)
}

func TestFromDecodeError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, validation.FromDecodeError(nil, nil))
	})

	t.Run("empty body", func(t *testing.T) {
		var p domain.Person
		vs := validation.FromDecodeError(decode("", &p), &p)
		require.Len(t, vs, 1)
		assert.Equal(t, []string{"body"}, vs[0].Loc)
		assert.Equal(t, validation.TypeMissing, vs[0].Type)
	})

	t.Run("wrong type for integer", func(t *testing.T) {
		var p domain.Person
		vs := validation.FromDecodeError(decode(`{"age":"old"}`, &p), &p)
		require.Len(t, vs, 1)
		assert.Equal(t, []string{"body", "age"}, vs[0].Loc)
		assert.Equal(t, validation.TypeInteger, vs[0].Type)
	})

	t.Run("embedded struct names stay off the wire path", func(t *testing.T) {
		var p domain.Person
		vs := validation.FromDecodeError(decode(`{"first_name":"Ann","age":"x"}`, &p), &p)
		require.Len(t, vs, 1)
		assert.Equal(t, []string{"body", "age"}, vs[0].Loc)
		assert.Equal(t, validation.TypeInteger, vs[0].Type)
	})

	t.Run("nested embedded field", func(t *testing.T) {
		var req struct {
			Person   *domain.Person   `json:"person"`
			Location *domain.Location `json:"location"`
		}
		vs := validation.FromDecodeError(decode(`{"person":{"age":"x"}}`, &req), &req)
		require.Len(t, vs, 1)
		assert.Equal(t, []string{"body", "person", "age"}, vs[0].Loc)
		assert.Equal(t, validation.TypeInteger, vs[0].Type)
	})

	t.Run("nested string mismatch", func(t *testing.T) {
		var req struct {
			Location *domain.Location `json:"location"`
		}
		vs := validation.FromDecodeError(decode(`{"location":{"city":7}}`, &req), &req)
		require.Len(t, vs, 1)
		assert.Equal(t, []string{"body", "location", "city"}, vs[0].Loc)
		assert.Equal(t, validation.TypeString, vs[0].Type)
	})

	t.Run("syntax error", func(t *testing.T) {
		var p domain.Person
		vs := validation.FromDecodeError(decode(`{"age": 3,}`, &p), &p)
		require.Len(t, vs, 1)
		assert.Equal(t, validation.TypeJSONDecode, vs[0].Type)
		assert.Contains(t, vs[0].Ctx, "pos")
	})
}
