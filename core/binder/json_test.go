package binder_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexient-labs/portico/core/binder"
)

func TestJSONBinder(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	t.Run("decodes a valid body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/users", strings.NewReader(`{"name":"ada","age":36}`))
		var p payload
		require.NoError(t, binder.JSON()(r, &p))
		assert.Equal(t, payload{Name: "ada", Age: 36}, p)
	})

	t.Run("empty body is a validation error", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/users", strings.NewReader(""))
		var p payload
		err := binder.JSON()(r, &p)

		var verr *binder.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "body", verr.Field)
	})

	t.Run("malformed body is a validation error", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/users", strings.NewReader(`{"name":`))
		var p payload
		err := binder.JSON()(r, &p)

		var verr *binder.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "body", verr.Field)
		assert.Contains(t, err.Error(), "malformed json")
	})
}

func TestTextBinder(t *testing.T) {
	t.Parallel()

	t.Run("into string", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/raw", strings.NewReader("plain payload"))
		var s string
		require.NoError(t, binder.Text()(r, &s))
		assert.Equal(t, "plain payload", s)
	})

	t.Run("into byte slice", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/raw", strings.NewReader("bytes"))
		var b []byte
		require.NoError(t, binder.Text()(r, &b))
		assert.Equal(t, []byte("bytes"), b)
	})

	t.Run("rejects other targets", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/raw", strings.NewReader("x"))
		var n int
		assert.ErrorIs(t, binder.Text()(r, &n), binder.ErrInvalidTarget)
	})
}
