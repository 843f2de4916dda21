package envelope_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexient-labs/portico/core/envelope"
)

func TestEnvelopeDefaulting(t *testing.T) {
	t.Parallel()

	t.Run("empty envelope yields 204 with empty body", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, envelope.Empty().Write(rec, nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("text body yields 200 text/plain", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, envelope.Text("hi").Write(rec, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hi", rec.Body.String())
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("error with explicit status keeps it", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, envelope.Error("bad").WithStatus(http.StatusConflict).Write(rec, nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "bad", rec.Body.String())
	})

	t.Run("error without status defaults to 500", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, envelope.Error("boom").Write(rec, nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "boom", rec.Body.String())
	})

	t.Run("structured body is json encoded with 200", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, envelope.JSON(map[string]int{"n": 42}).Write(rec, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"n":42}`, rec.Body.String())
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("raw bytes pass through with content type override", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		env := envelope.Raw([]byte{0x1, 0x2}).WithContentType("application/octet-stream")
		require.NoError(t, env.Write(rec, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []byte{0x1, 0x2}, rec.Body.Bytes())
		assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	})
}

func TestEnvelopeContractViolation(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	rec := httptest.NewRecorder()
	env := envelope.Error("looks fine").WithStatus(http.StatusOK)
	require.NoError(t, env.Write(rec, log))

	// Still sent as given, but flagged as a programming-contract warning.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "looks fine", rec.Body.String())
	assert.Contains(t, logs.String(), "non-error status")
}

func TestEnvelopeFinished(t *testing.T) {
	t.Parallel()

	assert.True(t, envelope.Finished().IsFinished())
	assert.False(t, envelope.Text("x").IsFinished())
}
