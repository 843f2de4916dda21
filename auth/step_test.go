package auth_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexient-labs/portico/auth"
	"github.com/hexient-labs/portico/core/arena"
	"github.com/hexient-labs/portico/core/handler"
)

type testHost struct{}

func (testHost) Logger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }
func (testHost) Production() bool     { return false }

type authedBiz struct {
	claims auth.StandardClaims
}

func (b *authedBiz) SetClaims(c auth.StandardClaims) { b.claims = c }

func TestBearerToken(t *testing.T) {
	t.Parallel()

	t.Run("authorization header", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer abc.def.ghi")
		assert.Equal(t, "abc.def.ghi", auth.BearerToken(r))
	})

	t.Run("non-bearer scheme yields nothing", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		assert.Empty(t, auth.BearerToken(r))
	})

	t.Run("websocket subprotocol list carries the token", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		r.Header.Set("Sec-Websocket-Protocol", "websocket, abc.def.ghi")
		assert.Equal(t, "abc.def.ghi", auth.BearerToken(r))
	})

	t.Run("bare subprotocol has no token", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		r.Header.Set("Sec-Websocket-Protocol", "websocket")
		assert.Empty(t, auth.BearerToken(r))
	})
}

func TestStep(t *testing.T) {
	t.Parallel()

	svc, err := auth.NewFromString("test-signing-key")
	require.NoError(t, err)
	step := auth.Step[authedBiz](svc)

	newCtx := func(t *testing.T, r *http.Request) *handler.Context[authedBiz] {
		t.Helper()
		return handler.NewContext[authedBiz](httptest.NewRecorder(), r, arena.New(64), testHost{})
	}

	t.Run("valid token populates the claims", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(auth.NewStandardClaims("user-9", time.Hour))
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/me", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		ctx := newCtx(t, r)
		require.NoError(t, step(ctx))
		assert.Equal(t, "user-9", ctx.Biz().claims.Subject)
	})

	t.Run("missing token is a 401 error", func(t *testing.T) {
		t.Parallel()

		ctx := newCtx(t, httptest.NewRequest(http.MethodGet, "/me", nil))
		err := step(ctx)
		require.Error(t, err)

		var uerr *auth.UnauthorizedError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, http.StatusUnauthorized, uerr.StatusCode())
	})

	t.Run("invalid token is a 401 error", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/me", nil)
		r.Header.Set("Authorization", "Bearer not.a.token")

		ctx := newCtx(t, r)
		var uerr *auth.UnauthorizedError
		require.ErrorAs(t, step(ctx), &uerr)
	})
}
