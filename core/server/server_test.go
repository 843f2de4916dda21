package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexient-labs/portico/core/server"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing address fails", func(t *testing.T) {
		t.Parallel()

		_, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("valid config builds a server", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})
}

func TestServerLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("serves requests and stops gracefully", func(t *testing.T) {
		t.Parallel()

		addr := freeAddr(t)
		srv := server.New(addr)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "ok")
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- srv.Start(ctx, handler) }()

		var resp *http.Response
		require.Eventually(t, func() bool {
			var err error
			resp, err = http.Get("http://" + addr + "/")
			return err == nil
		}, 3*time.Second, 20*time.Millisecond)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, "ok", string(body))

		require.NoError(t, srv.Stop())
		cancel()
		<-done
	})

	t.Run("second start fails while running", func(t *testing.T) {
		t.Parallel()

		addr := freeAddr(t)
		srv := server.New(addr)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- srv.Start(ctx, http.NotFoundHandler()) }()

		require.Eventually(t, func() bool {
			conn, err := net.Dial("tcp", addr)
			if err != nil {
				return false
			}
			conn.Close()
			return true
		}, 3*time.Second, 20*time.Millisecond)

		err := srv.Start(ctx, http.NotFoundHandler())
		assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)

		require.NoError(t, srv.Stop())
		cancel()
		<-done
	})

	t.Run("run stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := server.New(freeAddr(t))
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx, http.NotFoundHandler())() }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop after context cancellation")
		}
	})
}
