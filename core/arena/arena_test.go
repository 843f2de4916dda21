package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexient-labs/portico/core/arena"
)

func TestArenaAlloc(t *testing.T) {
	t.Parallel()

	t.Run("allocations are zeroed and distinct", func(t *testing.T) {
		t.Parallel()

		a := arena.New(64)
		b1 := a.Alloc(8)
		b2 := a.Alloc(8)

		require.Len(t, b1, 8)
		require.Len(t, b2, 8)
		copy(b1, "sentinel")
		assert.Equal(t, make([]byte, 8), b2)
		assert.Equal(t, 16, a.Len())
	})

	t.Run("reset retains capacity", func(t *testing.T) {
		t.Parallel()

		a := arena.New(32)
		a.Alloc(100) // forces growth past the initial block
		grown := a.Cap()

		a.Reset()
		assert.Equal(t, 0, a.Len())
		assert.Equal(t, grown, a.Cap())
	})

	t.Run("requests on the same arena are isolated across reset", func(t *testing.T) {
		t.Parallel()

		a := arena.New(64)

		// Request 1 writes a sentinel into its scratch buffer.
		buf := a.Alloc(16)
		copy(buf, "supersecretvalue")
		a.Reset()

		// Request 2's allocation of the same size must come back zeroed even
		// though it reuses the same backing memory.
		buf2 := a.Alloc(16)
		assert.Equal(t, make([]byte, 16), buf2)
	})

	t.Run("copy helpers", func(t *testing.T) {
		t.Parallel()

		a := arena.New(0)
		assert.Equal(t, "hello", a.CopyString("hello"))
		assert.Equal(t, []byte("abc"), a.Copy([]byte("abc")))
		assert.Nil(t, a.Alloc(0))
	})
}

func TestPool(t *testing.T) {
	t.Parallel()

	t.Run("acquire and release per slot", func(t *testing.T) {
		t.Parallel()

		p := arena.NewPool(2, 128)
		require.Equal(t, 2, p.Slots())

		a, err := p.Acquire(0)
		require.NoError(t, err)
		a.Alloc(10)
		p.Release(0, a)

		// Released arenas come back reset.
		b, err := p.Acquire(0)
		require.NoError(t, err)
		assert.Equal(t, 0, b.Len())
	})

	t.Run("slot out of range", func(t *testing.T) {
		t.Parallel()

		p := arena.NewPool(1, 0)
		_, err := p.Acquire(5)
		assert.Error(t, err)
		_, err = p.Acquire(-1)
		assert.Error(t, err)
	})
}
