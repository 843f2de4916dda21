package arena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCap(t *testing.T) {
	t.Parallel()

	t.Run("starts at the minimum block", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 64, nextCap(0, 1))
		assert.Equal(t, 64, nextCap(32, 48))
	})

	t.Run("doubles until need is covered", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 128, nextCap(64, 65))
		assert.Equal(t, 512, nextCap(64, 400))
	})

	t.Run("already sufficient capacity is kept", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1024, nextCap(1024, 100))
	})

	t.Run("near-max need terminates with the exact need", func(t *testing.T) {
		t.Parallel()

		// Doubling from any power of two can never land on MaxInt, so this
		// must take the overflow fallback instead of spinning.
		assert.Equal(t, math.MaxInt, nextCap(64, math.MaxInt))
	})
}
