package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestSample(t *testing.T) {
	t.Run("returns distinct values in range", func(t *testing.T) {
		rng := New(7)
		values := Sample(rng, 10, 30, 15)
		require.Len(t, values, 15)

		seen := make(map[int]struct{})
		for _, v := range values {
			assert.GreaterOrEqual(t, v, 10)
			assert.LessOrEqual(t, v, 30)
			_, dup := seen[v]
			assert.False(t, dup, "duplicate value %d", v)
			seen[v] = struct{}{}
		}
	})

	t.Run("full range draw is a permutation", func(t *testing.T) {
		rng := New(7)
		values := Sample(rng, 1, 5, 5)
		assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, values)
	})

	t.Run("oversized draw returns nil", func(t *testing.T) {
		rng := New(7)
		assert.Nil(t, Sample(rng, 1, 5, 6))
	})

	t.Run("negative count returns nil", func(t *testing.T) {
		rng := New(7)
		assert.Nil(t, Sample(rng, 1, 5, -1))
	})

	t.Run("zero count returns empty", func(t *testing.T) {
		rng := New(7)
		assert.Empty(t, Sample(rng, 1, 5, 0))
	})

	t.Run("same seed reproduces the draw", func(t *testing.T) {
		a := Sample(New(99), 1, 75, 24)
		b := Sample(New(99), 1, 75, 24)
		assert.Equal(t, a, b)
	})
}
