package generate

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bingosheets/internal/card"
	"github.com/lox/bingosheets/internal/randutil"
)

func TestEngineSegmented(t *testing.T) {
	cfg := validConfig()
	segments := Segments(cfg.Range)

	for seed := int64(0); seed < 20; seed++ {
		engine := NewEngine(cfg, randutil.New(seed))
		cells, err := engine.Deal()
		require.NoError(t, err)

		for i, col := range card.Columns() {
			var values []int
			for row := 0; row < card.Rows; row++ {
				if col == card.ColumnN && row == card.FreeRow {
					continue
				}
				values = append(values, cells[i][row])
			}

			assert.True(t, sort.IntsAreSorted(values), "column %s not sorted: %v", col, values)
			for j, v := range values {
				assert.True(t, segments[i].Contains(v), "column %s value %d outside segment %s", col, v, segments[i])
				if j > 0 {
					assert.Greater(t, v, values[j-1], "column %s not strictly increasing", col)
				}
			}
		}
	}
}

func TestEngineFullyRandom(t *testing.T) {
	cfg := validConfig()
	cfg.Mode = FullyRandom

	engine := NewEngine(cfg, randutil.New(3))
	cells, err := engine.Deal()
	require.NoError(t, err)

	seen := make(map[int]struct{})
	for i, col := range card.Columns() {
		for row := 0; row < card.Rows; row++ {
			if col == card.ColumnN && row == card.FreeRow {
				continue
			}
			v := cells[i][row]
			assert.True(t, cfg.Range.Contains(v))
			_, dup := seen[v]
			assert.False(t, dup, "duplicate value %d", v)
			seen[v] = struct{}{}
		}
	}
	assert.Len(t, seen, 24)
}

func TestEngineDeterministic(t *testing.T) {
	cfg := validConfig()
	a, err := NewEngine(cfg, randutil.New(42)).Deal()
	require.NoError(t, err)
	b, err := NewEngine(cfg, randutil.New(42)).Deal()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFactoryBuild(t *testing.T) {
	t.Run("segmented card honors all invariants", func(t *testing.T) {
		cfg := validConfig()
		factory := NewFactory(cfg, randutil.New(1))

		c, err := factory.Build()
		require.NoError(t, err)
		assert.True(t, c.IsFree(card.ColumnN, card.FreeRow))

		numbers := c.Numbers()
		assert.Len(t, numbers, 24)
		seen := make(map[int]struct{})
		for _, n := range numbers {
			_, dup := seen[n]
			assert.False(t, dup)
			seen[n] = struct{}{}
		}
	})

	t.Run("each call samples independently", func(t *testing.T) {
		factory := NewFactory(validConfig(), randutil.New(1))
		a, err := factory.Build()
		require.NoError(t, err)
		b, err := factory.Build()
		require.NoError(t, err)
		assert.NotEqual(t, a.Numbers(), b.Numbers())
	})

	t.Run("full 25-cell card without free center", func(t *testing.T) {
		cfg := validConfig()
		cfg.FreeCenter = false
		c, err := NewFactory(cfg, randutil.New(5)).Build()
		require.NoError(t, err)
		assert.False(t, c.FreeCenter())
		assert.Len(t, c.Numbers(), 25)
	})

	t.Run("unvalidated config surfaces CardBuildError", func(t *testing.T) {
		cfg := validConfig()
		cfg.Range = Range{Min: 1, Max: 10} // segments too small, skipped Validate
		_, err := NewFactory(cfg, randutil.New(1)).Build()
		var buildErr *CardBuildError
		require.ErrorAs(t, err, &buildErr)
	})
}
