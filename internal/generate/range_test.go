package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeSize(t *testing.T) {
	assert.Equal(t, 75, Range{Min: 1, Max: 75}.Size())
	assert.Equal(t, 1, Range{Min: 5, Max: 5}.Size())
	assert.Equal(t, 24, Range{Min: 0, Max: 23}.Size())
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 10, Max: 20}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(9))
	assert.False(t, r.Contains(21))
}

func TestSegments(t *testing.T) {
	t.Run("classic 1-75 splits evenly", func(t *testing.T) {
		segments := Segments(Range{Min: 1, Max: 75})
		expected := [5]Range{
			{Min: 1, Max: 15},
			{Min: 16, Max: 30},
			{Min: 31, Max: 45},
			{Min: 46, Max: 60},
			{Min: 61, Max: 75},
		}
		assert.Equal(t, expected, segments)
	})

	t.Run("remainder goes to the earliest columns", func(t *testing.T) {
		// size 77: B and I get 16, N/G/O get 15
		segments := Segments(Range{Min: 1, Max: 77})
		assert.Equal(t, 16, segments[0].Size())
		assert.Equal(t, 16, segments[1].Size())
		assert.Equal(t, 15, segments[2].Size())
		assert.Equal(t, 15, segments[3].Size())
		assert.Equal(t, 15, segments[4].Size())
	})

	t.Run("segments are contiguous and disjoint", func(t *testing.T) {
		r := Range{Min: 3, Max: 64}
		segments := Segments(r)
		assert.Equal(t, r.Min, segments[0].Min)
		assert.Equal(t, r.Max, segments[4].Max)
		total := 0
		for i, seg := range segments {
			total += seg.Size()
			if i > 0 {
				assert.Equal(t, segments[i-1].Max+1, seg.Min)
			}
		}
		assert.Equal(t, r.Size(), total)
	})
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("segmented")
	assert.NoError(t, err)
	assert.Equal(t, Segmented, mode)

	mode, err = ParseMode("fully-random")
	assert.NoError(t, err)
	assert.Equal(t, FullyRandom, mode)

	_, err = ParseMode("random")
	assert.Error(t, err)
}
