package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrokesForHole(t *testing.T) {
	tests := []struct {
		name     string
		handicap int
		index    int
		want     int
	}{
		{name: "no handicap", handicap: 0, index: 1, want: 0},
		{name: "handicap below index", handicap: 5, index: 6, want: 0},
		{name: "handicap at index", handicap: 5, index: 5, want: 1},
		{name: "full pass", handicap: 18, index: 18, want: 1},
		{name: "second pass hardest hole", handicap: 22, index: 1, want: 2},
		{name: "second pass boundary", handicap: 22, index: 4, want: 2},
		{name: "second pass easiest of extras", handicap: 22, index: 5, want: 1},
		{name: "second pass easiest hole", handicap: 22, index: 18, want: 1},
		{name: "third pass", handicap: 38, index: 1, want: 3},
		{name: "plus handicap gives back", handicap: -3, index: 2, want: -1},
		{name: "plus handicap easy hole", handicap: -3, index: 10, want: 0},
		{name: "invalid index zero", handicap: 20, index: 0, want: 0},
		{name: "invalid index negative", handicap: 20, index: -4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StrokesForHole(tt.handicap, tt.index))
		})
	}
}

// The strokes allocated across all 18 indices must sum to the handicap, and
// holding the index fixed, strokes never decrease as the handicap grows.
func TestStrokesForHoleProperties(t *testing.T) {
	for handicap := -40; handicap <= 40; handicap++ {
		sum := 0
		for index := 1; index <= 18; index++ {
			sum += StrokesForHole(handicap, index)
		}
		assert.Equal(t, handicap, sum, "handicap %d should allocate exactly itself", handicap)
	}

	for index := 1; index <= 18; index++ {
		prev := 0
		for handicap := 0; handicap <= 40; handicap++ {
			strokes := StrokesForHole(handicap, index)
			assert.GreaterOrEqual(t, strokes, prev, "handicap %d index %d", handicap, index)
			prev = strokes
		}
	}
}

func TestStrokesForHoleTwentyAllocation(t *testing.T) {
	// Handicap 20: every hole gets a stroke, indexes 1 and 2 get a second.
	for index := 1; index <= 18; index++ {
		want := 1
		if index <= 2 {
			want = 2
		}
		assert.Equal(t, want, StrokesForHole(20, index), "index %d", index)
	}
}
