package engine

import (
	"testing"

	"github.com/fairwaylabs/pressbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNassauTwoPlayers(t *testing.T) {
	nets := map[string]map[int]int{"Alice": {}, "Bob": {}}
	// Alice takes the front by 2, Bob takes the back by 3, Bob takes the
	// total by 1.
	for hole := 1; hole <= 9; hole++ {
		nets["Alice"][hole] = 4
		nets["Bob"][hole] = 4
	}
	nets["Bob"][1] = 5
	nets["Bob"][2] = 5
	for hole := 10; hole <= 18; hole++ {
		nets["Alice"][hole] = 5
		nets["Bob"][hole] = 5
	}
	nets["Bob"][10] = 4
	nets["Bob"][11] = 4
	nets["Bob"][12] = 4

	scores := scorecardFixture(nets)
	result := ResolveNassau(scores, models.Wager{Kind: models.WagerKindNassau, Amount: 5})

	assert.Equal(t, "Alice", result.Front.Winner)
	assert.Equal(t, 2, result.Front.UpBy)
	assert.Equal(t, "Bob", result.Back.Winner)
	assert.Equal(t, 3, result.Back.UpBy)
	assert.Equal(t, "Bob", result.Total.Winner)
	assert.Equal(t, 1, result.Total.UpBy)

	assert.Equal(t, -5.0, result.TotalWinnings["Alice"])
	assert.Equal(t, 5.0, result.TotalWinnings["Bob"])
}

func TestResolveNassauSegmentTie(t *testing.T) {
	nets := map[string]map[int]int{"Alice": {}, "Bob": {}}
	for hole := 1; hole <= 18; hole++ {
		nets["Alice"][hole] = 4
		nets["Bob"][hole] = 4
	}

	result := ResolveNassau(scorecardFixture(nets), models.Wager{Amount: 5})
	assert.Empty(t, result.Front.Winner)
	assert.Empty(t, result.Back.Winner)
	assert.Empty(t, result.Total.Winner)
	assert.Equal(t, 0.0, result.TotalWinnings["Alice"])
	assert.Equal(t, 0.0, result.TotalWinnings["Bob"])
}

// A three player Nassau decomposes each segment into its pairwise
// matchups, each independently paying the amount.
func TestResolveNassauThreePlayers(t *testing.T) {
	nets := map[string]map[int]int{"Alice": {}, "Bob": {}, "Carol": {}}
	for hole := 1; hole <= 18; hole++ {
		nets["Alice"][hole] = 4
		nets["Bob"][hole] = 5
		nets["Carol"][hole] = 6
	}

	result := ResolveNassau(scorecardFixture(nets), models.Wager{Amount: 2})

	require.Len(t, result.Front.Pairings, 3)
	assert.Equal(t, "Alice", result.Front.Pairings[0].Winner)

	// Alice sweeps both matchups in all three segments; Carol loses both.
	assert.Equal(t, 12.0, result.TotalWinnings["Alice"])
	assert.Equal(t, 0.0, result.TotalWinnings["Bob"])
	assert.Equal(t, -12.0, result.TotalWinnings["Carol"])

	sum := 0.0
	for _, v := range result.TotalWinnings {
		sum += v
	}
	assert.InDelta(t, 0.0, sum, 0.01, "pairwise decomposition balances across the group")
}

func TestResolveNassauIncompleteSegments(t *testing.T) {
	// Only the front nine has been played: back and total pay nothing
	// beyond the front result.
	nets := map[string]map[int]int{"Alice": {}, "Bob": {}}
	for hole := 1; hole <= 9; hole++ {
		nets["Alice"][hole] = 4
		nets["Bob"][hole] = 5
	}

	result := ResolveNassau(scorecardFixture(nets), models.Wager{Amount: 5})
	assert.Equal(t, "Alice", result.Front.Winner)
	assert.Empty(t, result.Back.Winner)
	// The total segment is decidable from the nine recorded holes.
	assert.Equal(t, "Alice", result.Total.Winner)
	assert.Equal(t, 10.0, result.TotalWinnings["Alice"])
}

func TestResolveNassauSinglePlayer(t *testing.T) {
	nets := map[string]map[int]int{"Alice": {1: 4}}
	result := ResolveNassau(scorecardFixture(nets), models.Wager{Amount: 5})
	assert.Empty(t, result.Front.Winner)
	assert.Empty(t, result.TotalWinnings["Alice"])
}
