package engine

import (
	"testing"

	"github.com/fairwaylabs/pressbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scorecardFixture builds a NetScoreResult directly from per-hole net
// scores, bypassing handicap math.
func scorecardFixture(nets map[string]map[int]int) *models.NetScoreResult {
	result := &models.NetScoreResult{}
	names := make([]string, 0, len(nets))
	for name := range nets {
		names = append(names, name)
	}
	// Fixture order must be deterministic; sort by name.
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if names[j] < names[i] {
				names[i], names[j] = names[j], names[i]
			}
		}
	}
	for _, name := range names {
		card := models.Scorecard{Name: name, Holes: make(map[int]models.HoleScore)}
		for hole, net := range nets[name] {
			card.Holes[hole] = models.HoleScore{Gross: net, Net: net}
			card.NetTotal += net
			card.GrossTotal += net
			if hole <= 9 {
				card.Front9Net += net
			} else {
				card.Back9Net += net
			}
		}
		result.Scorecards = append(result.Scorecards, card)
	}
	return result
}

func TestResolveSkinsUniqueLowWins(t *testing.T) {
	scores := scorecardFixture(map[string]map[int]int{
		"Alice": {1: 4, 2: 5, 3: 4},
		"Bob":   {1: 5, 2: 4, 3: 4},
	})

	result := ResolveSkins(scores, models.Wager{Kind: models.WagerKindSkins, Amount: 2})
	assert.Equal(t, 1, result.SkinsWon["Alice"])
	assert.Equal(t, 1, result.SkinsWon["Bob"])
	require.Len(t, result.Awards, 2)
	assert.Equal(t, models.SkinAward{Hole: 1, Winner: "Alice", Skins: 1}, result.Awards[0])
	assert.Equal(t, models.SkinAward{Hole: 2, Winner: "Bob", Skins: 1}, result.Awards[1])
}

func TestResolveSkinsCarryOver(t *testing.T) {
	scores := scorecardFixture(map[string]map[int]int{
		"Alice": {1: 4, 2: 4, 3: 3},
		"Bob":   {1: 4, 2: 4, 3: 5},
	})

	t.Run("carry over on", func(t *testing.T) {
		result := ResolveSkins(scores, models.Wager{Amount: 1, CarryOver: true})
		assert.Equal(t, 3, result.SkinsWon["Alice"], "two tied holes roll into the win")
		assert.Equal(t, 0, result.CarriedOver)
	})

	t.Run("carry over off forfeits ties", func(t *testing.T) {
		result := ResolveSkins(scores, models.Wager{Amount: 1, CarryOver: false})
		assert.Equal(t, 1, result.SkinsWon["Alice"])
	})

	t.Run("trailing ties never resolve", func(t *testing.T) {
		tied := scorecardFixture(map[string]map[int]int{
			"Alice": {17: 4, 18: 4},
			"Bob":   {17: 4, 18: 4},
		})
		result := ResolveSkins(tied, models.Wager{Amount: 1, CarryOver: true})
		assert.Empty(t, result.SkinsWon)
		assert.Equal(t, 2, result.CarriedOver)
	})
}

// Without carry-over, total skins won equals the number of holes with a
// unique low net score.
func TestResolveSkinsConservation(t *testing.T) {
	scores := scorecardFixture(map[string]map[int]int{
		"Alice": {1: 4, 2: 5, 3: 4, 4: 3, 5: 4},
		"Bob":   {1: 5, 2: 5, 3: 4, 4: 4, 5: 4},
		"Carol": {1: 5, 2: 4, 3: 5, 4: 5, 5: 4},
	})

	result := ResolveSkins(scores, models.Wager{Amount: 1})

	decided := 0
	for hole := 1; hole <= 18; hole++ {
		if winner, contested := holeLowNet(scores.Scorecards, hole); contested && winner != "" {
			decided++
		}
	}

	total := 0
	for _, skins := range result.SkinsWon {
		total += skins
	}
	assert.Equal(t, decided, total)
	assert.Equal(t, 3, total)
}

func TestResolveSkinsThreePlayerZeroSum(t *testing.T) {
	scores := scorecardFixture(map[string]map[int]int{
		"Alice": {1: 3, 2: 4, 3: 4},
		"Bob":   {1: 4, 2: 5, 3: 4},
		"Carol": {1: 4, 2: 4, 3: 3},
	})

	result := ResolveSkins(scores, models.Wager{Amount: 3})
	// Alice wins hole 1; Carol wins hole 3; holes 2 is tied between Alice
	// and Carol.
	assert.Equal(t, 3.0, result.GrossWinnings["Alice"])
	assert.Equal(t, 0.0, result.GrossWinnings["Bob"])
	assert.Equal(t, 3.0, result.GrossWinnings["Carol"])

	// Everyone is liable for a third of the $6 pot.
	assert.InDelta(t, 1.0, result.TotalWinnings["Alice"], 0.001)
	assert.InDelta(t, -2.0, result.TotalWinnings["Bob"], 0.001)
	assert.InDelta(t, 1.0, result.TotalWinnings["Carol"], 0.001)

	sum := 0.0
	for _, v := range result.TotalWinnings {
		sum += v
	}
	assert.InDelta(t, 0.0, sum, 0.01, "three player skins is zero-sum")
}

func TestResolveSkinsTwoPlayerSettlement(t *testing.T) {
	t.Run("loser covers the winnings", func(t *testing.T) {
		scores := scorecardFixture(map[string]map[int]int{
			"Alice": {1: 3, 2: 3},
			"Bob":   {1: 4, 2: 4},
		})
		result := ResolveSkins(scores, models.Wager{Amount: 5})
		assert.Equal(t, 10.0, result.TotalWinnings["Alice"])
		assert.Equal(t, -10.0, result.TotalWinnings["Bob"])
	})

	t.Run("no winners means no movement", func(t *testing.T) {
		scores := scorecardFixture(map[string]map[int]int{
			"Alice": {1: 4},
			"Bob":   {1: 4},
		})
		result := ResolveSkins(scores, models.Wager{Amount: 5})
		assert.Equal(t, 0.0, result.TotalWinnings["Alice"])
		assert.Equal(t, 0.0, result.TotalWinnings["Bob"])
	})
}

func TestResolveSkinsEmptyInput(t *testing.T) {
	result := ResolveSkins(nil, models.Wager{Amount: 5})
	assert.Empty(t, result.SkinsWon)
	assert.Empty(t, result.Awards)
}
