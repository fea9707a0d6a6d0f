package engine

import (
	"github.com/fairwaylabs/pressbook/internal/models"
)

// ResolveNassau scores a Nassau wager: front nine, back nine, and full
// round net totals as three independent sub-contests, each paying the
// wager amount.
//
// With two players each segment is head to head. With three or more the
// segment decomposes into every pairwise matchup, each independently paying
// the amount to its winner; a player's segment winnings are the sum of
// their matchup results. Players without a recorded total for a segment sit
// that segment out.
func ResolveNassau(scores *models.NetScoreResult, wager models.Wager) *models.NassauResult {
	result := &models.NassauResult{
		Amount:        wager.Amount,
		TotalWinnings: make(map[string]float64),
	}
	if scores == nil {
		return result
	}

	result.Front = resolveNassauSegment("front", scores.Scorecards, wager.Amount, func(c models.Scorecard) int { return c.Front9Net }, result.TotalWinnings)
	result.Back = resolveNassauSegment("back", scores.Scorecards, wager.Amount, func(c models.Scorecard) int { return c.Back9Net }, result.TotalWinnings)
	result.Total = resolveNassauSegment("total", scores.Scorecards, wager.Amount, func(c models.Scorecard) int { return c.NetTotal }, result.TotalWinnings)

	return result
}

// resolveNassauSegment scores one segment and accumulates winnings into
// totals.
func resolveNassauSegment(name string, cards []models.Scorecard, amount float64, total func(models.Scorecard) int, totals map[string]float64) models.NassauSegment {
	segment := models.NassauSegment{Name: name}

	// Only players with a recorded total compete in the segment.
	type entrant struct {
		name  string
		total int
	}
	entrants := make([]entrant, 0, len(cards))
	for _, card := range cards {
		if t := total(card); t > 0 {
			entrants = append(entrants, entrant{name: card.Name, total: t})
		}
	}

	if len(entrants) < 2 {
		return segment
	}

	if len(entrants) == 2 {
		a, b := entrants[0], entrants[1]
		switch {
		case a.total < b.total:
			segment.Winner = a.name
			segment.UpBy = b.total - a.total
			totals[a.name] += amount
			totals[b.name] -= amount
		case b.total < a.total:
			segment.Winner = b.name
			segment.UpBy = a.total - b.total
			totals[b.name] += amount
			totals[a.name] -= amount
		}
		return segment
	}

	// Pairwise decomposition: every matchup pays independently.
	for i := 0; i < len(entrants); i++ {
		for j := i + 1; j < len(entrants); j++ {
			a, b := entrants[i], entrants[j]
			pairing := models.NassauPairing{PlayerA: a.name, PlayerB: b.name}
			switch {
			case a.total < b.total:
				pairing.Winner = a.name
				totals[a.name] += amount
				totals[b.name] -= amount
			case b.total < a.total:
				pairing.Winner = b.name
				totals[b.name] += amount
				totals[a.name] -= amount
			}
			segment.Pairings = append(segment.Pairings, pairing)
		}
	}

	return segment
}
