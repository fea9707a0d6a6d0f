package engine

import (
	"github.com/fairwaylabs/pressbook/internal/models"
)

// skinsAccumulator carries the fold state while walking holes in order
type skinsAccumulator struct {
	// carried is the number of skins rolled forward from tied holes
	carried int
}

// ResolveSkins scores a skins wager over the computed net scores.
//
// On each hole, the unique lowest net score among players with a recorded
// score wins one skin plus any carried-over skins. A tied hole either rolls
// its skin forward (carry-over on) or forfeits it (carry-over off). Holes
// where nobody has a score are skipped entirely.
//
// With exactly three players the payout is true zero-sum: every player owes
// a third of the total skins value regardless of skins won. Otherwise the
// players who won no skins split the winners' total evenly as a debt.
func ResolveSkins(scores *models.NetScoreResult, wager models.Wager) *models.SkinsResult {
	result := &models.SkinsResult{
		Amount:        wager.Amount,
		SkinsWon:      make(map[string]int),
		GrossWinnings: make(map[string]float64),
		TotalWinnings: make(map[string]float64),
	}
	if scores == nil || len(scores.Scorecards) == 0 {
		return result
	}

	acc := skinsAccumulator{}
	for hole := 1; hole <= holeCount; hole++ {
		winner, contested := holeLowNet(scores.Scorecards, hole)
		if !contested {
			continue
		}

		if winner == "" {
			// Tied hole: roll the skin forward or forfeit it.
			if wager.CarryOver {
				acc.carried++
			}
			continue
		}

		won := 1 + acc.carried
		acc.carried = 0
		result.SkinsWon[winner] += won
		result.Awards = append(result.Awards, models.SkinAward{
			Hole:   hole,
			Winner: winner,
			Skins:  won,
		})
	}
	result.CarriedOver = acc.carried

	totalValue := 0.0
	for _, card := range scores.Scorecards {
		gross := float64(result.SkinsWon[card.Name]) * wager.Amount
		result.GrossWinnings[card.Name] = gross
		totalValue += gross
	}

	if len(scores.Scorecards) == 3 {
		// True zero-sum: each player is liable for a third of the pot.
		liability := totalValue / 3
		for _, card := range scores.Scorecards {
			result.TotalWinnings[card.Name] = result.GrossWinnings[card.Name] - liability
		}
		return result
	}

	// Winners keep their gross; the players without a skin split the
	// total evenly as a debt.
	losers := 0
	for _, card := range scores.Scorecards {
		if result.SkinsWon[card.Name] == 0 {
			losers++
		}
	}
	for _, card := range scores.Scorecards {
		if result.SkinsWon[card.Name] > 0 {
			result.TotalWinnings[card.Name] = result.GrossWinnings[card.Name]
		} else if losers > 0 && totalValue > 0 {
			result.TotalWinnings[card.Name] = -totalValue / float64(losers)
		} else {
			result.TotalWinnings[card.Name] = 0
		}
	}

	return result
}

// holeLowNet finds the unique low net score on a hole. It returns the
// winner's name and whether the hole was contested at all; a contested hole
// with an empty winner is a tie.
func holeLowNet(cards []models.Scorecard, hole int) (winner string, contested bool) {
	best := 0
	tied := false

	for _, card := range cards {
		hs, ok := card.Holes[hole]
		if !ok {
			continue
		}
		switch {
		case !contested || hs.Net < best:
			contested = true
			best = hs.Net
			winner = card.Name
			tied = false
		case hs.Net == best:
			tied = true
		}
	}

	if tied {
		winner = ""
	}
	return winner, contested
}
