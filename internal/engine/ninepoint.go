package engine

import (
	"github.com/fairwaylabs/pressbook/internal/models"
)

// ResolveNinePoint scores the 9-point game. It requires exactly three
// players on the roster and returns nil otherwise; callers treat the
// absence of a result as "not applicable", not an error.
//
// On every hole where all three players have a net score, nine points are
// split by relative position: a blitz (unique winner with the worst score
// at least two strokes back) takes all nine; a three-way tie splits 3/3/3;
// one winner over two tied losers pays 5/2/2; two tied winners over one
// loser pays 4/4/1.
//
// The payout is zero-sum over holesPlayed x 9 x amount: every player's
// liability is a third of that total.
func ResolveNinePoint(scores *models.NetScoreResult, wager models.Wager) *models.NinePointResult {
	if scores == nil || len(scores.Scorecards) != 3 {
		return nil
	}

	result := &models.NinePointResult{
		Amount:        wager.Amount,
		Points:        make(map[string]int),
		PointsByHole:  make(map[int]map[string]int),
		TotalWinnings: make(map[string]float64),
	}

	for hole := 1; hole <= holeCount; hole++ {
		nets := make([]int, 3)
		complete := true
		for i, card := range scores.Scorecards {
			hs, ok := card.Holes[hole]
			if !ok {
				complete = false
				break
			}
			nets[i] = hs.Net
		}
		if !complete {
			continue
		}

		points := distributeNinePoints(nets)
		byHole := make(map[string]int, 3)
		for i, card := range scores.Scorecards {
			byHole[card.Name] = points[i]
			result.Points[card.Name] += points[i]
		}
		result.PointsByHole[hole] = byHole
		result.HolesPlayed++
	}

	// Zero-sum settlement: everyone is liable for a third of the total
	// points value.
	totalValue := float64(result.HolesPlayed) * 9 * wager.Amount
	liability := totalValue / 3
	for _, card := range scores.Scorecards {
		result.TotalWinnings[card.Name] = float64(result.Points[card.Name])*wager.Amount - liability
	}

	return result
}

// distributeNinePoints splits nine points across three net scores.
func distributeNinePoints(nets []int) [3]int {
	low, high := nets[0], nets[0]
	for _, n := range nets[1:] {
		if n < low {
			low = n
		}
		if n > high {
			high = n
		}
	}

	lowCount := 0
	for _, n := range nets {
		if n == low {
			lowCount++
		}
	}

	var points [3]int
	switch {
	case lowCount == 1 && high-low >= 2:
		// Blitz: the winner dropped the field by two or more.
		for i, n := range nets {
			if n == low {
				points[i] = 9
			}
		}
	case lowCount == 3:
		points = [3]int{3, 3, 3}
	case lowCount == 1:
		// One winner, two tied losers. With the blitz excluded, the
		// other two scores are within one of the winner, hence equal.
		for i, n := range nets {
			if n == low {
				points[i] = 5
			} else {
				points[i] = 2
			}
		}
	case lowCount == 2:
		for i, n := range nets {
			if n == low {
				points[i] = 4
			} else {
				points[i] = 1
			}
		}
	default:
		// Unreachable with three integer scores; split evenly.
		points = [3]int{3, 3, 3}
	}

	return points
}
