package engine

import (
	"strconv"
	"strings"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// holeCount is the number of holes in a full round
const holeCount = 18

// ComputeNetScores derives per-hole net scores and round totals for every
// player on the roster.
//
// Under models.HandicapModeLowest every handicap is recomputed relative to
// the lowest on the roster, so the lowest-handicap player plays off zero.
// A score entry that does not parse as a positive integer counts as "not
// yet played": it contributes nothing to any total.
func ComputeNetScores(roster []models.RoundPlayer, holes map[int]models.Hole, scores map[string]map[int]string, mode models.HandicapMode) *models.NetScoreResult {
	result := &models.NetScoreResult{
		Scorecards: make([]models.Scorecard, 0, len(roster)),
	}

	lowest := 0
	if mode == models.HandicapModeLowest && len(roster) > 0 {
		lowest = roster[0].Handicap
		for _, p := range roster[1:] {
			if p.Handicap < lowest {
				lowest = p.Handicap
			}
		}
	}

	for _, p := range roster {
		adjusted := p.Handicap
		if mode == models.HandicapModeLowest {
			adjusted = p.Handicap - lowest
		}

		card := models.Scorecard{
			Name:             p.Name,
			Handicap:         p.Handicap,
			AdjustedHandicap: adjusted,
			Holes:            make(map[int]models.HoleScore, holeCount),
		}

		for hole := 1; hole <= holeCount; hole++ {
			gross := parseGross(scores[p.Name][hole])
			if gross < 1 {
				continue
			}

			strokes := StrokesForHole(adjusted, holes[hole].StrokeIndex)
			net := gross - strokes
			if net < 1 {
				net = 1
			}

			card.Holes[hole] = models.HoleScore{
				Gross:   gross,
				Strokes: strokes,
				Net:     net,
			}

			card.GrossTotal += gross
			card.NetTotal += net
			if hole <= 9 {
				card.Front9Net += net
			} else {
				card.Back9Net += net
			}
		}

		result.Scorecards = append(result.Scorecards, card)
	}

	result.GrossWinner = lowestTotalWinner(result.Scorecards, func(c models.Scorecard) int { return c.GrossTotal })
	result.NetWinner = lowestTotalWinner(result.Scorecards, func(c models.Scorecard) int { return c.NetTotal })

	return result
}

// lowestTotalWinner picks the winner among players with a nonzero total.
// Iteration is in roster order: a strictly lower total replaces the current
// leader, while an equal total collapses the winner to models.TieWinner.
// The order dependence is a documented contract, pinned by tests.
func lowestTotalWinner(cards []models.Scorecard, total func(models.Scorecard) int) string {
	winner := ""
	best := 0

	for _, card := range cards {
		t := total(card)
		if t <= 0 {
			continue
		}
		switch {
		case winner == "" || t < best:
			winner = card.Name
			best = t
		case t == best:
			winner = models.TieWinner
		}
	}

	return winner
}

// parseGross converts an entered score to a gross stroke count. Anything
// that is not a positive integer means the hole has not been played.
func parseGross(entry string) int {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return 0
	}
	gross, err := strconv.Atoi(entry)
	if err != nil || gross < 1 {
		return 0
	}
	return gross
}
