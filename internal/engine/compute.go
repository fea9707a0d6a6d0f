package engine

import (
	"time"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// ComputeStandings runs the full pipeline over a round's current state:
// net scores, every configured wager's resolver, junk totals, the
// cross-wager winnings breakdown, and the zero-sum settlement. It is a
// pure function of the round snapshot and is cheap enough to rerun on
// every input change.
func ComputeStandings(round *models.Round, now time.Time) *models.Standings {
	scores := ComputeNetScores(round.Players, round.Holes, round.Scores, round.HandicapMode)

	wagers := models.WagerResults{
		Skins:     make(map[string]*models.SkinsResult),
		Nassau:    make(map[string]*models.NassauResult),
		MatchPlay: make(map[string]*models.MatchPlayResult),
		NinePoint: make(map[string]*models.NinePointResult),
	}
	for _, wager := range round.Wagers {
		switch wager.Kind {
		case models.WagerKindSkins:
			wagers.Skins[wager.ID] = ResolveSkins(scores, wager)
		case models.WagerKindNassau:
			wagers.Nassau[wager.ID] = ResolveNassau(scores, wager)
		case models.WagerKindMatchPlay:
			wagers.MatchPlay[wager.ID] = ResolveMatchPlay(scores, wager, round)
		case models.WagerKindNinePoint:
			if r := ResolveNinePoint(scores, wager); r != nil {
				wagers.NinePoint[wager.ID] = r
			}
		case models.WagerKindSideBet:
			// Side bets have no resolver; the aggregator applies the
			// manual selection directly.
		}
	}

	junkTotals := ComputeJunkTotals(round)
	winnings := AggregateWinnings(round, wagers, junkTotals)

	return &models.Standings{
		Scores:           scores,
		Wagers:           wagers,
		JunkTotals:       junkTotals,
		Winnings:         winnings,
		Settlement:       ComputeSettlement(winnings),
		RoundBetPayments: ResolveRoundBetPayments(round),
		ComputedAt:       now,
	}
}
