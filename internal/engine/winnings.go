package engine

import (
	"github.com/fairwaylabs/pressbook/internal/models"
)

// Breakdown labels used in PartyWinnings.Breakdown
const (
	BreakdownNassau    = "nassau"
	BreakdownSkins     = "skins"
	BreakdownMatchPlay = "matchPlay"
	BreakdownNinePoint = "ninePoint"
	BreakdownSideBets  = "sideBets"
	BreakdownRoundBets = "roundBets"
	BreakdownJunk      = "junk"
)

// AggregateWinnings combines every resolver's net winnings with manual
// side-bet selections, "everyone" prop bets, and junk totals into one
// per-party breakdown. In team mode the per-player totals are summed per
// team through the round's roster snapshot; a team whose members cannot be
// resolved contributes zero.
//
// Two-player prop bets are excluded here; they settle as separate
// individual transactions.
func AggregateWinnings(round *models.Round, wagers models.WagerResults, junkTotals map[string]float64) []models.PartyWinnings {
	perPlayer := make(map[string]map[string]float64)
	add := func(name, label string, amount float64) {
		if name == "" || amount == 0 {
			return
		}
		if perPlayer[name] == nil {
			perPlayer[name] = make(map[string]float64)
		}
		perPlayer[name][label] += amount
	}

	for _, r := range wagers.Nassau {
		for name, amount := range r.TotalWinnings {
			add(name, BreakdownNassau, amount)
		}
	}
	for _, r := range wagers.Skins {
		for name, amount := range r.TotalWinnings {
			add(name, BreakdownSkins, amount)
		}
	}
	for _, r := range wagers.MatchPlay {
		for name, amount := range r.TotalWinnings {
			add(name, BreakdownMatchPlay, amount)
		}
	}
	for _, r := range wagers.NinePoint {
		if r == nil {
			continue
		}
		for name, amount := range r.TotalWinnings {
			add(name, BreakdownNinePoint, amount)
		}
	}

	// Manual side-bet selections pay the chosen winner.
	for _, wager := range round.Wagers {
		if wager.Kind != models.WagerKindSideBet {
			continue
		}
		if winner := round.BetSelections[wager.Name]; winner != "" {
			add(winner, BreakdownSideBets, wager.Amount)
		}
	}

	// "Everyone" prop bets: the winner collects the payout, funded evenly
	// by the rest of the roster.
	for _, bet := range round.RoundBets {
		if bet.Type != models.RoundBetEveryone || bet.Winner == "" {
			continue
		}
		payout := bet.Amount * betOdds(bet)
		others := len(round.Players) - 1
		if others < 1 {
			continue
		}
		add(bet.Winner, BreakdownRoundBets, payout)
		for _, p := range round.Players {
			if p.Name != bet.Winner {
				add(p.Name, BreakdownRoundBets, -payout/float64(others))
			}
		}
	}

	for name, total := range junkTotals {
		add(name, BreakdownJunk, total)
	}

	if teamMode(round) {
		return teamWinnings(round, perPlayer)
	}

	winnings := make([]models.PartyWinnings, 0, len(round.Players))
	for _, p := range round.Players {
		winnings = append(winnings, partyWinnings(p.Name, perPlayer[p.Name]))
	}
	return winnings
}

// teamWinnings sums member breakdowns per team in team order.
func teamWinnings(round *models.Round, perPlayer map[string]map[string]float64) []models.PartyWinnings {
	winnings := make([]models.PartyWinnings, 0, len(round.Teams))
	for _, team := range round.Teams {
		combined := make(map[string]float64)
		for _, name := range round.TeamMemberNames(team) {
			for label, amount := range perPlayer[name] {
				combined[label] += amount
			}
		}
		winnings = append(winnings, partyWinnings(team.Name, combined))
	}
	return winnings
}

// partyWinnings builds one breakdown entry, totalling across labels.
func partyWinnings(party string, breakdown map[string]float64) models.PartyWinnings {
	pw := models.PartyWinnings{
		Party:     party,
		Breakdown: make(map[string]float64, len(breakdown)),
	}
	for label, amount := range breakdown {
		pw.Breakdown[label] = amount
		pw.Total += amount
	}
	return pw
}

// ComputeJunkTotals converts recorded junk events into signed dollar
// totals per player. Losing dots count against the player; every other
// junk type counts for them.
func ComputeJunkTotals(round *models.Round) map[string]float64 {
	totals := make(map[string]float64)
	for _, p := range round.Players {
		total := 0.0
		for _, junkType := range round.SelectedJunkTypes {
			count := round.JunkEvents.Count(p.Name, junkType)
			if count == 0 {
				continue
			}
			value := float64(count) * round.JunkPointValues[junkType]
			if junkType == models.JunkLosingDot {
				value = -value
			}
			total += value
		}
		if total != 0 {
			totals[p.Name] = total
		}
	}
	return totals
}

// betOdds returns a bet's odds multiplier, defaulting to even odds.
func betOdds(bet models.RoundBet) float64 {
	if bet.Odds > 0 {
		return bet.Odds
	}
	return 1
}
