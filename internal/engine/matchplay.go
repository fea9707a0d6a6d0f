package engine

import (
	"fmt"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// matchAccumulator carries the fold state for a two-player match
type matchAccumulator struct {
	// decidedOnHole is the hole the match became mathematically decided
	// on (first hole where the lead exceeded the holes remaining)
	decidedOnHole int

	// result is the fixed result string once decided, e.g. "4 & 3"
	result string
}

// ResolveMatchPlay scores a match play wager over the computed net scores.
//
// The unique low net score wins each hole; ties halve it. With two players
// a running differential is tracked and the match is decided early once the
// lead exceeds the holes remaining, reported as "X & Y". With three or more
// the winner is the strict maximum of holes won and the winner collects the
// amount from every other player.
//
// In team mode, member hole wins are summed per team; the winning team's
// pot is split evenly among its members and each losing team's share of the
// loss is split evenly among theirs.
func ResolveMatchPlay(scores *models.NetScoreResult, wager models.Wager, round *models.Round) *models.MatchPlayResult {
	result := &models.MatchPlayResult{
		Amount:        wager.Amount,
		HoleWins:      make(map[string]int),
		TotalWinnings: make(map[string]float64),
	}
	if scores == nil || len(scores.Scorecards) < 2 {
		return result
	}

	twoPlayer := len(scores.Scorecards) == 2
	acc := matchAccumulator{}

	for hole := 1; hole <= holeCount; hole++ {
		winner, contested := holeLowNet(scores.Scorecards, hole)
		if contested && winner != "" {
			result.HoleWins[winner]++
		}

		if twoPlayer && acc.decidedOnHole == 0 {
			winsA := result.HoleWins[scores.Scorecards[0].Name]
			winsB := result.HoleWins[scores.Scorecards[1].Name]
			diff := winsA - winsB
			if diff < 0 {
				diff = -diff
			}
			// A win sealed on the 18th is an "X up" result, not an
			// early finish.
			remaining := holeCount - hole
			if remaining > 0 && diff > remaining {
				acc.decidedOnHole = hole
				acc.result = fmt.Sprintf("%d & %d", diff, remaining)
			}
		}
	}

	if teamMode(round) {
		resolveTeamMatch(result, round, wager.Amount)
		return result
	}

	if twoPlayer {
		resolveSinglesMatch(result, scores, wager.Amount, acc)
		return result
	}

	// Three or more players: strict max of holes won takes the match.
	winner := matchWinner(scores.Scorecards, result.HoleWins)
	result.Winner = winner
	if winner != "" && winner != models.TieWinner {
		for _, card := range scores.Scorecards {
			if card.Name == winner {
				result.TotalWinnings[card.Name] = wager.Amount * float64(len(scores.Scorecards)-1)
			} else {
				result.TotalWinnings[card.Name] = -wager.Amount
			}
		}
	}

	return result
}

// resolveSinglesMatch finishes a two-player match: winner, result string,
// and the head-to-head payout.
func resolveSinglesMatch(result *models.MatchPlayResult, scores *models.NetScoreResult, amount float64, acc matchAccumulator) {
	nameA := scores.Scorecards[0].Name
	nameB := scores.Scorecards[1].Name
	diff := result.HoleWins[nameA] - result.HoleWins[nameB]

	switch {
	case diff > 0:
		result.Winner = nameA
	case diff < 0:
		result.Winner = nameB
		diff = -diff
	default:
		result.Winner = models.TieWinner
	}

	// The result string freezes at the decision point; later holes do not
	// change it.
	switch {
	case acc.decidedOnHole > 0:
		result.DecidedOnHole = acc.decidedOnHole
		result.Result = acc.result
	case diff == 0:
		result.Result = "All Square"
	default:
		result.Result = fmt.Sprintf("%d up", diff)
	}

	if result.Winner != models.TieWinner && len(result.HoleWins) > 0 {
		loser := nameB
		if result.Winner == nameB {
			loser = nameA
		}
		result.TotalWinnings[result.Winner] = amount
		result.TotalWinnings[loser] = -amount
	}
}

// resolveTeamMatch aggregates member hole wins per team and splits the
// payout across members.
func resolveTeamMatch(result *models.MatchPlayResult, round *models.Round, amount float64) {
	result.TeamHoleWins = make(map[string]int)

	members := make(map[string][]string, len(round.Teams))
	for _, team := range round.Teams {
		names := round.TeamMemberNames(team)
		members[team.Name] = names
		wins := 0
		for _, name := range names {
			wins += result.HoleWins[name]
		}
		result.TeamHoleWins[team.Name] = wins
	}

	// Strict max over team hole totals; a tie means no winner.
	winning := ""
	best := -1
	tied := false
	for _, team := range round.Teams {
		wins := result.TeamHoleWins[team.Name]
		switch {
		case wins > best:
			winning = team.Name
			best = wins
			tied = false
		case wins == best:
			tied = true
		}
	}
	if tied || winning == "" || best == 0 {
		return
	}
	result.WinningTeam = winning
	result.Winner = winning

	for _, team := range round.Teams {
		names := members[team.Name]
		if len(names) == 0 {
			continue
		}
		if team.Name == winning {
			pot := amount * float64(len(round.Teams)-1)
			share := pot / float64(len(names))
			for _, name := range names {
				result.TotalWinnings[name] += share
			}
		} else {
			share := amount / float64(len(names))
			for _, name := range names {
				result.TotalWinnings[name] -= share
			}
		}
	}
}

// matchWinner picks the strict maximum of holes won, or the tie sentinel.
func matchWinner(cards []models.Scorecard, holeWins map[string]int) string {
	winner := ""
	best := 0
	tied := false

	for _, card := range cards {
		wins := holeWins[card.Name]
		if wins == 0 {
			continue
		}
		switch {
		case winner == "" || wins > best:
			winner = card.Name
			best = wins
			tied = false
		case wins == best:
			tied = true
		}
	}

	if tied {
		return models.TieWinner
	}
	return winner
}

// teamMode reports whether the round settles per team.
func teamMode(round *models.Round) bool {
	return round != nil && round.TeamMode == models.TeamModeTeams && len(round.Teams) > 0
}
