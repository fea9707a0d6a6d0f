package engine

import (
	"math"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// settlementTolerance is the cent threshold below which payments are
// dropped and ties are considered even
const settlementTolerance = 0.01

// ComputeSettlement converts per-party winnings into a minimal list of
// directed payments whose net effect reproduces each party's total.
//
// With exactly two parties the settlement is a single payment of the
// difference. With three or more, parties above the group average (beyond
// a one-cent tolerance) are winners; every other party owes an even share
// of the combined surplus, distributed across winners in proportion to
// each winner's own amount above average. Duplicate from/to pairs are
// summed and sub-cent payments dropped.
func ComputeSettlement(winnings []models.PartyWinnings) []models.Payment {
	switch {
	case len(winnings) < 2:
		return nil
	case len(winnings) == 2:
		return twoPartySettlement(winnings[0], winnings[1])
	default:
		return multiPartySettlement(winnings)
	}
}

// twoPartySettlement is the single directed payment between two parties.
func twoPartySettlement(a, b models.PartyWinnings) []models.Payment {
	diff := a.Total - b.Total
	if math.Abs(diff) <= settlementTolerance {
		return nil
	}
	if diff > 0 {
		return []models.Payment{{From: b.Party, To: a.Party, Amount: diff}}
	}
	return []models.Payment{{From: a.Party, To: b.Party, Amount: -diff}}
}

// multiPartySettlement distributes each loser's obligation across winners
// proportionally to the winners' surplus above the group average.
func multiPartySettlement(winnings []models.PartyWinnings) []models.Payment {
	average := 0.0
	for _, w := range winnings {
		average += w.Total
	}
	average /= float64(len(winnings))

	var winners []models.PartyWinnings
	var losers []models.PartyWinnings
	totalSurplus := 0.0
	for _, w := range winnings {
		if w.Total > average+settlementTolerance {
			winners = append(winners, w)
			totalSurplus += w.Total - average
		} else {
			losers = append(losers, w)
		}
	}
	if len(winners) == 0 || len(losers) == 0 || totalSurplus <= 0 {
		return nil
	}

	// Each loser owes an even share of the surplus, split across winners
	// in proportion to each winner's amount above average.
	obligation := totalSurplus / float64(len(losers))

	aggregated := make(map[[2]string]float64)
	var order [][2]string
	for _, loser := range losers {
		for _, winner := range winners {
			amount := obligation * ((winner.Total - average) / totalSurplus)
			key := [2]string{loser.Party, winner.Party}
			if _, seen := aggregated[key]; !seen {
				order = append(order, key)
			}
			aggregated[key] += amount
		}
	}

	payments := make([]models.Payment, 0, len(order))
	for _, key := range order {
		amount := aggregated[key]
		if amount < settlementTolerance {
			continue
		}
		payments = append(payments, models.Payment{From: key[0], To: key[1], Amount: amount})
	}
	return payments
}

// ResolveRoundBetPayments settles decided two-player prop bets as
// individual transactions, independent of the aggregate settlement.
func ResolveRoundBetPayments(round *models.Round) []models.Payment {
	var payments []models.Payment
	for _, bet := range round.RoundBets {
		if bet.Type != models.RoundBetTwoPlayers || bet.Winner == "" {
			continue
		}

		loser := ""
		switch bet.Winner {
		case bet.Player1:
			loser = bet.Player2
		case bet.Player2:
			loser = bet.Player1
		}
		if loser == "" {
			continue
		}

		amount := bet.Amount * betOdds(bet)
		if amount < settlementTolerance {
			continue
		}
		payments = append(payments, models.Payment{From: loser, To: bet.Winner, Amount: amount})
	}
	return payments
}
