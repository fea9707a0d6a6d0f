package engine

import (
	"testing"

	"github.com/fairwaylabs/pressbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func winningsFixture(totals map[string]float64, order ...string) []models.PartyWinnings {
	winnings := make([]models.PartyWinnings, 0, len(order))
	for _, party := range order {
		winnings = append(winnings, models.PartyWinnings{Party: party, Total: totals[party]})
	}
	return winnings
}

func TestComputeSettlementTwoParties(t *testing.T) {
	t.Run("loser pays the difference", func(t *testing.T) {
		payments := ComputeSettlement(winningsFixture(map[string]float64{"A": 30, "B": 5}, "A", "B"))
		require.Len(t, payments, 1)
		assert.Equal(t, models.Payment{From: "B", To: "A", Amount: 25}, payments[0])
	})

	t.Run("equal totals settle to nothing", func(t *testing.T) {
		payments := ComputeSettlement(winningsFixture(map[string]float64{"A": 10, "B": 10}, "A", "B"))
		assert.Empty(t, payments)
	})

	t.Run("sub-cent difference is dropped", func(t *testing.T) {
		payments := ComputeSettlement(winningsFixture(map[string]float64{"A": 10.005, "B": 10}, "A", "B"))
		assert.Empty(t, payments)
	})

	t.Run("order does not decide direction", func(t *testing.T) {
		payments := ComputeSettlement(winningsFixture(map[string]float64{"A": 5, "B": 30}, "A", "B"))
		require.Len(t, payments, 1)
		assert.Equal(t, models.Payment{From: "A", To: "B", Amount: 25}, payments[0])
	})
}

func TestComputeSettlementMultiParty(t *testing.T) {
	t.Run("single winner collects from both losers", func(t *testing.T) {
		// Average 10: A is 20 over; B and C each owe 10.
		payments := ComputeSettlement(winningsFixture(map[string]float64{"A": 30, "B": 0, "C": 0}, "A", "B", "C"))
		require.Len(t, payments, 2)
		assert.Equal(t, models.Payment{From: "B", To: "A", Amount: 10}, payments[0])
		assert.Equal(t, models.Payment{From: "C", To: "A", Amount: 10}, payments[1])
	})

	t.Run("two winners split proportionally to surplus", func(t *testing.T) {
		// Average 10; A +20, B +5 above; C and D are losers. Total
		// surplus 25, each loser owes 12.50, split 80/20 across A and B.
		payments := ComputeSettlement(winningsFixture(map[string]float64{"A": 30, "B": 15, "C": -5, "D": 0}, "A", "B", "C", "D"))
		require.Len(t, payments, 4)
		assert.InDelta(t, 10.0, payments[0].Amount, 0.001) // C -> A
		assert.InDelta(t, 2.5, payments[1].Amount, 0.001)  // C -> B
		assert.InDelta(t, 10.0, payments[2].Amount, 0.001) // D -> A
		assert.InDelta(t, 2.5, payments[3].Amount, 0.001)  // D -> B

		// The payments reproduce each winner's surplus exactly.
		received := map[string]float64{}
		paid := map[string]float64{}
		for _, p := range payments {
			received[p.To] += p.Amount
			paid[p.From] += p.Amount
		}
		assert.InDelta(t, 20.0, received["A"], 0.001)
		assert.InDelta(t, 5.0, received["B"], 0.001)
		assert.InDelta(t, 12.5, paid["C"], 0.001)
		assert.InDelta(t, 12.5, paid["D"], 0.001)
	})

	t.Run("all tied yields empty settlement", func(t *testing.T) {
		payments := ComputeSettlement(winningsFixture(map[string]float64{"A": 7, "B": 7, "C": 7}, "A", "B", "C"))
		assert.Empty(t, payments)
	})

	t.Run("near-average parties count as losers", func(t *testing.T) {
		payments := ComputeSettlement(winningsFixture(map[string]float64{"A": 9, "B": 3, "C": 0}, "A", "B", "C"))
		require.Len(t, payments, 2)
		// Average 4: A is 5 over; B and C each owe 2.50.
		assert.Equal(t, "A", payments[0].To)
		assert.InDelta(t, 2.5, payments[0].Amount, 0.001)
		assert.InDelta(t, 2.5, payments[1].Amount, 0.001)
	})
}

func TestComputeSettlementDegenerate(t *testing.T) {
	assert.Empty(t, ComputeSettlement(nil))
	assert.Empty(t, ComputeSettlement(winningsFixture(map[string]float64{"A": 10}, "A")))
}

func TestResolveRoundBetPayments(t *testing.T) {
	round := &models.Round{
		RoundBets: []models.RoundBet{
			{ID: "b1", Type: models.RoundBetTwoPlayers, Amount: 5, Player1: "Alice", Player2: "Bob", Winner: "Alice"},
			{ID: "b2", Type: models.RoundBetTwoPlayers, Amount: 10, Odds: 2, Player1: "Carol", Player2: "Dave", Winner: "Dave"},
			{ID: "b3", Type: models.RoundBetTwoPlayers, Amount: 5, Player1: "Alice", Player2: "Bob"},
			{ID: "b4", Type: models.RoundBetEveryone, Amount: 5, Winner: "Alice"},
			{ID: "b5", Type: models.RoundBetTwoPlayers, Amount: 5, Player1: "Alice", Player2: "Bob", Winner: "Zed"},
		},
	}

	payments := ResolveRoundBetPayments(round)
	require.Len(t, payments, 2, "undecided, everyone, and unknown-winner bets are skipped")
	assert.Equal(t, models.Payment{From: "Bob", To: "Alice", Amount: 5}, payments[0])
	assert.Equal(t, models.Payment{From: "Carol", To: "Dave", Amount: 20}, payments[1])
}
