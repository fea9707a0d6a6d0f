package engine

import (
	"testing"

	"github.com/fairwaylabs/pressbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeJunkTotals(t *testing.T) {
	round := &models.Round{
		Players: []models.RoundPlayer{
			{Name: "Alice"},
			{Name: "Bob"},
		},
		SelectedJunkTypes: []models.JunkType{models.JunkGreenie, models.JunkSandie, models.JunkLosingDot},
		JunkPointValues: map[models.JunkType]float64{
			models.JunkGreenie:   2,
			models.JunkSandie:    1,
			models.JunkLosingDot: 1,
		},
		JunkEvents: models.JunkEvents{
			"Alice": {
				3:  {models.JunkGreenie: true},
				7:  {models.JunkGreenie: true, models.JunkSandie: true},
				12: {models.JunkLosingDot: true},
			},
			"Bob": {
				5: {models.JunkPoley: true}, // not selected this round
			},
		},
	}

	totals := ComputeJunkTotals(round)
	assert.InDelta(t, 4.0, totals["Alice"], 0.001, "two greenies plus a sandie minus a losing dot")
	assert.NotContains(t, totals, "Bob", "unselected junk types do not count")
}

func TestAggregateWinningsIndividual(t *testing.T) {
	round := &models.Round{
		Players: []models.RoundPlayer{
			{PlayerID: "p1", Name: "Alice"},
			{PlayerID: "p2", Name: "Bob"},
			{PlayerID: "p3", Name: "Carol"},
		},
		Wagers: []models.Wager{
			{ID: "w1", Name: "Closest to pin", Kind: models.WagerKindSideBet, Amount: 10},
		},
		BetSelections: map[string]string{"Closest to pin": "Bob"},
		RoundBets: []models.RoundBet{
			{ID: "b1", Type: models.RoundBetEveryone, Amount: 3, Winner: "Carol"},
			{ID: "b2", Type: models.RoundBetTwoPlayers, Amount: 50, Player1: "Alice", Player2: "Bob", Winner: "Alice"},
		},
	}

	wagers := models.WagerResults{
		Skins: map[string]*models.SkinsResult{
			"s1": {TotalWinnings: map[string]float64{"Alice": 2, "Bob": -1, "Carol": -1}},
		},
		Nassau: map[string]*models.NassauResult{
			"n1": {TotalWinnings: map[string]float64{"Alice": -5, "Bob": 5}},
		},
	}
	junk := map[string]float64{"Alice": 4}

	winnings := AggregateWinnings(round, wagers, junk)
	require.Len(t, winnings, 3)

	byParty := make(map[string]models.PartyWinnings)
	for _, w := range winnings {
		byParty[w.Party] = w
	}

	// Alice: skins +2, nassau -5, junk +4, everyone bet -1.50.
	assert.InDelta(t, -0.5, byParty["Alice"].Total, 0.001)
	assert.InDelta(t, 2.0, byParty["Alice"].Breakdown[BreakdownSkins], 0.001)
	assert.InDelta(t, -5.0, byParty["Alice"].Breakdown[BreakdownNassau], 0.001)
	assert.InDelta(t, 4.0, byParty["Alice"].Breakdown[BreakdownJunk], 0.001)
	assert.InDelta(t, -1.5, byParty["Alice"].Breakdown[BreakdownRoundBets], 0.001)

	// Bob: skins -1, nassau +5, side bet +10, everyone bet -1.50.
	assert.InDelta(t, 12.5, byParty["Bob"].Total, 0.001)
	assert.InDelta(t, 10.0, byParty["Bob"].Breakdown[BreakdownSideBets], 0.001)

	// Carol: skins -1, everyone bet +3.
	assert.InDelta(t, 2.0, byParty["Carol"].Total, 0.001)
	assert.InDelta(t, 3.0, byParty["Carol"].Breakdown[BreakdownRoundBets], 0.001)

	// The two-player prop bet is settled separately, never aggregated.
	for _, w := range winnings {
		assert.LessOrEqual(t, w.Breakdown[BreakdownRoundBets], 3.0)
	}
}

func TestAggregateWinningsTeams(t *testing.T) {
	round := &models.Round{
		TeamMode: models.TeamModeTeams,
		Players: []models.RoundPlayer{
			{PlayerID: "p1", Name: "Alice"},
			{PlayerID: "p2", Name: "Bob"},
			{PlayerID: "p3", Name: "Carol"},
			{PlayerID: "p4", Name: "Dave"},
		},
		Teams: []models.Team{
			{ID: "t1", Name: "Sharks", PlayerIDs: []string{"p1", "p2"}},
			{ID: "t2", Name: "Jets", PlayerIDs: []string{"p3", "p4"}},
			{ID: "t3", Name: "Ghosts", PlayerIDs: []string{"gone"}},
		},
	}

	wagers := models.WagerResults{
		MatchPlay: map[string]*models.MatchPlayResult{
			"m1": {TotalWinnings: map[string]float64{"Alice": 10, "Bob": 10, "Carol": -10, "Dave": -10}},
		},
	}

	winnings := AggregateWinnings(round, wagers, nil)
	require.Len(t, winnings, 3)
	assert.Equal(t, "Sharks", winnings[0].Party)
	assert.InDelta(t, 20.0, winnings[0].Total, 0.001)
	assert.InDelta(t, -20.0, winnings[1].Total, 0.001)
	assert.Zero(t, winnings[2].Total, "a team with no resolvable members contributes zero")
}

func TestAggregateWinningsEmptyRound(t *testing.T) {
	round := &models.Round{
		Players: []models.RoundPlayer{{Name: "Alice"}, {Name: "Bob"}},
	}
	winnings := AggregateWinnings(round, models.WagerResults{}, nil)
	require.Len(t, winnings, 2)
	assert.Zero(t, winnings[0].Total)
	assert.Zero(t, winnings[1].Total)
}
