package engine

import (
	"testing"

	"github.com/fairwaylabs/pressbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMatchPlayTwoPlayerEarlyFinish(t *testing.T) {
	// Alice wins holes 1-5, Bob wins hole 6, the rest are halved. After
	// hole 15 Alice is 4 up with 3 to play: decided, "4 & 3".
	nets := map[string]map[int]int{"Alice": {}, "Bob": {}}
	for hole := 1; hole <= 18; hole++ {
		nets["Alice"][hole] = 4
		nets["Bob"][hole] = 4
	}
	for hole := 1; hole <= 5; hole++ {
		nets["Bob"][hole] = 5
	}
	nets["Alice"][6] = 5

	result := ResolveMatchPlay(scorecardFixture(nets), models.Wager{Amount: 10}, nil)

	assert.Equal(t, 5, result.HoleWins["Alice"])
	assert.Equal(t, 1, result.HoleWins["Bob"])
	assert.Equal(t, "Alice", result.Winner)
	assert.Equal(t, "4 & 3", result.Result)
	assert.Equal(t, 15, result.DecidedOnHole)
	assert.Equal(t, 10.0, result.TotalWinnings["Alice"])
	assert.Equal(t, -10.0, result.TotalWinnings["Bob"])
}

func TestResolveMatchPlayTwoPlayerFullDistance(t *testing.T) {
	nets := map[string]map[int]int{"Alice": {}, "Bob": {}}
	for hole := 1; hole <= 18; hole++ {
		nets["Alice"][hole] = 4
		nets["Bob"][hole] = 4
	}
	nets["Bob"][1] = 5
	nets["Bob"][18] = 5

	result := ResolveMatchPlay(scorecardFixture(nets), models.Wager{Amount: 10}, nil)
	assert.Equal(t, "Alice", result.Winner)
	assert.Equal(t, "2 up", result.Result)
	assert.Zero(t, result.DecidedOnHole)
}

func TestResolveMatchPlayAllSquare(t *testing.T) {
	nets := map[string]map[int]int{"Alice": {}, "Bob": {}}
	for hole := 1; hole <= 18; hole++ {
		nets["Alice"][hole] = 4
		nets["Bob"][hole] = 4
	}
	nets["Bob"][1] = 5
	nets["Alice"][2] = 5

	result := ResolveMatchPlay(scorecardFixture(nets), models.Wager{Amount: 10}, nil)
	assert.Equal(t, models.TieWinner, result.Winner)
	assert.Equal(t, "All Square", result.Result)
	assert.Empty(t, result.TotalWinnings)
}

func TestResolveMatchPlayMultiPlayer(t *testing.T) {
	nets := map[string]map[int]int{"Alice": {}, "Bob": {}, "Carol": {}, "Dave": {}}
	for hole := 1; hole <= 18; hole++ {
		for name := range nets {
			nets[name][hole] = 5
		}
	}
	// Alice wins three holes outright, Bob one.
	nets["Alice"][1] = 4
	nets["Alice"][2] = 4
	nets["Alice"][3] = 4
	nets["Bob"][4] = 4

	result := ResolveMatchPlay(scorecardFixture(nets), models.Wager{Amount: 5}, nil)
	assert.Equal(t, "Alice", result.Winner)
	assert.Empty(t, result.Result, "no up/down reporting beyond two players")

	// Winner collects the amount from each of the three others.
	assert.Equal(t, 15.0, result.TotalWinnings["Alice"])
	assert.Equal(t, -5.0, result.TotalWinnings["Bob"])
	assert.Equal(t, -5.0, result.TotalWinnings["Carol"])
	assert.Equal(t, -5.0, result.TotalWinnings["Dave"])
}

func TestResolveMatchPlayMultiPlayerTie(t *testing.T) {
	nets := map[string]map[int]int{"Alice": {}, "Bob": {}, "Carol": {}}
	for hole := 1; hole <= 18; hole++ {
		for name := range nets {
			nets[name][hole] = 5
		}
	}
	nets["Alice"][1] = 4
	nets["Bob"][2] = 4

	result := ResolveMatchPlay(scorecardFixture(nets), models.Wager{Amount: 5}, nil)
	assert.Equal(t, models.TieWinner, result.Winner)
	assert.Empty(t, result.TotalWinnings)
}

func TestResolveMatchPlayTeams(t *testing.T) {
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
		},
	}

	nets := map[string]map[int]int{"Alice": {}, "Bob": {}, "Carol": {}, "Dave": {}}
	for hole := 1; hole <= 18; hole++ {
		for name := range nets {
			nets[name][hole] = 5
		}
	}
	// Sharks win three holes (Alice 2, Bob 1), Jets one (Carol).
	nets["Alice"][1] = 4
	nets["Alice"][2] = 4
	nets["Bob"][3] = 4
	nets["Carol"][4] = 4

	result := ResolveMatchPlay(scorecardFixture(nets), models.Wager{Amount: 20}, round)

	require.NotNil(t, result.TeamHoleWins)
	assert.Equal(t, 3, result.TeamHoleWins["Sharks"])
	assert.Equal(t, 1, result.TeamHoleWins["Jets"])
	assert.Equal(t, "Sharks", result.WinningTeam)

	// The $20 team pot splits evenly across each side's two members.
	assert.Equal(t, 10.0, result.TotalWinnings["Alice"])
	assert.Equal(t, 10.0, result.TotalWinnings["Bob"])
	assert.Equal(t, -10.0, result.TotalWinnings["Carol"])
	assert.Equal(t, -10.0, result.TotalWinnings["Dave"])
}

func TestResolveMatchPlayTeamsTied(t *testing.T) {
	round := &models.Round{
		TeamMode: models.TeamModeTeams,
		Players: []models.RoundPlayer{
			{PlayerID: "p1", Name: "Alice"},
			{PlayerID: "p2", Name: "Bob"},
		},
		Teams: []models.Team{
			{ID: "t1", Name: "Sharks", PlayerIDs: []string{"p1"}},
			{ID: "t2", Name: "Jets", PlayerIDs: []string{"p2"}},
		},
	}

	nets := map[string]map[int]int{"Alice": {}, "Bob": {}}
	for hole := 1; hole <= 18; hole++ {
		nets["Alice"][hole] = 4
		nets["Bob"][hole] = 4
	}
	nets["Bob"][1] = 5
	nets["Alice"][2] = 5

	result := ResolveMatchPlay(scorecardFixture(nets), models.Wager{Amount: 20}, round)
	assert.Empty(t, result.WinningTeam)
	assert.Empty(t, result.TotalWinnings)
}

func TestResolveMatchPlayDegenerate(t *testing.T) {
	result := ResolveMatchPlay(nil, models.Wager{Amount: 5}, nil)
	assert.Empty(t, result.HoleWins)
	assert.Empty(t, result.Winner)

	solo := scorecardFixture(map[string]map[int]int{"Alice": {1: 4}})
	result = ResolveMatchPlay(solo, models.Wager{Amount: 5}, nil)
	assert.Empty(t, result.Winner)
}
