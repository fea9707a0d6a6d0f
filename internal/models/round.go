package models

import (
	"time"
)

// RoundStatus represents the current state of a round
type RoundStatus string

const (
	// RoundStatusActive indicates a round is in progress
	RoundStatusActive RoundStatus = "active"

	// RoundStatusEnded indicates a round is finished and its results are
	// frozen. Ending is a one-way transition
	RoundStatusEnded RoundStatus = "ended"
)

// HandicapMode controls how raw handicaps are adjusted for the round
type HandicapMode string

const (
	// HandicapModeLowest plays everyone relative to the lowest handicap
	// in the round, so the lowest-handicap player plays off zero
	HandicapModeLowest HandicapMode = "lowest"

	// HandicapModeGross uses each player's raw handicap unchanged
	HandicapModeGross HandicapMode = "gross"
)

// TeamMode controls whether winnings are aggregated per player or per team
type TeamMode string

const (
	// TeamModeIndividual settles every player for themselves
	TeamModeIndividual TeamMode = "individual"

	// TeamModeTeams sums member winnings per team and settles between
	// teams
	TeamModeTeams TeamMode = "teams"
)

// Team is a grouping of round players, meaningful only in team mode
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// Name is the display name of the team
	Name string

	// PlayerIDs are the saved-player IDs of the team's members. Members
	// are resolved to names through the round's roster snapshot, never
	// the live saved-player list
	PlayerIDs []string
}

// Round is the aggregate root for a round of golf and all of its betting
// state. While active it is mutated in place; on ending, Results is
// computed once and frozen.
type Round struct {
	// ID is the unique identifier for the round
	ID string

	// OwnerID is the ID of the user who created the round
	OwnerID string

	// Status is the current state of the round
	Status RoundStatus

	// CourseID and CourseName identify the course being played
	CourseID   string
	CourseName string

	// Holes is the round-start snapshot of the course's per-hole data
	Holes map[int]Hole

	// Players is the round-start snapshot of the roster. Names are
	// unique within a round
	Players []RoundPlayer

	// HandicapMode is the handicap adjustment policy for the round
	HandicapMode HandicapMode

	// TeamMode controls individual versus team settlement
	TeamMode TeamMode

	// Teams are the team groupings, used only in team mode
	Teams []Team

	// Scores maps player name -> hole number -> entered gross score.
	// Entries are raw text from score entry; anything that does not
	// parse as a positive integer counts as "not yet played"
	Scores map[string]map[int]string

	// Wagers are the bets configured for the round
	Wagers []Wager

	// BetSelections maps a side bet's name to the manually selected
	// winner's name
	BetSelections map[string]string

	// RoundBets are on-the-fly proposition bets created during the round
	RoundBets []RoundBet

	// SelectedJunkTypes are the junk types being tracked this round
	SelectedJunkTypes []JunkType

	// JunkPointValues maps a junk type to its per-event dollar value.
	// Values are entered positive; losing dots count against the player
	JunkPointValues map[JunkType]float64

	// JunkEvents records which junk events occurred
	JunkEvents JunkEvents

	// Results is the frozen settlement snapshot, populated only when the
	// round ends and never recomputed afterwards
	Results *Standings

	// CreatedAt is when the round was started
	CreatedAt time.Time

	// UpdatedAt is when the round was last modified
	UpdatedAt time.Time

	// EndedAt is when the round was ended
	EndedAt time.Time
}

// PlayerNames returns the roster names in roster order.
func (r *Round) PlayerNames() []string {
	names := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		names = append(names, p.Name)
	}
	return names
}

// TeamMemberNames resolves a team's player IDs to names through the round's
// roster snapshot. IDs that no longer resolve are skipped.
func (r *Round) TeamMemberNames(team Team) []string {
	byID := make(map[string]string, len(r.Players))
	for _, p := range r.Players {
		byID[p.PlayerID] = p.Name
	}

	names := make([]string, 0, len(team.PlayerIDs))
	for _, id := range team.PlayerIDs {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
