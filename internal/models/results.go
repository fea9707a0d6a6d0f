package models

import (
	"time"
)

// TieWinner is the sentinel winner value used when two or more parties are
// tied for a win
const TieWinner = "Tie"

// HoleScore is one player's result on one hole
type HoleScore struct {
	// Gross is the raw strokes taken
	Gross int

	// Strokes is the handicap strokes allocated to the hole (signed;
	// negative for plus handicaps)
	Strokes int

	// Net is the gross score minus strokes, floored at 1
	Net int
}

// Scorecard is one player's computed scores for the round
type Scorecard struct {
	// Name is the player's name
	Name string

	// Handicap is the player's raw handicap for the round
	Handicap int

	// AdjustedHandicap is the handicap after applying the round's
	// handicap mode
	AdjustedHandicap int

	// Holes maps hole number to the computed hole score. Holes without a
	// recorded gross score are absent
	Holes map[int]HoleScore

	// GrossTotal is the sum of recorded gross scores
	GrossTotal int

	// NetTotal is the sum of net scores over recorded holes
	NetTotal int

	// Front9Net and Back9Net are the net totals for holes 1-9 and 10-18
	Front9Net int
	Back9Net  int
}

// NetScoreResult holds every player's scorecard plus the gross and net
// leaderboard winners
type NetScoreResult struct {
	// Scorecards are the per-player scorecards in roster order
	Scorecards []Scorecard

	// GrossWinner is the name of the player with the lowest gross total,
	// TieWinner on a tie, or empty if no player has a total yet
	GrossWinner string

	// NetWinner is the name of the player with the lowest net total,
	// TieWinner on a tie, or empty if no player has a total yet
	NetWinner string
}

// Scorecard returns the scorecard for the named player, or nil.
func (n *NetScoreResult) Scorecard(name string) *Scorecard {
	for i := range n.Scorecards {
		if n.Scorecards[i].Name == name {
			return &n.Scorecards[i]
		}
	}
	return nil
}

// SkinAward records a decided skins hole
type SkinAward struct {
	// Hole is the hole number the skin was decided on
	Hole int

	// Winner is the player who won the hole outright
	Winner string

	// Skins is how many skins the hole paid, including any carried over
	Skins int
}

// SkinsResult is the outcome of one skins wager
type SkinsResult struct {
	// Amount is the dollar value of a single skin
	Amount float64

	// Awards lists the decided holes in hole order
	Awards []SkinAward

	// SkinsWon maps player name to skins won
	SkinsWon map[string]int

	// CarriedOver is the number of skins still on the table after the
	// last hole (ties that never resolved)
	CarriedOver int

	// GrossWinnings maps player name to skins won times the amount
	GrossWinnings map[string]float64

	// TotalWinnings maps player name to net winnings after liabilities
	TotalWinnings map[string]float64
}

// NassauPairing is one head-to-head comparison inside a Nassau segment
type NassauPairing struct {
	// PlayerA and PlayerB are the two players compared
	PlayerA string
	PlayerB string

	// Winner is the lower net score of the pair, or empty on a tie
	Winner string
}

// NassauSegment is one of the three Nassau sub-contests
type NassauSegment struct {
	// Name is "front", "back", or "total"
	Name string

	// Winner is the segment winner, empty on a tie or when not yet
	// decidable
	Winner string

	// UpBy is the stroke differential for display (two-player only)
	UpBy int

	// Pairings are the pairwise results (three-or-more players)
	Pairings []NassauPairing
}

// NassauResult is the outcome of one Nassau wager
type NassauResult struct {
	// Amount is the dollar amount each segment pays
	Amount float64

	// Front, Back, and Total are the three segment results
	Front NassauSegment
	Back  NassauSegment
	Total NassauSegment

	// TotalWinnings maps player name to net winnings across all segments
	TotalWinnings map[string]float64
}

// MatchPlayResult is the outcome of one match play wager
type MatchPlayResult struct {
	// Amount is the dollar amount of the match
	Amount float64

	// HoleWins maps player name to holes won outright
	HoleWins map[string]int

	// Winner is the match winner, TieWinner on a tie, or empty when no
	// holes have been decided
	Winner string

	// Result is the reported match result, e.g. "4 & 3", "2 up", or
	// "All Square" (two-player only)
	Result string

	// DecidedOnHole is the hole the match became mathematically decided
	// on, or 0 if it went the distance (two-player only)
	DecidedOnHole int

	// TeamHoleWins maps team name to summed member hole wins (team mode)
	TeamHoleWins map[string]int

	// WinningTeam is the team match winner in team mode
	WinningTeam string

	// TotalWinnings maps player name to net winnings
	TotalWinnings map[string]float64
}

// NinePointResult is the outcome of one 9-point wager. It exists only when
// the round has exactly three players.
type NinePointResult struct {
	// Amount is the dollar value of a single point
	Amount float64

	// Points maps player name to total points won
	Points map[string]int

	// PointsByHole maps hole number to that hole's point distribution
	PointsByHole map[int]map[string]int

	// HolesPlayed is the number of holes where all three players had a
	// net score
	HolesPlayed int

	// TotalWinnings maps player name to net winnings after the per-player
	// liability
	TotalWinnings map[string]float64
}

// WagerResults collects the resolver output for every configured wager,
// keyed by wager ID
type WagerResults struct {
	Skins     map[string]*SkinsResult
	Nassau    map[string]*NassauResult
	MatchPlay map[string]*MatchPlayResult
	NinePoint map[string]*NinePointResult
}

// PartyWinnings is one player's (or team's) cross-wager winnings
type PartyWinnings struct {
	// Party is the player or team name
	Party string

	// Total is the combined winnings across every wager type
	Total float64

	// Breakdown maps a wager-type label to that type's contribution.
	// Labels: "nassau", "skins", "matchPlay", "ninePoint", "sideBets",
	// "roundBets", "junk"
	Breakdown map[string]float64
}

// Payment is a single directed settlement transaction
type Payment struct {
	// From is the party paying
	From string

	// To is the party being paid
	To string

	// Amount is the dollar amount, always positive
	Amount float64
}

// Standings is the full output of the scoring and settlement pipeline. It
// is recomputed from scratch while a round is active and frozen into
// Round.Results when the round ends.
type Standings struct {
	// Scores is the net score computation for the round
	Scores *NetScoreResult

	// Wagers holds every resolver's output
	Wagers WagerResults

	// JunkTotals maps player name to signed junk dollar total
	JunkTotals map[string]float64

	// Winnings is the per-party breakdown, per player or per team
	// depending on the round's team mode, in roster (or team) order
	Winnings []PartyWinnings

	// Settlement is the minimal zero-sum payment list for the aggregate
	// winnings
	Settlement []Payment

	// RoundBetPayments are two-player prop bet transactions, settled
	// individually outside the aggregate settlement
	RoundBetPayments []Payment

	// ComputedAt is when the standings were computed
	ComputedAt time.Time
}
