package models

// WagerKind identifies the type of a pre-round wager
type WagerKind string

const (
	// WagerKindSideBet is a manual side bet whose winner is picked by hand
	WagerKindSideBet WagerKind = "side_bet"

	// WagerKindNassau is a front 9 / back 9 / total three-segment wager
	WagerKindNassau WagerKind = "nassau"

	// WagerKindSkins is a per-hole unique-low wager, optionally carrying
	// tied holes over to the next decided hole
	WagerKindSkins WagerKind = "skins"

	// WagerKindMatchPlay is a holes-won wager, singles or team
	WagerKindMatchPlay WagerKind = "match_play"

	// WagerKindNinePoint is the 3-player 9-point game
	WagerKindNinePoint WagerKind = "nine_point"
)

// Wager represents a bet configured before the round starts
type Wager struct {
	// ID is the unique identifier for the wager
	ID string

	// Name is the display name of the wager. It doubles as the lookup key
	// for manual winner selection; for non-side-bet kinds it defaults to
	// the kind's label
	Name string

	// Kind is the type of wager
	Kind WagerKind

	// Amount is the dollar amount at stake (per skin, per segment, per
	// match, or per point, depending on the kind)
	Amount float64

	// CarryOver controls whether tied skins holes roll over to the next
	// decided hole. Only meaningful for skins
	CarryOver bool
}

// RoundBetType identifies how an on-the-fly prop bet is settled
type RoundBetType string

const (
	// RoundBetEveryone is a prop bet everyone in the round takes part in
	RoundBetEveryone RoundBetType = "everyone"

	// RoundBetTwoPlayers is a prop bet between exactly two named players,
	// settled as its own transaction outside the round settlement
	RoundBetTwoPlayers RoundBetType = "two_players"
)

// RoundBet represents a proposition bet created during an active round,
// independent of the pre-round wager list
type RoundBet struct {
	// ID is the unique identifier for the bet
	ID string

	// Name is the display name of the bet
	Name string

	// Type is how the bet is settled
	Type RoundBetType

	// Amount is the dollar amount at stake
	Amount float64

	// Odds multiplies the payout. Zero or negative is treated as even
	// odds (1x)
	Odds float64

	// Player1 and Player2 are the participants for a two-player bet
	Player1 string
	Player2 string

	// Winner is the name of the player who won the bet, set when the bet
	// is settled. Empty while undecided
	Winner string
}
