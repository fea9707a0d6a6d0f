package round

// RoundError is a custom error type for round-related errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoundNotFound       RoundError = "round not found"
	ErrRoundEnded          RoundError = "round has already ended"
	ErrNoPlayers           RoundError = "round needs at least one player"
	ErrCourseRequired      RoundError = "round needs a course"
	ErrPlayerNotInRound    RoundError = "player is not in the round"
	ErrDuplicatePlayerName RoundError = "player name already used in this round"
	ErrWagerNotFound       RoundError = "wager not found"
	ErrBetNotFound         RoundError = "bet not found"
	ErrInvalidBetAmount    RoundError = "bet amount must be positive"
	ErrInvalidHole         RoundError = "hole number out of range"
	ErrUnknownJunkType     RoundError = "unknown junk type"
	ErrInvalidWinner       RoundError = "winner is not part of the bet"
	ErrShareCodeNotFound   RoundError = "share code not found"
	ErrNilConfig           RoundError = "config cannot be nil"
	ErrNilRoundRepo        RoundError = "round repository cannot be nil"
	ErrNilPlayerRepo       RoundError = "player repository cannot be nil"
	ErrNilCourseRepo       RoundError = "course repository cannot be nil"
	ErrNilShareCodeRepo    RoundError = "share code repository cannot be nil"
	ErrNilClock            RoundError = "clock cannot be nil"
	ErrNilUUIDGenerator    RoundError = "UUID generator cannot be nil"
)
