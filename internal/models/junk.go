package models

// JunkType identifies a per-hole bonus or penalty event tracked
// independently of stroke play
type JunkType string

const (
	// JunkGreenie is hitting the green in regulation on a par 3
	JunkGreenie JunkType = "greenies"

	// JunkSandie is making par or better out of a bunker
	JunkSandie JunkType = "sandies"

	// JunkPoley is holing a putt longer than the flagstick
	JunkPoley JunkType = "poleys"

	// JunkGainingDot is a generic positive dot event
	JunkGainingDot JunkType = "gainingDots"

	// JunkLosingDot is a generic negative dot event; its point value
	// counts against the player
	JunkLosingDot JunkType = "losingDots"
)

// AllJunkTypes lists every junk type in display order
var AllJunkTypes = []JunkType{
	JunkGreenie,
	JunkSandie,
	JunkPoley,
	JunkGainingDot,
	JunkLosingDot,
}

// JunkEvents is a sparse record of junk events:
// player name -> hole number -> junk type -> occurred
type JunkEvents map[string]map[int]map[JunkType]bool

// Count returns the number of recorded events of the given type for the
// named player
func (j JunkEvents) Count(playerName string, junkType JunkType) int {
	count := 0
	for _, holeEvents := range j[playerName] {
		if holeEvents[junkType] {
			count++
		}
	}
	return count
}

// Toggle flips the presence of a junk event, creating intermediate maps as
// needed. It reports the new state.
func (j JunkEvents) Toggle(playerName string, hole int, junkType JunkType) bool {
	if j[playerName] == nil {
		j[playerName] = make(map[int]map[JunkType]bool)
	}
	if j[playerName][hole] == nil {
		j[playerName][hole] = make(map[JunkType]bool)
	}
	next := !j[playerName][hole][junkType]
	if next {
		j[playerName][hole][junkType] = true
	} else {
		delete(j[playerName][hole], junkType)
	}
	return next
}
