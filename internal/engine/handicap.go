// Package engine implements the scoring and settlement pipeline: net score
// computation, the per-wager-type resolvers, cross-wager winnings
// aggregation, and the zero-sum settlement calculation. Every function in
// the package is a pure function of its inputs; malformed input degrades to
// a defined default rather than an error, so the pipeline always produces a
// complete, displayable result.
package engine

// StrokesForHole returns the handicap strokes a player receives on a hole,
// given their course handicap and the hole's stroke index (1 = hardest).
//
// Strokes accumulate in passes of 18: a handicap of 22 gives every hole one
// stroke, plus a second stroke on the four hardest holes. A negative "plus"
// handicap subtracts strokes instead. A stroke index outside 1..18 receives
// no strokes.
func StrokesForHole(courseHandicap, holeIndex int) int {
	if holeIndex < 1 {
		return 0
	}

	absHandicap := courseHandicap
	if absHandicap < 0 {
		absHandicap = -absHandicap
	}

	strokes := 0
	for remaining := absHandicap; remaining > 0; remaining -= 18 {
		pass := remaining
		if pass > 18 {
			pass = 18
		}
		if holeIndex <= pass {
			strokes++
		}
	}

	if courseHandicap < 0 {
		return -strokes
	}
	return strokes
}
