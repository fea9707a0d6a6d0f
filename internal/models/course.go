package models

import (
	"time"
)

// Hole holds the scoring data for a single hole on a course
type Hole struct {
	// Par is the par for the hole (3, 4, or 5)
	Par int

	// StrokeIndex is the hole's relative difficulty ranking, 1 (hardest)
	// through 18 (easiest), used to allocate handicap strokes. A value
	// outside 1..18 means no strokes are allocated on the hole
	StrokeIndex int
}

// Course represents a saved course with per-hole data
type Course struct {
	// ID is the unique identifier for the course
	ID string

	// OwnerID is the ID of the user who saved the course
	OwnerID string

	// Name is the display name of the course
	Name string

	// City is the city the course is located in
	City string

	// Holes maps hole number (1..18) to that hole's data
	Holes map[int]Hole

	// ExternalID is the ID of the course in the external course-data
	// provider, if the course was imported rather than entered by hand
	ExternalID string

	// CreatedAt is when the course was saved
	CreatedAt time.Time

	// UpdatedAt is when the course was last modified
	UpdatedAt time.Time
}
