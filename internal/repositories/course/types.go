package course

import (
	"github.com/fairwaylabs/pressbook/internal/models"
)

// SaveCourseInput contains parameters for persisting a course
type SaveCourseInput struct {
	// Course is the course to persist
	Course *models.Course
}

// GetCourseInput contains parameters for retrieving a course
type GetCourseInput struct {
	// CourseID is the unique identifier for the course
	CourseID string
}

// ListCoursesByOwnerInput contains parameters for listing a user's courses
type ListCoursesByOwnerInput struct {
	// OwnerID is the owning user's ID
	OwnerID string
}

// DeleteCourseInput contains parameters for removing a course
type DeleteCourseInput struct {
	// CourseID is the unique identifier for the course
	CourseID string

	// OwnerID is the owning user's ID, used to clean up the owner index
	OwnerID string
}
