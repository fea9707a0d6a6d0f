package course

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairwaylabs/pressbook/internal/repositories/course Repository

import (
	"context"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// Repository defines the interface for saved-course persistence
type Repository interface {
	// SaveCourse persists a course
	SaveCourse(ctx context.Context, input *SaveCourseInput) error

	// GetCourse retrieves a course by ID
	GetCourse(ctx context.Context, input *GetCourseInput) (*models.Course, error)

	// ListCoursesByOwner retrieves a user's saved courses
	ListCoursesByOwner(ctx context.Context, input *ListCoursesByOwnerInput) ([]*models.Course, error)

	// DeleteCourse removes a course
	DeleteCourse(ctx context.Context, input *DeleteCourseInput) error
}
