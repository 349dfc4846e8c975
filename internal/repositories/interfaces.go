// Package repositories defines the persistence interfaces the services depend
// on. The document store behind them is opaque: create, list and lookup by the
// store's native identifier, nothing more.
package repositories

import (
	"context"
	"errors"

	"github.com/examai/exam-service/internal/models"
)

// ErrNotFound is returned when a document does not exist, including lookups
// with identifiers the store cannot parse.
var ErrNotFound = errors.New("document not found")

// IsNotFoundError reports whether err represents a missing document.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type AssessmentRepository interface {
	// Create stores the assessment and returns the store-assigned id.
	Create(ctx context.Context, assessment *models.Assessment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Assessment, error)
	List(ctx context.Context) ([]*models.Assessment, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) (string, error)
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	// SaveGrade writes the grade fields onto the stored submission in place;
	// re-grading overwrites the previous values.
	SaveGrade(ctx context.Context, id string, result *models.GradeResult) error
}

type LessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) (string, error)
	List(ctx context.Context) ([]*models.Lesson, error)
}

// Repository aggregates collection access plus the store diagnostics backing
// the connectivity endpoint.
type Repository interface {
	Assessment() AssessmentRepository
	Submission() SubmissionRepository
	Lesson() LessonRepository

	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}
