package services

import (
	"context"

	"github.com/examai/exam-service/internal/models"
)

// ===== REQUEST STRUCTURES =====

type CreateAssessmentRequest struct {
	Title           string            `json:"title" validate:"required,min=1,max=200"`
	Description     *string           `json:"description" validate:"omitempty,max=1000"`
	SourceType      *string           `json:"source_type"`
	SourceReference *string           `json:"source_reference"`
	Questions       []models.Question `json:"questions" validate:"omitempty,dive"`
}

// UploadAssessmentRequest carries the multipart upload plus its query
// parameters. The configured generator strategy decides what the file content
// means, if anything.
type UploadAssessmentRequest struct {
	Title       string
	Description string
	SourceType  string
	Filename    string
	Data        []byte
}

type CreateSubmissionRequest struct {
	AssessmentID string                    `json:"assessment_id" validate:"required"`
	StudentName  *string                   `json:"student_name"`
	Answers      []models.SubmissionAnswer `json:"answers"`
}

type CreateLessonRequest struct {
	Title         string               `json:"title" validate:"required,min=1,max=200"`
	Description   *string              `json:"description" validate:"omitempty,max=1000"`
	ContentBlocks []models.LessonBlock `json:"content_blocks" validate:"omitempty,dive"`
}

// ===== SERVICE INTERFACES =====

type AssessmentService interface {
	Create(ctx context.Context, req *CreateAssessmentRequest) (*models.Assessment, error)
	CreateFromUpload(ctx context.Context, req *UploadAssessmentRequest) (*models.Assessment, error)
	GetByID(ctx context.Context, id string) (*models.Assessment, error)
	List(ctx context.Context) ([]*models.Assessment, error)
}

type SubmissionService interface {
	// Create persists a submission after resolving its assessment; an
	// unresolved assessment_id fails with ErrAssessmentNotFound and nothing
	// is stored.
	Create(ctx context.Context, req *CreateSubmissionRequest) (*models.Submission, error)

	// Grade runs the heuristic engine over the submission and its assessment,
	// persists the grade fields onto the stored submission and returns the
	// result. Re-grading overwrites the prior grade.
	Grade(ctx context.Context, id string) (*models.GradeResult, error)
}

type LessonService interface {
	Create(ctx context.Context, req *CreateLessonRequest) (*models.Lesson, error)
	List(ctx context.Context) ([]*models.Lesson, error)
}

// ServiceManager provides access to all services.
type ServiceManager interface {
	Assessment() AssessmentService
	Submission() SubmissionService
	Lesson() LessonService
}
