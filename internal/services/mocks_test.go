package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/examai/exam-service/internal/models"
	"github.com/examai/exam-service/internal/repositories"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockAssessmentRepository is a mock implementation of AssessmentRepository
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(ctx context.Context, assessment *models.Assessment) (string, error) {
	args := m.Called(ctx, assessment)
	return args.String(0), args.Error(1)
}

func (m *MockAssessmentRepository) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*models.Assessment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentRepository) List(ctx context.Context) ([]*models.Assessment, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.([]*models.Assessment), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSubmissionRepository is a mock implementation of SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *models.Submission) (string, error) {
	args := m.Called(ctx, submission)
	return args.String(0), args.Error(1)
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*models.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubmissionRepository) SaveGrade(ctx context.Context, id string, result *models.GradeResult) error {
	args := m.Called(ctx, id, result)
	return args.Error(0)
}

// MockLessonRepository is a mock implementation of LessonRepository
type MockLessonRepository struct {
	mock.Mock
}

func (m *MockLessonRepository) Create(ctx context.Context, lesson *models.Lesson) (string, error) {
	args := m.Called(ctx, lesson)
	return args.String(0), args.Error(1)
}

func (m *MockLessonRepository) List(ctx context.Context) ([]*models.Lesson, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]*models.Lesson), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockRepository aggregates the repository mocks behind the Repository
// interface.
type mockRepository struct {
	assessments *MockAssessmentRepository
	submissions *MockSubmissionRepository
	lessons     *MockLessonRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		assessments: new(MockAssessmentRepository),
		submissions: new(MockSubmissionRepository),
		lessons:     new(MockLessonRepository),
	}
}

func (r *mockRepository) Assessment() repositories.AssessmentRepository { return r.assessments }
func (r *mockRepository) Submission() repositories.SubmissionRepository { return r.submissions }
func (r *mockRepository) Lesson() repositories.LessonRepository         { return r.lessons }
func (r *mockRepository) Ping(context.Context) error                    { return nil }
func (r *mockRepository) CollectionNames(context.Context) ([]string, error) {
	return []string{"assessment", "submission", "lesson"}, nil
}
