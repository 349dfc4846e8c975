package services

import (
	"context"
	"testing"

	"github.com/examai/exam-service/internal/events"
	"github.com/examai/exam-service/internal/generator"
	"github.com/examai/exam-service/internal/models"
	"github.com/examai/exam-service/internal/repositories"
	"github.com/examai/exam-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssessmentService(repo *mockRepository, publisher events.EventPublisher) AssessmentService {
	return NewAssessmentService(repo, generator.NewTemplateGenerator(), publisher, validator.New(), testLogger())
}

func TestAssessmentService_Create(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher()
	svc := newAssessmentService(repo, publisher)

	repo.assessments.On("Create", mock.Anything, mock.AnythingOfType("*models.Assessment")).Return("a1", nil)

	assessment, err := svc.Create(context.Background(), &CreateAssessmentRequest{
		Title: "History quiz",
		Questions: []models.Question{
			{Prompt: "Who?", Type: models.MultipleChoice, Options: []string{"a", "b"}, AnswerKey: 0, Points: 2},
			{Prompt: "Why?"}, // type and points defaulted
		},
	})

	require.NoError(t, err)
	require.Len(t, assessment.Questions, 2)
	assert.Equal(t, models.ShortAnswer, assessment.Questions[1].Type)
	assert.Equal(t, 1, assessment.Questions[1].Points)
	repo.assessments.AssertExpectations(t)

	published := publisher.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventAssessmentCreated, published[0].Type)
}

func TestAssessmentService_CreateValidation(t *testing.T) {
	repo := newMockRepository()
	svc := newAssessmentService(repo, events.NewMockEventPublisher())

	tests := []struct {
		name string
		req  *CreateAssessmentRequest
	}{
		{"missing title", &CreateAssessmentRequest{}},
		{"question without prompt", &CreateAssessmentRequest{
			Title:     "t",
			Questions: []models.Question{{Type: models.Essay}},
		}},
		{"unknown question type", &CreateAssessmentRequest{
			Title:     "t",
			Questions: []models.Question{{Prompt: "p", Type: "matching"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
	repo.assessments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssessmentService_CreateFromUpload(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher()
	svc := newAssessmentService(repo, publisher)

	repo.assessments.On("Create", mock.Anything, mock.AnythingOfType("*models.Assessment")).Return("a2", nil)

	assessment, err := svc.CreateFromUpload(context.Background(), &UploadAssessmentRequest{
		Title:       "Generated Assessment",
		Description: "Generated from uploaded source",
		SourceType:  "file",
		Filename:    "chapter3.pdf",
		Data:        []byte("raw bytes the stub ignores"),
	})

	require.NoError(t, err)
	require.Len(t, assessment.Questions, 3)
	assert.Equal(t, "Describe the main concept from chapter3.pdf.", assessment.Questions[0].Prompt)
	assert.Equal(t, models.MultipleChoice, assessment.Questions[1].Type)
	assert.Equal(t, models.Essay, assessment.Questions[2].Type)
	require.NotNil(t, assessment.SourceReference)
	assert.Equal(t, "chapter3.pdf", *assessment.SourceReference)

	published := publisher.Events()
	require.Len(t, published, 1)
	data := published[0].Data.(events.AssessmentCreatedEvent)
	assert.Equal(t, 3, data.QuestionCount)
	assert.Equal(t, "file", data.SourceType)
}

func TestAssessmentService_CreateFromUploadEmptyFilename(t *testing.T) {
	repo := newMockRepository()
	svc := newAssessmentService(repo, events.NewMockEventPublisher())

	repo.assessments.On("Create", mock.Anything, mock.Anything).Return("a3", nil)

	assessment, err := svc.CreateFromUpload(context.Background(), &UploadAssessmentRequest{
		Title:      "Generated Assessment",
		SourceType: "file",
	})

	require.NoError(t, err)
	require.NotNil(t, assessment.SourceReference)
	assert.Equal(t, "upload", *assessment.SourceReference)
}

func TestAssessmentService_GetByID(t *testing.T) {
	repo := newMockRepository()
	svc := newAssessmentService(repo, events.NewMockEventPublisher())

	want := &models.Assessment{Title: "found"}
	repo.assessments.On("GetByID", mock.Anything, "a1").Return(want, nil)
	repo.assessments.On("GetByID", mock.Anything, "nope").Return(nil, repositories.ErrNotFound)

	got, err := svc.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestAssessmentService_List(t *testing.T) {
	repo := newMockRepository()
	svc := newAssessmentService(repo, events.NewMockEventPublisher())

	repo.assessments.On("List", mock.Anything).Return([]*models.Assessment{{Title: "a"}, {Title: "b"}}, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
