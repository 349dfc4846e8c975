package services

import (
	"log/slog"

	"github.com/examai/exam-service/internal/events"
	"github.com/examai/exam-service/internal/generator"
	"github.com/examai/exam-service/internal/repositories"
	"github.com/examai/exam-service/internal/validator"
)

type serviceManager struct {
	assessment AssessmentService
	submission SubmissionService
	lesson     LessonService
}

func NewServiceManager(
	repo repositories.Repository,
	gen generator.QuestionGenerator,
	publisher events.EventPublisher,
	validator *validator.Validator,
	logger *slog.Logger,
) ServiceManager {
	return &serviceManager{
		assessment: NewAssessmentService(repo, gen, publisher, validator, logger),
		submission: NewSubmissionService(repo, publisher, validator, logger),
		lesson:     NewLessonService(repo, validator, logger),
	}
}

func (m *serviceManager) Assessment() AssessmentService { return m.assessment }
func (m *serviceManager) Submission() SubmissionService { return m.submission }
func (m *serviceManager) Lesson() LessonService         { return m.lesson }
