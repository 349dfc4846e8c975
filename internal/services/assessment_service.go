package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/examai/exam-service/internal/events"
	"github.com/examai/exam-service/internal/generator"
	"github.com/examai/exam-service/internal/models"
	"github.com/examai/exam-service/internal/repositories"
	"github.com/examai/exam-service/internal/validator"
)

type assessmentService struct {
	repo      repositories.Repository
	generator generator.QuestionGenerator
	publisher events.EventPublisher
	validator *validator.Validator
	logger    *slog.Logger
}

func NewAssessmentService(
	repo repositories.Repository,
	gen generator.QuestionGenerator,
	publisher events.EventPublisher,
	validator *validator.Validator,
	logger *slog.Logger,
) AssessmentService {
	return &assessmentService{
		repo:      repo,
		generator: gen,
		publisher: publisher,
		validator: validator,
		logger:    logger,
	}
}

func (s *assessmentService) Create(ctx context.Context, req *CreateAssessmentRequest) (*models.Assessment, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	assessment := &models.Assessment{
		Title:           req.Title,
		Description:     req.Description,
		SourceType:      req.SourceType,
		SourceReference: req.SourceReference,
		Questions:       normalizeQuestions(req.Questions),
	}

	id, err := s.repo.Assessment().Create(ctx, assessment)
	if err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}

	s.logger.Info("assessment created", "assessment_id", id, "questions", len(assessment.Questions))
	s.publishCreated(ctx, id, assessment)

	return assessment, nil
}

func (s *assessmentService) CreateFromUpload(ctx context.Context, req *UploadAssessmentRequest) (*models.Assessment, error) {
	filename := req.Filename
	if filename == "" {
		filename = "upload"
	}

	questions, err := s.generator.Generate(ctx, generator.Source{Filename: filename, Data: req.Data})
	if err != nil {
		return nil, fmt.Errorf("generate questions from %s: %w", filename, err)
	}

	assessment := &models.Assessment{
		Title:           req.Title,
		Description:     &req.Description,
		SourceType:      &req.SourceType,
		SourceReference: &filename,
		Questions:       normalizeQuestions(questions),
	}

	id, err := s.repo.Assessment().Create(ctx, assessment)
	if err != nil {
		return nil, fmt.Errorf("create assessment from upload: %w", err)
	}

	s.logger.Info("assessment generated from upload",
		"assessment_id", id,
		"source_reference", filename,
		"questions", len(assessment.Questions))
	s.publishCreated(ctx, id, assessment)

	return assessment, nil
}

func (s *assessmentService) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	assessment, err := s.repo.Assessment().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	return assessment, nil
}

func (s *assessmentService) List(ctx context.Context) ([]*models.Assessment, error) {
	assessments, err := s.repo.Assessment().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return assessments, nil
}

func (s *assessmentService) publishCreated(ctx context.Context, id string, assessment *models.Assessment) {
	sourceType := ""
	if assessment.SourceType != nil {
		sourceType = *assessment.SourceType
	}
	event := events.NewAssessmentCreatedEvent(id, assessment.Title, len(assessment.Questions), sourceType)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish assessment.created", "assessment_id", id, "error", err)
	}
}

// normalizeQuestions applies the documented defaults: type short_answer,
// points 1. Questions are immutable after this point.
func normalizeQuestions(questions []models.Question) []models.Question {
	normalized := make([]models.Question, len(questions))
	for i, q := range questions {
		if q.Type == "" {
			q.Type = models.ShortAnswer
		}
		if q.Points <= 0 {
			q.Points = 1
		}
		normalized[i] = q
	}
	return normalized
}
