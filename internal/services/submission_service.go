package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/examai/exam-service/internal/events"
	"github.com/examai/exam-service/internal/grading"
	"github.com/examai/exam-service/internal/models"
	"github.com/examai/exam-service/internal/repositories"
	"github.com/examai/exam-service/internal/validator"
)

type submissionService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	validator *validator.Validator
	logger    *slog.Logger
}

func NewSubmissionService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	validator *validator.Validator,
	logger *slog.Logger,
) SubmissionService {
	return &submissionService{
		repo:      repo,
		publisher: publisher,
		validator: validator,
		logger:    logger,
	}
}

func (s *submissionService) Create(ctx context.Context, req *CreateSubmissionRequest) (*models.Submission, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	// The referenced assessment must exist before anything is persisted.
	if _, err := s.repo.Assessment().GetByID(ctx, req.AssessmentID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("resolve assessment %s: %w", req.AssessmentID, err)
	}

	answers := req.Answers
	if answers == nil {
		answers = []models.SubmissionAnswer{}
	}

	submission := &models.Submission{
		AssessmentID: req.AssessmentID,
		StudentName:  req.StudentName,
		Answers:      answers,
	}

	id, err := s.repo.Submission().Create(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.logger.Info("submission received",
		"submission_id", id,
		"assessment_id", req.AssessmentID,
		"answers", len(answers))

	event := events.NewSubmissionReceivedEvent(id, req.AssessmentID, len(answers))
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish submission.received", "submission_id", id, "error", err)
	}

	return submission, nil
}

func (s *submissionService) Grade(ctx context.Context, id string) (*models.GradeResult, error) {
	submission, err := s.repo.Submission().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("get submission %s: %w", id, err)
	}

	// Two independent reads; no transaction spans them.
	assessment, err := s.repo.Assessment().GetByID(ctx, submission.AssessmentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("get assessment %s for submission %s: %w", submission.AssessmentID, id, err)
	}

	result := grading.Grade(assessment.Questions, submission.Answers)

	if err := s.repo.Submission().SaveGrade(ctx, id, result); err != nil {
		return nil, fmt.Errorf("persist grade for submission %s: %w", id, err)
	}

	s.logger.Info("submission graded",
		"submission_id", id,
		"assessment_id", submission.AssessmentID,
		"score", result.Score,
		"total_points", result.TotalPoints)

	event := events.NewSubmissionGradedEvent(id, submission.AssessmentID, result.TotalPoints, result.Score)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish submission.graded", "submission_id", id, "error", err)
	}

	return result, nil
}
