package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/examai/exam-service/internal/models"
	"github.com/examai/exam-service/internal/repositories"
	"github.com/examai/exam-service/internal/validator"
)

// Lessons are pure storage: no processing happens on content blocks.
type lessonService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    *slog.Logger
}

func NewLessonService(repo repositories.Repository, validator *validator.Validator, logger *slog.Logger) LessonService {
	return &lessonService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

func (s *lessonService) Create(ctx context.Context, req *CreateLessonRequest) (*models.Lesson, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	blocks := req.ContentBlocks
	if blocks == nil {
		blocks = []models.LessonBlock{}
	}

	lesson := &models.Lesson{
		Title:         req.Title,
		Description:   req.Description,
		ContentBlocks: blocks,
	}

	id, err := s.repo.Lesson().Create(ctx, lesson)
	if err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}

	s.logger.Info("lesson created", "lesson_id", id, "blocks", len(blocks))
	return lesson, nil
}

func (s *lessonService) List(ctx context.Context) ([]*models.Lesson, error) {
	lessons, err := s.repo.Lesson().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}
