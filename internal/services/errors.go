package services

import (
	"errors"

	"github.com/examai/exam-service/internal/validator"
)

var (
	ErrValidationFailed = errors.New("validation failed")

	// NotFound errors name the missing entity so handlers can surface it.
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// IsNotFound reports whether err represents a missing referenced entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAssessmentNotFound) ||
		errors.Is(err, ErrSubmissionNotFound)
}

// IsValidation reports whether err represents a malformed request, surfaced
// before business logic ran.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed) || validator.IsValidationError(err)
}
