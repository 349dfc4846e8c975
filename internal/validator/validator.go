// Package validator wraps go-playground/validator with the custom rules used
// by the request boundary. Field presence and shape checking happens here,
// before any business logic runs.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/examai/exam-service/internal/models"
)

type Validator struct {
	validate *validator.Validate
}

// New creates the centralized validator instance with all custom rules
// registered.
func New() *Validator {
	validate := validator.New()
	registerCustomValidators(validate)
	return &Validator{validate: validate}
}

// Validate checks struct tags on the given request value.
func (v *Validator) Validate(s any) error {
	return v.validate.Struct(s)
}

// IsValidationError reports whether err came out of struct validation.
func IsValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("block_kind", validateBlockKind)

	// Report field names as they appear on the wire.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuestionType(fl validator.FieldLevel) bool {
	validTypes := []models.QuestionType{
		models.ShortAnswer,
		models.MultipleChoice,
		models.Essay,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateBlockKind(fl validator.FieldLevel) bool {
	validKinds := []models.BlockKind{
		models.BlockText,
		models.BlockQuiz,
		models.BlockImage,
		models.BlockVideo,
	}

	value := fl.Field().String()
	for _, validKind := range validKinds {
		if string(validKind) == value {
			return true
		}
	}
	return false
}
