// Package generator turns uploaded source files into assessment questions.
// The generation strategy is pluggable so a real extraction backend can be
// substituted without touching the endpoint layer.
package generator

import (
	"context"
	"fmt"

	"github.com/examai/exam-service/internal/models"
)

// Source describes an uploaded file handed to a generator.
type Source struct {
	Filename string
	Data     []byte
}

// QuestionGenerator produces an ordered question list from an uploaded source.
type QuestionGenerator interface {
	Generate(ctx context.Context, src Source) ([]models.Question, error)
}

// TemplateGenerator fabricates a fixed three-question set regardless of file
// content. Only the filename leaks into the generated prompts. This is the
// default strategy; it stands in for a real content-extraction backend.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(_ context.Context, src Source) ([]models.Question, error) {
	filename := src.Filename
	if filename == "" {
		filename = "upload"
	}

	return []models.Question{
		{
			Prompt: fmt.Sprintf("Describe the main concept from %s.", filename),
			Type:   models.ShortAnswer,
			Points: 5,
		},
		{
			Prompt:    "Which option best matches the definition?",
			Type:      models.MultipleChoice,
			Options:   []string{"Option A", "Option B", "Option C", "Option D"},
			AnswerKey: 1,
			Points:    3,
		},
		{
			Prompt: "Write a short essay explaining the implications.",
			Type:   models.Essay,
			Points: 10,
		},
	}, nil
}

// ForName resolves a generator strategy from its configured name. Unknown
// names fall back to the template stub.
func ForName(name string) QuestionGenerator {
	if name == "spreadsheet" {
		return NewSpreadsheetGenerator()
	}
	return NewTemplateGenerator()
}
