package generator

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/examai/exam-service/internal/models"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet column layout, one question per row:
// prompt | type | options (pipe-separated) | answer key | points
const (
	colPrompt = iota
	colType
	colOptions
	colAnswerKey
	colPoints
)

// SpreadsheetGenerator reads questions from the first sheet of an uploaded
// .xlsx workbook. Rows without a prompt are skipped; a leading header row is
// detected and dropped.
type SpreadsheetGenerator struct{}

func NewSpreadsheetGenerator() *SpreadsheetGenerator {
	return &SpreadsheetGenerator{}
}

func (g *SpreadsheetGenerator) Generate(_ context.Context, src Source) ([]models.Question, error) {
	f, err := excelize.OpenReader(bytes.NewReader(src.Data))
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", src.Filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", src.Filename)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	questions := make([]models.Question, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		prompt := strings.TrimSpace(cell(row, colPrompt))
		if prompt == "" {
			continue
		}
		questions = append(questions, models.Question{
			Prompt:    prompt,
			Type:      parseType(cell(row, colType)),
			Options:   parseOptions(cell(row, colOptions)),
			AnswerKey: parseAnswerKey(cell(row, colAnswerKey)),
			Points:    parsePoints(cell(row, colPoints)),
		})
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found in %s", src.Filename)
	}
	return questions, nil
}

func isHeaderRow(row []string) bool {
	return strings.EqualFold(strings.TrimSpace(cell(row, colPrompt)), "prompt")
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

func parseType(raw string) models.QuestionType {
	switch models.QuestionType(strings.TrimSpace(strings.ToLower(raw))) {
	case models.MultipleChoice:
		return models.MultipleChoice
	case models.Essay:
		return models.Essay
	}
	return models.ShortAnswer
}

func parseOptions(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}

// parseAnswerKey keeps numeric keys numeric so they compare equal to JSON
// decoded answer values during grading.
func parseAnswerKey(raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}

func parsePoints(raw string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
		return n
	}
	return 1
}
