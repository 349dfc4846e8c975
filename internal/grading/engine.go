// Package grading implements the heuristic scoring rules applied to student
// submissions. Grade is a pure function of its inputs: it holds no state
// between calls, never touches storage and is safe for concurrent use.
package grading

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/examai/exam-service/internal/models"
)

const (
	// baselineCorrectness is the partial-credit default applied when no
	// scoring rule matches: unanswered questions, unknown question types and
	// multiple-choice questions without an answer key.
	baselineCorrectness = 0.5

	// keywordTarget is the shared-word count at which a short answer earns
	// full credit.
	keywordTarget = 5.0

	baselineRationale = "Partial credit: baseline heuristic"
)

// Grade scores the submitted answers against the assessment's ordered question
// list. All inputs are treated permissively: missing answers, out-of-range
// indices and absent fields fall back to the documented defaults rather than
// raising errors. TotalPoints counts every question, answered or not.
func Grade(questions []models.Question, answers []models.SubmissionAnswer) *models.GradeResult {
	totalPoints := 0
	for _, q := range questions {
		totalPoints += pointsOf(q)
	}

	earned := 0
	feedback := make([]models.QuestionGrade, 0, len(questions))
	for i, q := range questions {
		correctness, rationale := scoreQuestion(q, findAnswer(answers, i))
		pts := pointsOf(q)
		got := int(math.Round(float64(pts) * correctness))
		earned += got

		feedback = append(feedback, models.QuestionGrade{
			QuestionIndex: i,
			Points:        pts,
			Earned:        got,
			Correctness:   round2(correctness),
			Feedback:      rationale,
		})
	}

	score := 0.0
	if totalPoints > 0 {
		score = round2(float64(earned) / float64(totalPoints) * 100)
	}

	return &models.GradeResult{
		Graded:      true,
		TotalPoints: totalPoints,
		Score:       score,
		Feedback:    feedback,
	}
}

// findAnswer returns the first answer targeting the given question index, or
// nil when the question was left unanswered.
func findAnswer(answers []models.SubmissionAnswer, index int) *models.SubmissionAnswer {
	for i := range answers {
		if answers[i].QuestionIndex == index {
			return &answers[i]
		}
	}
	return nil
}

func scoreQuestion(q models.Question, ans *models.SubmissionAnswer) (float64, string) {
	if ans == nil {
		return baselineCorrectness, baselineRationale
	}

	switch q.Type {
	case models.MultipleChoice:
		if q.AnswerKey == nil {
			// Nothing to compare against; the baseline stands.
			return baselineCorrectness, baselineRationale
		}
		if valuesEqual(ans.Answer, q.AnswerKey) {
			return 1.0, "Correct option"
		}
		return 0.0, "Incorrect option"

	case models.ShortAnswer:
		overlap := wordOverlap(q.Prompt, stringify(ans.Answer))
		correctness := math.Min(1.0, float64(overlap)/keywordTarget)
		return correctness, fmt.Sprintf("Keyword overlap score: %d", overlap)

	case models.Essay:
		length := utf8.RuneCountInString(stringify(ans.Answer))
		correctness := 0.3
		switch {
		case length > 200:
			correctness = 1.0
		case length > 80:
			correctness = 0.6
		}
		return correctness, fmt.Sprintf("Length heuristic: %d chars", length)
	}

	// Unknown question type: matched and unmatched converge on the baseline.
	return baselineCorrectness, baselineRationale
}

// wordOverlap counts the distinct lowercase words shared by the prompt and the
// answer. Set semantics collapse repeated tokens; no stemming or stopword
// removal is applied.
func wordOverlap(prompt, answer string) int {
	promptWords := wordSet(prompt)
	overlap := 0
	for word := range wordSet(answer) {
		if promptWords[word] {
			overlap++
		}
	}
	return overlap
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(s)) {
		set[word] = true
	}
	return set
}

// valuesEqual compares two decoded JSON/BSON values. Numbers compare by value
// regardless of how the decoder typed them (JSON yields float64, BSON yields
// int32/int64); values of different kinds are never equal, so "1" != 1.
func valuesEqual(a, b any) bool {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok || bok {
		return aok && bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// stringify coerces an arbitrary answer value to text for the length and
// keyword heuristics.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// pointsOf defaults missing or non-positive point values to 1.
func pointsOf(q models.Question) int {
	if q.Points <= 0 {
		return 1
	}
	return q.Points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
