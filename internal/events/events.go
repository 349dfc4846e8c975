package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies the domain events this service publishes.
type EventType string

const (
	EventAssessmentCreated  EventType = "assessment.created"
	EventSubmissionReceived EventType = "submission.received"
	EventSubmissionGraded   EventType = "submission.graded"
)

const eventSource = "exam-service"

// Event is the envelope shared by all published events.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
	Data      any       `json:"data"`
}

type AssessmentCreatedEvent struct {
	AssessmentID  string `json:"assessment_id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
	SourceType    string `json:"source_type,omitempty"`
}

type SubmissionReceivedEvent struct {
	SubmissionID string `json:"submission_id"`
	AssessmentID string `json:"assessment_id"`
	AnswerCount  int    `json:"answer_count"`
}

type SubmissionGradedEvent struct {
	SubmissionID string  `json:"submission_id"`
	AssessmentID string  `json:"assessment_id"`
	TotalPoints  int     `json:"total_points"`
	Score        float64 `json:"score"`
}

func NewAssessmentCreatedEvent(assessmentID, title string, questionCount int, sourceType string) *Event {
	return newEvent(EventAssessmentCreated, AssessmentCreatedEvent{
		AssessmentID:  assessmentID,
		Title:         title,
		QuestionCount: questionCount,
		SourceType:    sourceType,
	})
}

func NewSubmissionReceivedEvent(submissionID, assessmentID string, answerCount int) *Event {
	return newEvent(EventSubmissionReceived, SubmissionReceivedEvent{
		SubmissionID: submissionID,
		AssessmentID: assessmentID,
		AnswerCount:  answerCount,
	})
}

func NewSubmissionGradedEvent(submissionID, assessmentID string, totalPoints int, score float64) *Event {
	return newEvent(EventSubmissionGraded, SubmissionGradedEvent{
		SubmissionID: submissionID,
		AssessmentID: assessmentID,
		TotalPoints:  totalPoints,
		Score:        score,
	})
}

func newEvent(eventType EventType, data any) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   "1.0",
		Data:      data,
	}
}
