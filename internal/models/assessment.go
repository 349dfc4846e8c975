package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestionType string

const (
	ShortAnswer    QuestionType = "short_answer"
	MultipleChoice QuestionType = "multiple_choice"
	Essay          QuestionType = "essay"
)

// Question is a single graded item embedded in an Assessment. Questions are
// immutable once embedded; the slice index of a question inside its assessment
// is the identifier submission answers reference.
type Question struct {
	Prompt  string       `bson:"prompt" json:"prompt" validate:"required"`
	Type    QuestionType `bson:"type" json:"type" validate:"omitempty,question_type"`
	Options []string     `bson:"options,omitempty" json:"options,omitempty"`

	// AnswerKey is an arbitrary JSON value whose interpretation depends on
	// Type. For multiple_choice it is compared against the submitted answer.
	AnswerKey any `bson:"answer_key,omitempty" json:"answer_key,omitempty"`

	Points int `bson:"points" json:"points" validate:"omitempty,min=1"`
}

type Assessment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string             `bson:"title" json:"title"`
	Description     *string            `bson:"description,omitempty" json:"description,omitempty"`
	SourceType      *string            `bson:"source_type,omitempty" json:"source_type,omitempty"`
	SourceReference *string            `bson:"source_reference,omitempty" json:"source_reference,omitempty"`
	Questions       []Question         `bson:"questions" json:"questions"`
}
