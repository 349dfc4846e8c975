package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionAnswer ties an arbitrary answer value to a question by its index
// position in the assessment's question list. The index is not bounds-checked;
// out-of-range values simply never match a question during grading.
type SubmissionAnswer struct {
	QuestionIndex int `bson:"question_index" json:"question_index"`
	Answer        any `bson:"answer" json:"answer"`
}

type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AssessmentID string             `bson:"assessment_id" json:"assessment_id"`
	StudentName  *string            `bson:"student_name,omitempty" json:"student_name,omitempty"`
	Answers      []SubmissionAnswer `bson:"answers" json:"answers"`

	// Grade fields, written in place once grading runs and overwritten on
	// re-grade.
	Graded      bool            `bson:"graded,omitempty" json:"graded,omitempty"`
	TotalPoints int             `bson:"total_points,omitempty" json:"total_points,omitempty"`
	Score       float64         `bson:"score,omitempty" json:"score,omitempty"`
	Feedback    []QuestionGrade `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
