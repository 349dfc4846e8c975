package models

// QuestionGrade is the per-question feedback record emitted by the grading
// engine, in ascending question index order.
type QuestionGrade struct {
	QuestionIndex int     `bson:"question_index" json:"question_index"`
	Points        int     `bson:"points" json:"points"`
	Earned        int     `bson:"earned" json:"earned"`
	Correctness   float64 `bson:"correctness" json:"correctness"`
	Feedback      string  `bson:"feedback" json:"feedback"`
}

// GradeResult is the aggregate outcome of grading one submission against its
// assessment. Score is a 0-100 percentage rounded to two decimals.
type GradeResult struct {
	Graded      bool            `json:"graded"`
	TotalPoints int             `json:"total_points"`
	Score       float64         `json:"score"`
	Feedback    []QuestionGrade `json:"feedback"`
}
