// Package mongodb implements the repository interfaces on top of a MongoDB
// database. Collection names and field layout are stable so existing data
// stays readable across releases.
package mongodb

import (
	"context"

	"github.com/examai/exam-service/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	AssessmentCollection = "assessment"
	SubmissionCollection = "submission"
	LessonCollection     = "lesson"
)

type Store struct {
	db          *mongo.Database
	assessments *assessmentRepository
	submissions *submissionRepository
	lessons     *lessonRepository
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		db:          db,
		assessments: &assessmentRepository{coll: db.Collection(AssessmentCollection)},
		submissions: &submissionRepository{coll: db.Collection(SubmissionCollection)},
		lessons:     &lessonRepository{coll: db.Collection(LessonCollection)},
	}
}

func (s *Store) Assessment() repositories.AssessmentRepository {
	return s.assessments
}

func (s *Store) Submission() repositories.SubmissionRepository {
	return s.submissions
}

func (s *Store) Lesson() repositories.LessonRepository {
	return s.lessons
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}
