package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/examai/exam-service/internal/models"
	"github.com/examai/exam-service/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type submissionRepository struct {
	coll *mongo.Collection
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) (string, error) {
	res, err := r.coll.InsertOne(ctx, submission)
	if err != nil {
		return "", fmt.Errorf("insert submission: %w", err)
	}

	oid := res.InsertedID.(primitive.ObjectID)
	submission.ID = oid
	return oid.Hex(), nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}

	var submission models.Submission
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&submission); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("find submission %s: %w", id, err)
	}
	return &submission, nil
}

func (r *submissionRepository) SaveGrade(ctx context.Context, id string, result *models.GradeResult) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repositories.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"graded":       true,
		"total_points": result.TotalPoints,
		"score":        result.Score,
		"feedback":     result.Feedback,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("save grade for submission %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
