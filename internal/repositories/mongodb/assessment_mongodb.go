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

type assessmentRepository struct {
	coll *mongo.Collection
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *models.Assessment) (string, error) {
	res, err := r.coll.InsertOne(ctx, assessment)
	if err != nil {
		return "", fmt.Errorf("insert assessment: %w", err)
	}

	oid := res.InsertedID.(primitive.ObjectID)
	assessment.ID = oid
	return oid.Hex(), nil
}

func (r *assessmentRepository) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}

	var assessment models.Assessment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&assessment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("find assessment %s: %w", id, err)
	}
	return &assessment, nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*models.Assessment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer cursor.Close(ctx)

	assessments := make([]*models.Assessment, 0)
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, fmt.Errorf("decode assessments: %w", err)
	}
	return assessments, nil
}
