package mongodb

import (
	"context"
	"fmt"

	"github.com/examai/exam-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type lessonRepository struct {
	coll *mongo.Collection
}

func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) (string, error) {
	res, err := r.coll.InsertOne(ctx, lesson)
	if err != nil {
		return "", fmt.Errorf("insert lesson: %w", err)
	}

	oid := res.InsertedID.(primitive.ObjectID)
	lesson.ID = oid
	return oid.Hex(), nil
}

func (r *lessonRepository) List(ctx context.Context) ([]*models.Lesson, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer cursor.Close(ctx)

	lessons := make([]*models.Lesson, 0)
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("decode lessons: %w", err)
	}
	return lessons, nil
}
