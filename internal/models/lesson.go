package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlockKind string

const (
	BlockText  BlockKind = "text"
	BlockQuiz  BlockKind = "quiz"
	BlockImage BlockKind = "image"
	BlockVideo BlockKind = "video"
)

// LessonBlock is one ordered unit of lesson content. Content is an opaque map
// interpreted by the client; the service stores it as-is.
type LessonBlock struct {
	Kind    BlockKind      `bson:"kind" json:"kind" validate:"required,block_kind"`
	Content map[string]any `bson:"content" json:"content"`
}

type Lesson struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Description   *string            `bson:"description,omitempty" json:"description,omitempty"`
	ContentBlocks []LessonBlock      `bson:"content_blocks" json:"content_blocks"`
}
