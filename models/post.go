package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is one feed entry shown on the reading-list pages.
// Collection: posts
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	FeedName    string             `bson:"feed_name" json:"feed_name"`
	Title       string             `bson:"title" json:"title"`
	Link        string             `bson:"link" json:"link"`
	Author      string             `bson:"author" json:"author"`
	PublishedAt time.Time          `bson:"published_at" json:"published_at"`
}
