package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"listkit/models"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// Collection exposes the underlying collection so the handlers can build a
// MongoProvider over it.
func (r *PostRepository) Collection() *mongo.Collection {
	return r.col
}

// UpsertByLink upserts a post uniquely identified by its link
func (r *PostRepository) UpsertByLink(ctx context.Context, p *models.Post) (*mongo.UpdateResult, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	filter := bson.M{"link": p.Link}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": p.CreatedAt,
		},
		"$set": bson.M{
			"updated_at":   p.UpdatedAt,
			"feed_name":    p.FeedName,
			"title":        p.Title,
			"link":         p.Link,
			"author":       p.Author,
			"published_at": p.PublishedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// FindByID returns a post by ObjectID
func (r *PostRepository) FindByID(ctx context.Context, id any) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CountByFeed returns the number of posts of one feed
func (r *PostRepository) CountByFeed(ctx context.Context, feedName string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"feed_name": feedName})
}
