package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"listkit/dto"
	"listkit/models"
	"listkit/repositories"
)

// PostService encapsulates business logic for posts and DTO mapping
type PostService struct {
	repo *repositories.PostRepository
}

func NewPostService(repo *repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// GetByID loads a post by its ObjectID hex and returns a DTO
func (s *PostService) GetByID(ctx context.Context, hexID string) (*dto.PostDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewPostDTO(*p)
	return &d, nil
}

type ListPostsInput struct {
	Page     int
	PageSize int
	FeedName string
}

// List returns one page of posts, newest first, in the common pagination
// envelope.
func (s *PostService) List(ctx context.Context, in ListPostsInput) (*dto.Pagination[dto.PostDTO], error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PageSize < 1 || in.PageSize > 100 {
		in.PageSize = 20
	}

	filter := bson.M{}
	if in.FeedName != "" {
		filter["feed_name"] = in.FeedName
	}

	col := s.repo.Collection()
	var total int64
	var err error
	if in.FeedName != "" {
		total, err = s.repo.CountByFeed(ctx, in.FeedName)
	} else {
		total, err = col.CountDocuments(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetSkip(int64((in.Page - 1) * in.PageSize)).
		SetLimit(int64(in.PageSize))

	cur, err := col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := &dto.Pagination[dto.PostDTO]{
		Data:     []dto.PostDTO{},
		Page:     in.Page,
		PageSize: in.PageSize,
		Total:    total,
	}
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out.Data = append(out.Data, dto.NewPostDTO(p))
	}
	return out, cur.Err()
}
