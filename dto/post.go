package dto

import (
	"time"

	"listkit/models"
)

// PostDTO exposes the fields needed by API consumers.
// ID is a hex string to keep transport simple.
type PostDTO struct {
	ID          string    `json:"id"`
	FeedName    string    `json:"feed_name"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}

// NewPostDTO constructs PostDTO from models.Post
func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		ID:          p.ID.Hex(),
		FeedName:    p.FeedName,
		Title:       p.Title,
		Link:        p.Link,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
	}
}
