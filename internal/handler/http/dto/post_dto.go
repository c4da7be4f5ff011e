package dto

import (
	"time"

	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
)

// CreatePostRequest is the body of the post creation endpoint.
type CreatePostRequest struct {
	Title     string         `json:"title" binding:"required"`
	Slug      string         `json:"slug" binding:"omitempty,slugfmt"`
	Excerpt   string         `json:"excerpt"`
	Body      []entity.Block `json:"body"`
	Published bool           `json:"published"`
}

// PostResponse is the DTO for a post.
type PostResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Excerpt      string         `json:"excerpt"`
	Body         []entity.Block `json:"body,omitempty"`
	Tags         []string       `json:"tags"`
	AutoTagged   bool           `json:"autoTagged"`
	AutoTaggedAt *string        `json:"autoTaggedAt,omitempty"`
	Published    bool           `json:"published"`
	CreatedAt    string         `json:"createdAt"`
}

// PaginatedPostsResponse is the DTO for a page of posts.
type PaginatedPostsResponse struct {
	Posts       []PostResponse `json:"posts"`
	TotalCount  int            `json:"totalCount"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}

// TagResponse is the DTO for a tag.
type TagResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// ToPostResponse converts an entity.Post to a PostResponse DTO.
func ToPostResponse(post *entity.Post) PostResponse {
	resp := PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		Excerpt:    post.Excerpt,
		Body:       post.Body,
		Tags:       post.Tags,
		AutoTagged: post.AutoTagged,
		Published:  post.Published,
		CreatedAt:  post.CreatedAt.Format(time.RFC3339),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if post.AutoTaggedAt != nil {
		s := post.AutoTaggedAt.Format(time.RFC3339)
		resp.AutoTaggedAt = &s
	}
	return resp
}

// ToTagResponse converts an entity.Tag to a TagResponse DTO.
func ToTagResponse(tag *entity.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		Title: tag.Title,
		Slug:  tag.Slug,
		Color: tag.Color,
	}
}
