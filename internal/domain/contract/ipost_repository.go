package contract

import (
	"context"
	"errors"
	"time"

	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
)

// ErrPostNotFound is returned by lookups when no post matches.
var ErrPostNotFound = errors.New("post not found")

// PostStats aggregates tagging-related counts over the posts collection.
type PostStats struct {
	TotalPosts      int64 `json:"totalPosts"`
	TaggedPosts     int64 `json:"taggedPosts"`
	AutoTaggedPosts int64 `json:"autoTaggedPosts"`
	UntaggedPosts   int64 `json:"untaggedPosts"`
}

// IPostRepository defines the persistence operations for posts.
type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
	GetPublishedPosts(ctx context.Context, page, pageSize int) ([]entity.Post, int, error)
	// GetUntaggedPosts returns every post the auto-tagger has not yet
	// processed, i.e. posts with no auto_tagged field defined.
	GetUntaggedPosts(ctx context.Context) ([]entity.Post, error)
	// ApplyTags sets the post's tag references and marks it auto-tagged
	// in a single update.
	ApplyTags(ctx context.Context, postID string, tagIDs []string, taggedAt time.Time) error
	GetPostStats(ctx context.Context) (*PostStats, error)
}
