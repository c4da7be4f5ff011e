package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository represents the MongoDB implementation of the IPostRepository interface.
type PostRepository struct {
	collection *mongo.Collection
}

// NewPostRepository creates and returns a new PostRepository instance.
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection("posts"),
	}
}

var _ contract.IPostRepository = (*PostRepository)(nil)

// CreatePost inserts a new post document.
func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	_, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetPostBySlug retrieves a single post by its slug.
func (r *PostRepository) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var post entity.Post
	filter := bson.M{"slug": slug}

	err := r.collection.FindOne(ctx, filter).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return &post, nil
}

// GetPublishedPosts returns one page of published posts, newest first,
// together with the total published count.
func (r *PostRepository) GetPublishedPosts(ctx context.Context, page, pageSize int) ([]entity.Post, int, error) {
	filter := bson.M{"published": true}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []entity.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, int(total), nil
}

// GetUntaggedPosts returns every post without an auto_tagged field.
// The filter deliberately ignores any caller-side force/limit options:
// a post processed once is never re-selected.
func (r *PostRepository) GetUntaggedPosts(ctx context.Context) ([]entity.Post, error) {
	filter := bson.M{"auto_tagged": bson.M{"$exists": false}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve untagged posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []entity.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode untagged posts: %w", err)
	}
	return posts, nil
}

// ApplyTags writes the tag references and the auto-tagged markers onto a
// post in a single update.
func (r *PostRepository) ApplyTags(ctx context.Context, postID string, tagIDs []string, taggedAt time.Time) error {
	filter := bson.M{"_id": postID}
	update := bson.M{"$set": bson.M{
		"tags":           tagIDs,
		"auto_tagged":    true,
		"auto_tagged_at": taggedAt,
		"updated_at":     taggedAt,
	}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to apply tags to post: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPostNotFound
	}
	return nil
}

// GetPostStats aggregates tagging coverage counts.
func (r *PostRepository) GetPostStats(ctx context.Context) (*contract.PostStats, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	tagged, err := r.collection.CountDocuments(ctx, bson.M{"tags.0": bson.M{"$exists": true}})
	if err != nil {
		return nil, fmt.Errorf("failed to count tagged posts: %w", err)
	}
	autoTagged, err := r.collection.CountDocuments(ctx, bson.M{"auto_tagged": true})
	if err != nil {
		return nil, fmt.Errorf("failed to count auto-tagged posts: %w", err)
	}

	return &contract.PostStats{
		TotalPosts:      total,
		TaggedPosts:     tagged,
		AutoTaggedPosts: autoTagged,
		UntaggedPosts:   total - tagged,
	}, nil
}
