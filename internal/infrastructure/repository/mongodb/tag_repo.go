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
)

// TagRepository represents the MongoDB implementation of the ITagRepository interface.
type TagRepository struct {
	collection *mongo.Collection
}

// NewTagRepository creates and returns a new TagRepository instance.
func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{
		collection: db.Collection("tags"),
	}
}

var _ contract.ITagRepository = (*TagRepository)(nil)

// CreateTag inserts a new tag record into the database.
func (r *TagRepository) CreateTag(ctx context.Context, tag *entity.Tag) error {
	tag.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, tag)
	if err != nil {
		var writeException mongo.WriteException
		if errors.As(err, &writeException) {
			for _, e := range writeException.WriteErrors {
				if e.Code == 11000 {
					return errors.New("tag with this title or slug already exists")
				}
			}
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// GetTagByTitle retrieves a single tag by its exact title.
func (r *TagRepository) GetTagByTitle(ctx context.Context, title string) (*entity.Tag, error) {
	var tag entity.Tag
	filter := bson.M{"title": title}

	err := r.collection.FindOne(ctx, filter).Decode(&tag)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to retrieve tag by title: %w", err)
	}
	return &tag, nil
}

// GetAllTags retrieves all tag records from the database.
func (r *TagRepository) GetAllTags(ctx context.Context) ([]*entity.Tag, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tags: %w", err)
	}
	defer cursor.Close(ctx)

	var tags []*entity.Tag
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}

// CountTags returns the total number of stored tags.
func (r *TagRepository) CountTags(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}
	return count, nil
}
