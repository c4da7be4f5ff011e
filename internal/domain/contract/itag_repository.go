package contract

import (
	"context"
	"errors"

	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
)

// ErrTagNotFound is returned by lookups when no tag matches.
var ErrTagNotFound = errors.New("tag not found")

// ITagRepository defines the persistence operations for tags.
type ITagRepository interface {
	CreateTag(ctx context.Context, tag *entity.Tag) error
	GetTagByTitle(ctx context.Context, title string) (*entity.Tag, error)
	GetAllTags(ctx context.Context) ([]*entity.Tag, error)
	CountTags(ctx context.Context) (int64, error)
}
