package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
)

const vocabularyKey = "tags:vocabulary"

// TagCacheStore caches the tag vocabulary snapshot in Redis.
type TagCacheStore struct {
	rdb      *redis.Client
	vocabTTL time.Duration
}

// NewTagCacheStore creates a new TagCacheStore with the given snapshot TTL.
func NewTagCacheStore(rdb *redis.Client, vocabTTL time.Duration) *TagCacheStore {
	if vocabTTL <= 0 {
		vocabTTL = 10 * time.Minute
	}
	return &TagCacheStore{
		rdb:      rdb,
		vocabTTL: vocabTTL,
	}
}

var _ contract.ITagVocabularyCache = (*TagCacheStore)(nil)

// GetVocabulary returns the cached tag titles if present.
func (c *TagCacheStore) GetVocabulary(ctx context.Context) ([]string, bool, error) {
	b, err := c.rdb.Get(ctx, vocabularyKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var titles []string
	if err := json.Unmarshal(b, &titles); err != nil {
		// Corrupt entry, treat as a miss.
		return nil, false, nil
	}
	return titles, true, nil
}

// SetVocabulary stores the tag titles with the configured TTL.
func (c *TagCacheStore) SetVocabulary(ctx context.Context, titles []string) error {
	data, err := json.Marshal(titles)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, vocabularyKey, data, c.vocabTTL).Err()
}

// InvalidateVocabulary drops the cached snapshot.
func (c *TagCacheStore) InvalidateVocabulary(ctx context.Context) error {
	return c.rdb.Del(ctx, vocabularyKey).Err()
}
