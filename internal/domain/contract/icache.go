package contract

import "context"

// ITagVocabularyCache caches the full set of tag titles so suggestion
// requests don't hit the content store for every call. The cached value
// is a snapshot; staleness is bounded by the store TTL and by explicit
// invalidation after tag creation.
type ITagVocabularyCache interface {
	GetVocabulary(ctx context.Context) ([]string, bool, error)
	SetVocabulary(ctx context.Context, titles []string) error
	InvalidateVocabulary(ctx context.Context) error
}
