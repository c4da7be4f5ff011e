package usecase

import (
	"context"
	"errors"

	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/metrics"
	"github.com/ramentaro/ramen-taro-api/internal/tagging"
	usecasecontract "github.com/ramentaro/ramen-taro-api/internal/usecase/contract"
)

// ISuggestionUseCase defines the tag suggestion business logic.
type ISuggestionUseCase interface {
	Suggest(ctx context.Context, content tagging.ContentToAnalyze, opts SuggestionOptions) (*SuggestionResult, error)
	CreateTags(ctx context.Context, names []string) ([]entity.TagRef, error)
	InvalidateVocabularyCache(ctx context.Context) error
}

// SuggestionOptions controls a single suggestion run. Zero values for
// MaxTags and MinConfidence fall back to the defaults.
type SuggestionOptions struct {
	MaxTags        int
	MinConfidence  float64
	IncludeNewTags bool
}

// DefaultSuggestionOptions returns the options used by the single-item
// suggestion endpoint when the caller specifies none.
func DefaultSuggestionOptions() SuggestionOptions {
	return SuggestionOptions{
		MaxTags:        6,
		MinConfidence:  0.3,
		IncludeNewTags: true,
	}
}

// SuggestionResult is the outcome of one suggestion run.
//
// TagReferences only holds the suggested names that resolved to stored
// tags at suggestion time; brand-new names resolve only after a
// CreateTags call, so len(TagReferences) <= len(SuggestedTags).
type SuggestionResult struct {
	SuggestedTags []string
	Confidence    float64
	ExistingTags  []string
	NewTags       []string
	TagReferences []entity.TagRef
	LowConfidence bool
}

// SuggestionUseCaseImpl implements ISuggestionUseCase.
type SuggestionUseCaseImpl struct {
	tagRepo    contract.ITagRepository
	vocabCache contract.ITagVocabularyCache
	uuidgen    contract.IUUIDGenerator
	logger     usecasecontract.IAppLogger
}

// NewSuggestionUseCase creates a new instance of SuggestionUseCaseImpl.
func NewSuggestionUseCase(tagRepo contract.ITagRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *SuggestionUseCaseImpl {
	return &SuggestionUseCaseImpl{
		tagRepo: tagRepo,
		uuidgen: uuidgen,
		logger:  logger,
	}
}

var _ ISuggestionUseCase = (*SuggestionUseCaseImpl)(nil)

// SetVocabularyCache injects the optional vocabulary cache.
func (uc *SuggestionUseCaseImpl) SetVocabularyCache(cache contract.ITagVocabularyCache) {
	uc.vocabCache = cache
}

// fetchVocabulary returns a snapshot of all stored tag titles. A store
// failure degrades to an empty vocabulary so suggestion keeps working;
// every candidate then counts as new.
func (uc *SuggestionUseCaseImpl) fetchVocabulary(ctx context.Context) []string {
	if uc.vocabCache != nil {
		if titles, ok, err := uc.vocabCache.GetVocabulary(ctx); err == nil && ok {
			return titles
		} else if err != nil {
			uc.logger.Warnf("vocabulary cache read failed: %v", err)
		}
	}

	tags, err := uc.tagRepo.GetAllTags(ctx)
	if err != nil {
		uc.logger.Warnf("failed to fetch tag vocabulary, continuing with empty vocabulary: %v", err)
		return []string{}
	}

	titles := make([]string, 0, len(tags))
	for _, tag := range tags {
		titles = append(titles, tag.Title)
	}

	if uc.vocabCache != nil {
		if err := uc.vocabCache.SetVocabulary(ctx, titles); err != nil {
			uc.logger.Warnf("vocabulary cache write failed: %v", err)
		}
	}
	return titles
}

// Suggest analyzes content against the live vocabulary and returns the
// final suggestion list with resolved tag references. Confidence below
// the configured minimum is surfaced as a flag, never as an error.
func (uc *SuggestionUseCaseImpl) Suggest(ctx context.Context, content tagging.ContentToAnalyze, opts SuggestionOptions) (*SuggestionResult, error) {
	if opts.MaxTags <= 0 {
		opts.MaxTags = 6
	}
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = 0.3
	}

	vocabulary := uc.fetchVocabulary(ctx)
	analysis := tagging.AnalyzeContent(content, vocabulary)

	lowConfidence := analysis.Confidence < opts.MinConfidence
	if lowConfidence {
		uc.logger.Warnf("tag suggestion confidence below threshold: %.2f < %.2f", analysis.Confidence, opts.MinConfidence)
	}

	final := analysis.SuggestedTags
	if !opts.IncludeNewTags {
		final = analysis.ExistingTags
	}
	if len(final) > opts.MaxTags {
		final = final[:opts.MaxTags]
	}

	references := []entity.TagRef{}
	for _, title := range final {
		tag, err := uc.tagRepo.GetTagByTitle(ctx, title)
		if err != nil {
			if !errors.Is(err, contract.ErrTagNotFound) {
				uc.logger.Errorf("failed to resolve tag reference for %q: %v", title, err)
			}
			continue
		}
		references = append(references, entity.TagRef{ID: tag.ID, Title: tag.Title})
	}

	metrics.SuggestionRequests.Inc()

	return &SuggestionResult{
		SuggestedTags: final,
		Confidence:    analysis.Confidence,
		ExistingTags:  analysis.ExistingTags,
		NewTags:       analysis.NewTags,
		TagReferences: references,
		LowConfidence: lowConfidence,
	}, nil
}

// CreateTags resolves each name to an existing tag by exact title or
// creates a new one. Per-name failures are logged and skipped; the
// returned slice holds whatever succeeded.
func (uc *SuggestionUseCaseImpl) CreateTags(ctx context.Context, names []string) ([]entity.TagRef, error) {
	refs := make([]entity.TagRef, 0, len(names))
	created := 0

	for _, name := range names {
		existing, err := uc.tagRepo.GetTagByTitle(ctx, name)
		if err == nil {
			refs = append(refs, entity.TagRef{ID: existing.ID, Title: existing.Title})
			continue
		}
		if !errors.Is(err, contract.ErrTagNotFound) {
			uc.logger.Errorf("tag lookup failed for %q: %v", name, err)
			continue
		}

		tag := &entity.Tag{
			ID:    uc.uuidgen.NewUUID(),
			Title: name,
			Slug:  tagging.Slugify(name),
			Color: entity.DefaultTagColor,
		}
		if err := uc.tagRepo.CreateTag(ctx, tag); err != nil {
			uc.logger.Errorf("failed to create tag %q: %v", name, err)
			continue
		}
		metrics.TagsCreated.Inc()
		created++
		refs = append(refs, entity.TagRef{ID: tag.ID, Title: tag.Title})
	}

	if created > 0 {
		if err := uc.InvalidateVocabularyCache(ctx); err != nil {
			uc.logger.Warnf("vocabulary cache invalidation failed: %v", err)
		}
	}
	return refs, nil
}

// InvalidateVocabularyCache drops the cached vocabulary snapshot so the
// next suggestion re-reads the store. No-op without a cache.
func (uc *SuggestionUseCaseImpl) InvalidateVocabularyCache(ctx context.Context) error {
	if uc.vocabCache == nil {
		return nil
	}
	return uc.vocabCache.InvalidateVocabulary(ctx)
}
