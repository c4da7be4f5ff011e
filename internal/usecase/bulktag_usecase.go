package usecase

import (
	"context"
	"time"

	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/metrics"
	"github.com/ramentaro/ramen-taro-api/internal/tagging"
	usecasecontract "github.com/ramentaro/ramen-taro-api/internal/usecase/contract"
)

// IBulkTagUseCase defines the batch auto-tagging business logic.
type IBulkTagUseCase interface {
	Run(ctx context.Context) BulkTagReport
	Stats(ctx context.Context) (*BulkTagStats, error)
}

// BulkTagReport is the best-effort tally of one bulk run.
type BulkTagReport struct {
	Success int
	Failed  int
}

// BulkTagStats aggregates tagging coverage across the content store.
type BulkTagStats struct {
	TotalPosts      int64 `json:"totalPosts"`
	TaggedPosts     int64 `json:"taggedPosts"`
	AutoTaggedPosts int64 `json:"autoTaggedPosts"`
	UntaggedPosts   int64 `json:"untaggedPosts"`
	TotalTags       int64 `json:"totalTags"`
}

// BulkTagUseCaseImpl implements IBulkTagUseCase.
type BulkTagUseCaseImpl struct {
	postRepo     contract.IPostRepository
	tagRepo      contract.ITagRepository
	suggestionUC ISuggestionUseCase
	logger       usecasecontract.IAppLogger
}

// NewBulkTagUseCase creates a new instance of BulkTagUseCaseImpl.
func NewBulkTagUseCase(postRepo contract.IPostRepository, tagRepo contract.ITagRepository, suggestionUC ISuggestionUseCase, logger usecasecontract.IAppLogger) *BulkTagUseCaseImpl {
	return &BulkTagUseCaseImpl{
		postRepo:     postRepo,
		tagRepo:      tagRepo,
		suggestionUC: suggestionUC,
		logger:       logger,
	}
}

var _ IBulkTagUseCase = (*BulkTagUseCaseImpl)(nil)

// Run processes every post that has no auto_tagged field, strictly
// sequentially so concurrent suggestion runs can't race on tag
// creation. One bad post never aborts the batch: its failure is
// counted and the run continues. The batch itself never errors — a
// selection failure just yields an empty tally.
func (uc *BulkTagUseCaseImpl) Run(ctx context.Context) BulkTagReport {
	report := BulkTagReport{}

	posts, err := uc.postRepo.GetUntaggedPosts(ctx)
	if err != nil {
		uc.logger.Errorf("bulk auto-tag: failed to fetch untagged posts: %v", err)
		return report
	}

	uc.logger.Infof("bulk auto-tag: processing %d untagged posts", len(posts))

	for _, post := range posts {
		tagged, err := uc.tagPost(ctx, &post)
		if err != nil {
			uc.logger.Errorf("bulk auto-tag: post %s failed: %v", post.ID, err)
			report.Failed++
			metrics.BulkTaggedPosts.WithLabelValues("failed").Inc()
			continue
		}
		if tagged {
			report.Success++
			metrics.BulkTaggedPosts.WithLabelValues("success").Inc()
		}
		// Posts where nothing resolved are left untouched and counted
		// on neither side.
	}

	return report
}

// tagPost runs the suggestion pipeline for one post and writes the
// result in a single patch. It reports whether the post was tagged.
func (uc *BulkTagUseCaseImpl) tagPost(ctx context.Context, post *entity.Post) (bool, error) {
	content := tagging.ContentToAnalyze{
		Title:   post.Title,
		Excerpt: post.Excerpt,
		Body:    tagging.FlattenBlocks(post.Body),
	}

	suggestion, err := uc.suggestionUC.Suggest(ctx, content, SuggestionOptions{
		MaxTags:        5,
		MinConfidence:  0.4,
		IncludeNewTags: true,
	})
	if err != nil {
		return false, err
	}

	// New names are created for future runs; references were resolved
	// before creation, so only pre-existing tags attach to this post.
	if len(suggestion.NewTags) > 0 {
		if _, err := uc.suggestionUC.CreateTags(ctx, suggestion.NewTags); err != nil {
			return false, err
		}
	}

	tagIDs := make([]string, 0, len(suggestion.TagReferences))
	for _, ref := range suggestion.TagReferences {
		tagIDs = append(tagIDs, ref.ID)
	}
	if len(tagIDs) == 0 {
		return false, nil
	}

	if err := uc.postRepo.ApplyTags(ctx, post.ID, tagIDs, time.Now()); err != nil {
		return false, err
	}
	return true, nil
}

// Stats returns tagging coverage counts for the status endpoint.
func (uc *BulkTagUseCaseImpl) Stats(ctx context.Context) (*BulkTagStats, error) {
	postStats, err := uc.postRepo.GetPostStats(ctx)
	if err != nil {
		return nil, err
	}
	totalTags, err := uc.tagRepo.CountTags(ctx)
	if err != nil {
		return nil, err
	}
	return &BulkTagStats{
		TotalPosts:      postStats.TotalPosts,
		TaggedPosts:     postStats.TaggedPosts,
		AutoTaggedPosts: postStats.AutoTaggedPosts,
		UntaggedPosts:   postStats.UntaggedPosts,
		TotalTags:       totalTags,
	}, nil
}
