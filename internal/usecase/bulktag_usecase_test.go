package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
)

func blocks(texts ...string) []entity.Block {
	result := make([]entity.Block, 0, len(texts))
	for _, text := range texts {
		result = append(result, entity.Block{
			Type:     "block",
			Children: []entity.Span{{Text: text}},
		})
	}
	return result
}

func newBulkUC(postRepo *fakePostRepo, tagRepo *fakeTagRepo) *usecase.BulkTagUseCaseImpl {
	suggestionUC := usecase.NewSuggestionUseCase(tagRepo, &seqUUID{}, noopLogger{})
	return usecase.NewBulkTagUseCase(postRepo, tagRepo, suggestionUC, noopLogger{})
}

func TestBulkRun_TagsOnlyPostsWithResolvedTags(t *testing.T) {
	tagRepo := newFakeTagRepo("NFT", "アート")
	postRepo := newFakePostRepo(
		&entity.Post{
			ID:    "post-1",
			Title: "NFTアートの始め方をやさしく解説",
			Body:  blocks("NFTアートを初めて出品したときの手順をまとめました。"),
		},
		&entity.Post{
			ID:    "post-2",
			Title: "アートとイラストの練習記録",
			Body:  blocks("毎日イラストを描いて上達を目指しています。"),
		},
		&entity.Post{
			ID:    "post-3",
			Title: "今日の昼ごはん",
			Body:  blocks("近所でラーメンを食べました。"),
		},
	)

	report := newBulkUC(postRepo, tagRepo).Run(context.Background())

	assert.Equal(t, 2, report.Success)
	assert.Equal(t, 0, report.Failed)

	// Only the posts with resolved references were patched.
	assert.True(t, postRepo.posts[0].AutoTagged)
	assert.True(t, postRepo.posts[1].AutoTagged)
	assert.False(t, postRepo.posts[2].AutoTagged)
	assert.Empty(t, postRepo.posts[2].Tags)
}

func TestBulkRun_SkipsAlreadyProcessedPosts(t *testing.T) {
	tagRepo := newFakeTagRepo("NFT")
	postRepo := newFakePostRepo(
		&entity.Post{
			ID:         "post-done",
			Title:      "NFTの話",
			AutoTagged: true,
			Tags:       []string{"tag-1"},
		},
		&entity.Post{
			ID:    "post-new",
			Title: "NFTアートの最新動向まとめ",
			Body:  blocks("NFTマーケットの動きを追いかけた記録です。"),
		},
	)

	report := newBulkUC(postRepo, tagRepo).Run(context.Background())

	assert.Equal(t, 1, report.Success)
	assert.NotContains(t, postRepo.applyCalls, "post-done")
}

func TestBulkRun_NewTagsCreatedButNotAttached(t *testing.T) {
	// Empty vocabulary: every candidate is new, so nothing resolves for
	// the triggering post even though the tags get created for later
	// runs.
	tagRepo := newFakeTagRepo()
	postRepo := newFakePostRepo(
		&entity.Post{
			ID:    "post-1",
			Title: "NFTアートに挑戦した体験談",
			Body:  blocks("初心者がNFTアートを出品するまでの記録です。"),
		},
	)

	report := newBulkUC(postRepo, tagRepo).Run(context.Background())

	assert.Equal(t, 0, report.Success)
	assert.Equal(t, 0, report.Failed)
	assert.False(t, postRepo.posts[0].AutoTagged)

	// The new names now exist in the store.
	count, err := tagRepo.CountTags(context.Background())
	require.NoError(t, err)
	assert.Greater(t, count, int64(0))
}

func TestBulkRun_PerPostFailureIsolation(t *testing.T) {
	tagRepo := newFakeTagRepo("NFT")
	postRepo := newFakePostRepo(
		&entity.Post{
			ID:    "post-1",
			Title: "NFTのマーケット調査ノート",
			Body:  blocks("NFTの売買データを観察した記録です。"),
		},
		&entity.Post{
			ID:    "post-2",
			Title: "NFTコレクションの作り方",
			Body:  blocks("NFTコレクションを立ち上げた手順の紹介です。"),
		},
	)
	postRepo.failApply["post-1"] = true

	report := newBulkUC(postRepo, tagRepo).Run(context.Background())

	assert.Equal(t, 1, report.Success)
	assert.Equal(t, 1, report.Failed)
	assert.True(t, postRepo.posts[1].AutoTagged)
}

func TestBulkRun_SelectionFailureYieldsEmptyTally(t *testing.T) {
	tagRepo := newFakeTagRepo("NFT")
	postRepo := newFakePostRepo()
	postRepo.failSelect = true

	report := newBulkUC(postRepo, tagRepo).Run(context.Background())

	assert.Equal(t, usecase.BulkTagReport{}, report)
}

func TestBulkStats_AggregatesPostAndTagCounts(t *testing.T) {
	tagRepo := newFakeTagRepo("NFT", "アート", "日記")
	postRepo := postRepoWithMixedPosts()

	stats, err := newBulkUC(postRepo, tagRepo).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalPosts)
	assert.Equal(t, int64(1), stats.TaggedPosts)
	assert.Equal(t, int64(1), stats.AutoTaggedPosts)
	assert.Equal(t, int64(2), stats.UntaggedPosts)
	assert.Equal(t, int64(3), stats.TotalTags)
}

func postRepoWithMixedPosts() *fakePostRepo {
	return newFakePostRepo(
		&entity.Post{ID: "p1", Title: "a", Tags: []string{"tag-1"}, AutoTagged: true},
		&entity.Post{ID: "p2", Title: "b"},
		&entity.Post{ID: "p3", Title: "c"},
	)
}
