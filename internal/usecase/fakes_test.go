package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
)

// noopLogger satisfies the logger contract without output.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{})   {}
func (noopLogger) Infof(string, ...interface{})    {}
func (noopLogger) Warnf(string, ...interface{})    {}
func (noopLogger) Warningf(string, ...interface{}) {}
func (noopLogger) Errorf(string, ...interface{})   {}
func (noopLogger) Fatalf(string, ...interface{})   {}

// seqUUID issues deterministic ids.
type seqUUID struct {
	n int
}

func (g *seqUUID) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

// fakeTagRepo is an in-memory ITagRepository.
type fakeTagRepo struct {
	byTitle     map[string]*entity.Tag
	order       []string
	failGetAll  bool
	failLookups bool
	failCreates map[string]bool
	createCalls int
}

func newFakeTagRepo(titles ...string) *fakeTagRepo {
	repo := &fakeTagRepo{
		byTitle:     make(map[string]*entity.Tag),
		failCreates: make(map[string]bool),
	}
	for i, title := range titles {
		repo.byTitle[title] = &entity.Tag{
			ID:    fmt.Sprintf("tag-%d", i+1),
			Title: title,
			Slug:  title,
			Color: entity.DefaultTagColor,
		}
		repo.order = append(repo.order, title)
	}
	return repo
}

func (r *fakeTagRepo) CreateTag(ctx context.Context, tag *entity.Tag) error {
	r.createCalls++
	if r.failCreates[tag.Title] {
		return errors.New("simulated create failure")
	}
	if _, exists := r.byTitle[tag.Title]; exists {
		return errors.New("tag with this title or slug already exists")
	}
	tag.CreatedAt = time.Now()
	r.byTitle[tag.Title] = tag
	r.order = append(r.order, tag.Title)
	return nil
}

func (r *fakeTagRepo) GetTagByTitle(ctx context.Context, title string) (*entity.Tag, error) {
	if r.failLookups {
		return nil, errors.New("simulated lookup failure")
	}
	if tag, ok := r.byTitle[title]; ok {
		return tag, nil
	}
	return nil, contract.ErrTagNotFound
}

func (r *fakeTagRepo) GetAllTags(ctx context.Context) ([]*entity.Tag, error) {
	if r.failGetAll {
		return nil, errors.New("simulated store failure")
	}
	tags := make([]*entity.Tag, 0, len(r.order))
	for _, title := range r.order {
		tags = append(tags, r.byTitle[title])
	}
	return tags, nil
}

func (r *fakeTagRepo) CountTags(ctx context.Context) (int64, error) {
	return int64(len(r.order)), nil
}

// fakeVocabCache is an in-memory ITagVocabularyCache.
type fakeVocabCache struct {
	titles        []string
	primed        bool
	sets          int
	invalidations int
}

func (c *fakeVocabCache) GetVocabulary(ctx context.Context) ([]string, bool, error) {
	if !c.primed {
		return nil, false, nil
	}
	return c.titles, true, nil
}

func (c *fakeVocabCache) SetVocabulary(ctx context.Context, titles []string) error {
	c.titles = titles
	c.primed = true
	c.sets++
	return nil
}

func (c *fakeVocabCache) InvalidateVocabulary(ctx context.Context) error {
	c.titles = nil
	c.primed = false
	c.invalidations++
	return nil
}

// fakePostRepo is an in-memory IPostRepository.
type fakePostRepo struct {
	posts      []*entity.Post
	failSelect bool
	failApply  map[string]bool
	applyCalls []string
}

func newFakePostRepo(posts ...*entity.Post) *fakePostRepo {
	return &fakePostRepo{
		posts:     posts,
		failApply: make(map[string]bool),
	}
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *entity.Post) error {
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakePostRepo) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	for _, post := range r.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, contract.ErrPostNotFound
}

func (r *fakePostRepo) GetPublishedPosts(ctx context.Context, page, pageSize int) ([]entity.Post, int, error) {
	published := []entity.Post{}
	for _, post := range r.posts {
		if post.Published {
			published = append(published, *post)
		}
	}
	return published, len(published), nil
}

func (r *fakePostRepo) GetUntaggedPosts(ctx context.Context) ([]entity.Post, error) {
	if r.failSelect {
		return nil, errors.New("simulated selection failure")
	}
	untagged := []entity.Post{}
	for _, post := range r.posts {
		if !post.AutoTagged {
			untagged = append(untagged, *post)
		}
	}
	return untagged, nil
}

func (r *fakePostRepo) ApplyTags(ctx context.Context, postID string, tagIDs []string, taggedAt time.Time) error {
	r.applyCalls = append(r.applyCalls, postID)
	if r.failApply[postID] {
		return errors.New("simulated patch failure")
	}
	for _, post := range r.posts {
		if post.ID == postID {
			post.Tags = tagIDs
			post.AutoTagged = true
			post.AutoTaggedAt = &taggedAt
			return nil
		}
	}
	return contract.ErrPostNotFound
}

func (r *fakePostRepo) GetPostStats(ctx context.Context) (*contract.PostStats, error) {
	stats := &contract.PostStats{}
	for _, post := range r.posts {
		stats.TotalPosts++
		if len(post.Tags) > 0 {
			stats.TaggedPosts++
		} else {
			stats.UntaggedPosts++
		}
		if post.AutoTagged {
			stats.AutoTaggedPosts++
		}
	}
	return stats, nil
}
