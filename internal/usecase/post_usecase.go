package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
	"github.com/ramentaro/ramen-taro-api/internal/tagging"
	usecasecontract "github.com/ramentaro/ramen-taro-api/internal/usecase/contract"
)

// IPostUseCase defines post-related business logic.
type IPostUseCase interface {
	CreatePost(ctx context.Context, title, slug, excerpt string, body []entity.Block, published bool) (*entity.Post, error)
	GetPosts(ctx context.Context, page, pageSize int) (posts []entity.Post, totalCount, currentPage, totalPages int, err error)
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
}

// PostUseCaseImpl implements IPostUseCase.
type PostUseCaseImpl struct {
	postRepo contract.IPostRepository
	uuidgen  contract.IUUIDGenerator
	logger   usecasecontract.IAppLogger
}

// NewPostUseCase creates a new instance of PostUseCaseImpl.
func NewPostUseCase(postRepo contract.IPostRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *PostUseCaseImpl {
	return &PostUseCaseImpl{
		postRepo: postRepo,
		uuidgen:  uuidgen,
		logger:   logger,
	}
}

var _ IPostUseCase = (*PostUseCaseImpl)(nil)

// CreatePost stores a new post. When no slug is supplied one is derived
// from the title with a uuid suffix to keep it unique.
func (uc *PostUseCaseImpl) CreatePost(ctx context.Context, title, slug, excerpt string, body []entity.Block, published bool) (*entity.Post, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if slug == "" {
		slug = tagging.Slugify(title) + "-" + uc.uuidgen.NewUUID()
	}

	now := time.Now()
	post := &entity.Post{
		ID:        uc.uuidgen.NewUUID(),
		Title:     title,
		Slug:      slug,
		Excerpt:   excerpt,
		Body:      body,
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		uc.logger.Errorf("failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetPosts returns one page of published posts, newest first.
func (uc *PostUseCaseImpl) GetPosts(ctx context.Context, page, pageSize int) ([]entity.Post, int, int, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	posts, total, err := uc.postRepo.GetPublishedPosts(ctx, page, pageSize)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("failed to get posts: %w", err)
	}

	totalPages := (total + pageSize - 1) / pageSize
	return posts, total, page, totalPages, nil
}

// GetPostBySlug returns a single post by slug.
func (uc *PostUseCaseImpl) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	post, err := uc.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return post, nil
}
