package mocks

import (
	"context"
	"errors"

	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
)

// MockPostUsecase is a mock implementation of the post usecase
type MockPostUsecase struct {
	// Control mock behavior
	ShouldFailCreatePost bool
	ShouldFailGetPosts   bool
	PostNotFound         bool

	// Return values
	MockPost entity.Post
}

// Ensure MockPostUsecase implements the correct interface for handler.NewPostHandler
var _ usecase.IPostUseCase = (*MockPostUsecase)(nil)

func NewMockPostUsecase() *MockPostUsecase {
	return &MockPostUsecase{
		MockPost: entity.Post{
			ID:        "mock-post-id",
			Title:     "ハムカップ日記",
			Slug:      "ハムカップ日記-mock",
			Excerpt:   "テスト用の記事です。",
			Published: true,
		},
	}
}

func (m *MockPostUsecase) CreatePost(ctx context.Context, title, slug, excerpt string, body []entity.Block, published bool) (*entity.Post, error) {
	if m.ShouldFailCreatePost {
		return nil, errors.New("post creation failed")
	}
	post := m.MockPost
	post.Title = title
	if slug != "" {
		post.Slug = slug
	}
	return &post, nil
}

func (m *MockPostUsecase) GetPosts(ctx context.Context, page, pageSize int) ([]entity.Post, int, int, int, error) {
	if m.ShouldFailGetPosts {
		return nil, 0, 0, 0, errors.New("failed to get posts")
	}
	return []entity.Post{m.MockPost}, 1, page, 1, nil
}

func (m *MockPostUsecase) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	if m.PostNotFound {
		return nil, contract.ErrPostNotFound
	}
	post := m.MockPost
	post.Slug = slug
	return &post, nil
}

// MockAuthUsecase is a mock implementation of the auth usecase
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailLogin bool

	// Return values
	MockAccessToken string
}

// Ensure MockAuthUsecase implements the correct interface for handler.NewAuthHandler
var _ usecase.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockAuthUsecase) Login(ctx context.Context, password string) (string, error) {
	if m.ShouldFailLogin {
		return "", usecase.ErrInvalidCredentials
	}
	return m.MockAccessToken, nil
}
