package mocks

import (
	"context"
	"errors"

	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
	"github.com/ramentaro/ramen-taro-api/internal/tagging"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
)

// MockSuggestionUsecase is a mock implementation of the suggestion usecase
type MockSuggestionUsecase struct {
	// Control mock behavior
	ShouldFailSuggest    bool
	ShouldFailCreateTags bool
	ShouldFailInvalidate bool

	// Return values
	MockResult      usecase.SuggestionResult
	MockCreatedRefs []entity.TagRef

	// Recorded calls
	LastOptions     usecase.SuggestionOptions
	LastCreateNames []string
	CreateTagsCalls int
	InvalidateCalls int
}

// Ensure MockSuggestionUsecase implements the correct interface for handler.NewTaggingHandler
var _ usecase.ISuggestionUseCase = (*MockSuggestionUsecase)(nil)

func NewMockSuggestionUsecase() *MockSuggestionUsecase {
	return &MockSuggestionUsecase{
		MockResult: usecase.SuggestionResult{
			SuggestedTags: []string{"HamCup", "アート", "新タグ"},
			Confidence:    0.9,
			ExistingTags:  []string{"HamCup", "アート"},
			NewTags:       []string{"新タグ"},
			TagReferences: []entity.TagRef{
				{ID: "mock-tag-1", Title: "HamCup"},
				{ID: "mock-tag-2", Title: "アート"},
			},
		},
		MockCreatedRefs: []entity.TagRef{
			{ID: "mock-tag-3", Title: "新タグ"},
		},
	}
}

func (m *MockSuggestionUsecase) Suggest(ctx context.Context, content tagging.ContentToAnalyze, opts usecase.SuggestionOptions) (*usecase.SuggestionResult, error) {
	m.LastOptions = opts
	if m.ShouldFailSuggest {
		return nil, errors.New("suggestion failed")
	}
	result := m.MockResult
	return &result, nil
}

func (m *MockSuggestionUsecase) CreateTags(ctx context.Context, names []string) ([]entity.TagRef, error) {
	m.CreateTagsCalls++
	m.LastCreateNames = names
	if m.ShouldFailCreateTags {
		return nil, errors.New("tag creation failed")
	}
	return m.MockCreatedRefs, nil
}

func (m *MockSuggestionUsecase) InvalidateVocabularyCache(ctx context.Context) error {
	m.InvalidateCalls++
	if m.ShouldFailInvalidate {
		return errors.New("cache invalidation failed")
	}
	return nil
}

// MockBulkTagUsecase is a mock implementation of the bulk tagging usecase
type MockBulkTagUsecase struct {
	// Control mock behavior
	ShouldFailStats bool

	// Return values
	MockReport usecase.BulkTagReport
	MockStats  usecase.BulkTagStats

	// Recorded calls
	RunCalls int
}

// Ensure MockBulkTagUsecase implements the correct interface for handler.NewTaggingHandler
var _ usecase.IBulkTagUseCase = (*MockBulkTagUsecase)(nil)

func NewMockBulkTagUsecase() *MockBulkTagUsecase {
	return &MockBulkTagUsecase{
		MockReport: usecase.BulkTagReport{Success: 2, Failed: 1},
		MockStats: usecase.BulkTagStats{
			TotalPosts:      10,
			TaggedPosts:     7,
			AutoTaggedPosts: 5,
			UntaggedPosts:   3,
			TotalTags:       12,
		},
	}
}

func (m *MockBulkTagUsecase) Run(ctx context.Context) usecase.BulkTagReport {
	m.RunCalls++
	return m.MockReport
}

func (m *MockBulkTagUsecase) Stats(ctx context.Context) (*usecase.BulkTagStats, error) {
	if m.ShouldFailStats {
		return nil, errors.New("stats unavailable")
	}
	stats := m.MockStats
	return &stats, nil
}
