package dto

import (
	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
)

// AnalyzeOptions mirrors the options object of the analyze endpoint.
// IncludeNewTags is a pointer so an absent field defaults to true.
type AnalyzeOptions struct {
	MaxTags        int     `json:"maxTags"`
	MinConfidence  float64 `json:"minConfidence"`
	IncludeNewTags *bool   `json:"includeNewTags"`
	CreateNewTags  bool    `json:"createNewTags"`
}

// AnalyzeContentRequest is the body of the single-item suggestion endpoint.
type AnalyzeContentRequest struct {
	Title   string          `json:"title"`
	Excerpt string          `json:"excerpt"`
	Content string          `json:"content"`
	Options *AnalyzeOptions `json:"options"`
}

// TagReferenceResponse is a resolved tag reference.
type TagReferenceResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// SuggestionsResponse is the suggestion block of the analyze response.
type SuggestionsResponse struct {
	Tags          []string               `json:"tags"`
	Confidence    float64                `json:"confidence"`
	ExistingTags  []string               `json:"existingTags"`
	NewTags       []string               `json:"newTags"`
	TagReferences []TagReferenceResponse `json:"tagReferences"`
}

// AnalyzeMeta summarizes an analyze response.
type AnalyzeMeta struct {
	TotalSuggested int     `json:"totalSuggested"`
	ExistingCount  int     `json:"existingCount"`
	NewCount       int     `json:"newCount"`
	Confidence     float64 `json:"confidence"`
	LowConfidence  bool    `json:"lowConfidence"`
	Timestamp      string  `json:"timestamp"`
}

// AnalyzeContentResponse is the full analyze endpoint response.
type AnalyzeContentResponse struct {
	Suggestions SuggestionsResponse    `json:"suggestions"`
	CreatedTags []TagReferenceResponse `json:"createdTags"`
	Meta        AnalyzeMeta            `json:"meta"`
}

// BulkAutoTagRequest is the body of the bulk endpoint. Both fields are
// accepted for compatibility but the selection query honors neither:
// previously processed posts are never re-selected and no cap applies.
type BulkAutoTagRequest struct {
	Force    bool `json:"force"`
	MaxPosts int  `json:"maxPosts"`
}

// BulkResult is the tally block of the bulk endpoint response.
type BulkResult struct {
	Processed   int `json:"processed"`
	Successful  int `json:"successful"`
	Failed      int `json:"failed"`
	SuccessRate int `json:"successRate"`
}

// BulkAutoTagResponse is the bulk endpoint response.
type BulkAutoTagResponse struct {
	Success   bool       `json:"success"`
	Result    BulkResult `json:"result"`
	Message   string     `json:"message"`
	Timestamp string     `json:"timestamp"`
}

// BulkStatusResponse is the GET side of the bulk endpoint.
type BulkStatusResponse struct {
	Status     string               `json:"status"`
	Service    string               `json:"service"`
	Statistics usecase.BulkTagStats `json:"statistics"`
	LastUpdate string               `json:"lastUpdate"`
}

// ToTagReferenceResponses converts resolved tag refs to their DTO form.
func ToTagReferenceResponses(refs []entity.TagRef) []TagReferenceResponse {
	out := make([]TagReferenceResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, TagReferenceResponse{ID: ref.ID, Title: ref.Title})
	}
	return out
}
