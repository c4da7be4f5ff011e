package http

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ramentaro/ramen-taro-api/internal/handler/http/dto"
	"github.com/ramentaro/ramen-taro-api/internal/tagging"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
	usecasecontract "github.com/ramentaro/ramen-taro-api/internal/usecase/contract"
)

// TaggingHandlerInterface defines the methods for the tagging handler to allow
// interface-based dependency injection (for testing/mocking)
type TaggingHandlerInterface interface {
	AnalyzeContentHandler(*gin.Context)
	AnalyzeHealthHandler(*gin.Context)
	BulkAutoTagHandler(*gin.Context)
	BulkStatusHandler(*gin.Context)
	RevalidateHandler(*gin.Context)
}

// Ensure TaggingHandler implements TaggingHandlerInterface
var _ TaggingHandlerInterface = (*TaggingHandler)(nil)

type TaggingHandler struct {
	suggestionUC usecase.ISuggestionUseCase
	bulkUC       usecase.IBulkTagUseCase
	logger       usecasecontract.IAppLogger
}

func NewTaggingHandler(suggestionUC usecase.ISuggestionUseCase, bulkUC usecase.IBulkTagUseCase, logger usecasecontract.IAppLogger) *TaggingHandler {
	return &TaggingHandler{
		suggestionUC: suggestionUC,
		bulkUC:       bulkUC,
		logger:       logger,
	}
}

// AnalyzeContentHandler suggests tags for a single piece of content.
func (h *TaggingHandler) AnalyzeContentHandler(cxt *gin.Context) {
	var req dto.AnalyzeContentRequest
	if err := BindAndValidate(cxt, &req); err != nil {
		ErrorHandler(cxt, http.StatusBadRequest, err.Error())
		return
	}

	if req.Title == "" && req.Excerpt == "" && req.Content == "" {
		ErrorHandler(cxt, http.StatusBadRequest, "No content provided for analysis")
		return
	}

	opts := usecase.DefaultSuggestionOptions()
	if req.Options != nil {
		if req.Options.MaxTags > 0 {
			opts.MaxTags = req.Options.MaxTags
		}
		if req.Options.MinConfidence > 0 {
			opts.MinConfidence = req.Options.MinConfidence
		}
		if req.Options.IncludeNewTags != nil {
			opts.IncludeNewTags = *req.Options.IncludeNewTags
		}
	}

	content := tagging.ContentToAnalyze{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Body:    req.Content,
	}

	suggestion, err := h.suggestionUC.Suggest(cxt.Request.Context(), content, opts)
	if err != nil {
		DetailedErrorHandler(cxt, http.StatusInternalServerError, "Content analysis failed", err.Error())
		return
	}

	createdTags := []dto.TagReferenceResponse{}
	if req.Options != nil && req.Options.CreateNewTags && len(suggestion.NewTags) > 0 {
		refs, err := h.suggestionUC.CreateTags(cxt.Request.Context(), suggestion.NewTags)
		if err != nil {
			// Creation failure must not sink the suggestion itself.
			h.logger.Errorf("failed to create suggested tags: %v", err)
		} else {
			createdTags = dto.ToTagReferenceResponses(refs)
		}
	}

	resp := dto.AnalyzeContentResponse{
		Suggestions: dto.SuggestionsResponse{
			Tags:          suggestion.SuggestedTags,
			Confidence:    suggestion.Confidence,
			ExistingTags:  suggestion.ExistingTags,
			NewTags:       suggestion.NewTags,
			TagReferences: dto.ToTagReferenceResponses(suggestion.TagReferences),
		},
		CreatedTags: createdTags,
		Meta: dto.AnalyzeMeta{
			TotalSuggested: len(suggestion.SuggestedTags),
			ExistingCount:  len(suggestion.ExistingTags),
			NewCount:       len(suggestion.NewTags),
			Confidence:     suggestion.Confidence,
			LowConfidence:  suggestion.LowConfidence,
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
		},
	}

	SuccessHandler(cxt, http.StatusOK, resp)
}

// AnalyzeHealthHandler reports the analyzer's health and usage.
func (h *TaggingHandler) AnalyzeHealthHandler(cxt *gin.Context) {
	SuccessHandler(cxt, http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Content Analysis API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"POST": "/api/v1/analyze-content - suggest tags for content",
		},
		"parameters": gin.H{
			"title":   "string - post title",
			"excerpt": "string - post excerpt",
			"content": "string - post body as plain text",
			"options": gin.H{
				"maxTags":        "number - maximum suggested tags (default: 6)",
				"minConfidence":  "number - minimum confidence (default: 0.3)",
				"includeNewTags": "boolean - include unknown tag names (default: true)",
				"createNewTags":  "boolean - create unknown tags (default: false)",
			},
		},
	})
}

// BulkAutoTagHandler runs auto-tagging across all untagged posts.
func (h *TaggingHandler) BulkAutoTagHandler(cxt *gin.Context) {
	var req dto.BulkAutoTagRequest
	// The body is optional; force/maxPosts are accepted but the
	// selection ignores both, so they are only logged.
	_ = cxt.ShouldBindJSON(&req)

	h.logger.Infof("bulk auto-tag requested: force=%v maxPosts=%d (selection honors neither)", req.Force, req.MaxPosts)

	report := h.bulkUC.Run(cxt.Request.Context())
	processed := report.Success + report.Failed

	rate := 0
	if processed > 0 {
		rate = int(math.Round(float64(report.Success) / float64(processed) * 100))
	}

	SuccessHandler(cxt, http.StatusOK, dto.BulkAutoTagResponse{
		Success: true,
		Result: dto.BulkResult{
			Processed:   processed,
			Successful:  report.Success,
			Failed:      report.Failed,
			SuccessRate: rate,
		},
		Message:   fmt.Sprintf("Auto-tagged %d posts (%d failed)", report.Success, report.Failed),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// BulkStatusHandler reports tagging coverage statistics.
func (h *TaggingHandler) BulkStatusHandler(cxt *gin.Context) {
	stats, err := h.bulkUC.Stats(cxt.Request.Context())
	if err != nil {
		DetailedErrorHandler(cxt, http.StatusInternalServerError, "Failed to fetch tagging statistics", err.Error())
		return
	}

	SuccessHandler(cxt, http.StatusOK, dto.BulkStatusResponse{
		Status:     "ready",
		Service:    "Bulk Auto Tag API",
		Statistics: *stats,
		LastUpdate: time.Now().UTC().Format(time.RFC3339),
	})
}

// RevalidateHandler drops cached snapshots so subsequent reads see
// fresh store content.
func (h *TaggingHandler) RevalidateHandler(cxt *gin.Context) {
	if err := h.suggestionUC.InvalidateVocabularyCache(cxt.Request.Context()); err != nil {
		DetailedErrorHandler(cxt, http.StatusInternalServerError, "Failed to revalidate caches", err.Error())
		return
	}
	MessageHandler(cxt, http.StatusOK, "Caches revalidated")
}
