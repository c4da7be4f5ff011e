package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"github.com/ramentaro/ramen-taro-api/internal/handler/http/dto"
)

type TagHandler struct {
	tagRepo contract.ITagRepository
}

func NewTagHandler(tagRepo contract.ITagRepository) *TagHandler {
	return &TagHandler{
		tagRepo: tagRepo,
	}
}

// GetTagsHandler lists every stored tag.
func (h *TagHandler) GetTagsHandler(cxt *gin.Context) {
	tags, err := h.tagRepo.GetAllTags(cxt.Request.Context())
	if err != nil {
		ErrorHandler(cxt, http.StatusInternalServerError, "Failed to get tags")
		return
	}

	responses := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, dto.ToTagResponse(tag))
	}
	SuccessHandler(cxt, http.StatusOK, responses)
}
