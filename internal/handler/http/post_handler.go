package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"github.com/ramentaro/ramen-taro-api/internal/handler/http/dto"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
)

// PostHandlerInterface defines the methods for the post handler to allow
// interface-based dependency injection (for testing/mocking)
type PostHandlerInterface interface {
	CreatePostHandler(*gin.Context)
	GetPostsHandler(*gin.Context)
	GetPostDetailHandler(*gin.Context)
}

// Ensure PostHandler implements PostHandlerInterface
var _ PostHandlerInterface = (*PostHandler)(nil)

type PostHandler struct {
	postUsecase usecase.IPostUseCase
}

func NewPostHandler(postUsecase usecase.IPostUseCase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// CreatePostHandler
func (h *PostHandler) CreatePostHandler(cxt *gin.Context) {
	var req dto.CreatePostRequest
	if err := BindAndValidate(cxt, &req); err != nil {
		ErrorHandler(cxt, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postUsecase.CreatePost(cxt.Request.Context(), req.Title, req.Slug, req.Excerpt, req.Body, req.Published)
	if err != nil {
		ErrorHandler(cxt, http.StatusInternalServerError, "Failed to create post")
		return
	}

	SuccessHandler(cxt, http.StatusCreated, dto.ToPostResponse(post))
}

// GetPostsHandler
func (h *PostHandler) GetPostsHandler(cxt *gin.Context) {
	page, err := strconv.Atoi(cxt.DefaultQuery("page", "1"))
	if err != nil {
		ErrorHandler(cxt, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(cxt.DefaultQuery("pageSize", "10"))
	if err != nil {
		ErrorHandler(cxt, http.StatusBadRequest, "Invalid page size")
		return
	}

	posts, totalCount, currentPage, totalPages, err := h.postUsecase.GetPosts(cxt.Request.Context(), page, pageSize)
	if err != nil {
		ErrorHandler(cxt, http.StatusInternalServerError, "Failed to get posts")
		return
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, dto.ToPostResponse(&posts[i]))
	}

	SuccessHandler(cxt, http.StatusOK, dto.PaginatedPostsResponse{
		Posts:       responses,
		TotalCount:  totalCount,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
	})
}

// GetPostDetailHandler
func (h *PostHandler) GetPostDetailHandler(cxt *gin.Context) {
	slug := cxt.Param("slug")
	post, err := h.postUsecase.GetPostBySlug(cxt.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			ErrorHandler(cxt, http.StatusNotFound, "Post not found")
			return
		}
		ErrorHandler(cxt, http.StatusInternalServerError, "Failed to get post")
		return
	}

	SuccessHandler(cxt, http.StatusOK, dto.ToPostResponse(post))
}
