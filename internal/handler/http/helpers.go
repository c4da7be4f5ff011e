package http

import (
	"github.com/gin-gonic/gin"
	"github.com/ramentaro/ramen-taro-api/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// DetailedErrorHandler reports an unexpected failure with diagnostic detail
func DetailedErrorHandler(c *gin.Context, statusCode int, message, details string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message, Details: details})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return err
	}
	return nil
}
