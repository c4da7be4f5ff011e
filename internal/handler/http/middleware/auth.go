package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ramentaro/ramen-taro-api/internal/handler/http/dto"
	usecasecontract "github.com/ramentaro/ramen-taro-api/internal/usecase/contract"
)

// AdminAuthMiddleware guards admin routes with a bearer token carrying
// the admin role.
func AdminAuthMiddleware(jwtService usecasecontract.IJWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing or malformed authorization header"})
			return
		}

		role, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set("userRole", role)
		c.Next()
	}
}
