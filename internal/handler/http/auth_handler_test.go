package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/ramentaro/ramen-taro-api/internal/handler/http"
	dto "github.com/ramentaro/ramen-taro-api/internal/handler/http/dto"
	"github.com/ramentaro/ramen-taro-api/internal/handler/http/middleware"
	mocks "github.com/ramentaro/ramen-taro-api/internal/handler/http/mocks"
	jwtinfra "github.com/ramentaro/ramen-taro-api/internal/infrastructure/jwt"
)

func setupAuthRouter(h *handler.AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/auth/login", h.LoginHandler)
	return r
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	body, _ := json.Marshal(dto.LoginRequest{Password: "correct-password"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailLogin = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	body, _ := json.Marshal(dto.LoginRequest{Password: "wrong-password"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogin_MissingPassword(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	body, _ := json.Marshal(dto.LoginRequest{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func setupProtectedRouter(jwtService *jwtinfra.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	protected := r.Group("/")
	protected.Use(middleware.AdminAuthMiddleware(jwtService))
	protected.POST("/admin-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestAdminAuthMiddleware_MissingToken(t *testing.T) {
	jwtService := jwtinfra.NewJWTManager("test-secret", time.Hour)
	r := setupProtectedRouter(jwtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin-only", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing or malformed authorization header")
}

func TestAdminAuthMiddleware_InvalidToken(t *testing.T) {
	jwtService := jwtinfra.NewJWTManager("test-secret", time.Hour)
	r := setupProtectedRouter(jwtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAdminAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwtinfra.NewJWTManager("test-secret", time.Hour)
	r := setupProtectedRouter(jwtService)

	token, err := jwtService.GenerateAdminToken()
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthMiddleware_WrongSigningKey(t *testing.T) {
	issuer := jwtinfra.NewJWTManager("other-secret", time.Hour)
	verifier := jwtinfra.NewJWTManager("test-secret", time.Hour)
	r := setupProtectedRouter(verifier)

	token, err := issuer.GenerateAdminToken()
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
