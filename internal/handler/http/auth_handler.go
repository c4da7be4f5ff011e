package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramentaro/ramen-taro-api/internal/handler/http/dto"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
)

type AuthHandler struct {
	authUsecase usecase.IAuthUseCase
}

func NewAuthHandler(authUsecase usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// LoginHandler authenticates the site admin and returns a session token.
func (h *AuthHandler) LoginHandler(cxt *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(cxt, &req); err != nil {
		ErrorHandler(cxt, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authUsecase.Login(cxt.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			ErrorHandler(cxt, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		ErrorHandler(cxt, http.StatusInternalServerError, "Login failed")
		return
	}

	SuccessHandler(cxt, http.StatusOK, dto.LoginResponse{AccessToken: token})
}
