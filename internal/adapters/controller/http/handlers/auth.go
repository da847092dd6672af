package handlers

import (
	"net/http"

	"github.com/clubshub/clubshub/internal/adapters/controller/http/middlewares"
	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, errorz.Validationf("invalid request body"))
		return
	}

	user, token, err := h.auth.Register(ctx.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, errorz.Validationf("invalid request body"))
		return
	}

	user, token, err := h.auth.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Me returns the authenticated principal.
func (h *AuthHandler) Me(ctx *gin.Context) {
	user, err := middlewares.CurrentUser(ctx)
	if err != nil {
		respondError(ctx, errorz.Unauthorizedf("not authenticated"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user})
}
