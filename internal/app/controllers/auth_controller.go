package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/services"
	"github.com/bde-polytech/backend/internal/middleware"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error()))
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
