package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/services"
	"github.com/bde-polytech/backend/internal/middleware"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

// UserController handles membership endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRequest handles POST /users
func (c *UserController) RegisterRequest(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error()))
		return
	}

	if err := c.userService.RegisterRequest(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusCreated)
}

// ListRequests handles GET /bde/:bdeUUID/requests
func (c *UserController) ListRequests(ctx *gin.Context) {
	requests, err := c.userService.ListRequests(ctx.Request.Context(), ctx.Param("bdeUUID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// ProcessRequest handles POST /user-requests/process
func (c *UserController) ProcessRequest(ctx *gin.Context) {
	var req dto.ProcessUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error()))
		return
	}

	if err := c.userService.ProcessRequest(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// FinishRegistration handles PUT /users/:userUUID/registration
func (c *UserController) FinishRegistration(ctx *gin.Context) {
	var req dto.FinishRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error()))
		return
	}

	if err := c.userService.FinishRegistration(ctx.Request.Context(), ctx.Param("userUUID"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetByUUID handles GET /users/:userUUID
func (c *UserController) GetByUUID(ctx *gin.Context) {
	user, err := c.userService.GetByUUID(ctx.Request.Context(), ctx.Param("userUUID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetAll handles GET /users
func (c *UserController) GetAll(ctx *gin.Context) {
	users, err := c.userService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetAllForOrganization handles GET /bde/:bdeUUID/users
func (c *UserController) GetAllForOrganization(ctx *gin.Context) {
	users, err := c.userService.GetAllForOrganization(ctx.Request.Context(), ctx.Param("bdeUUID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}
