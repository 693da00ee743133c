package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/services"
	"github.com/bde-polytech/backend/internal/middleware"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

// OrganizationController handles organization endpoints
type OrganizationController struct {
	organizationService *services.OrganizationService
}

// NewOrganizationController creates a new OrganizationController
func NewOrganizationController(organizationService *services.OrganizationService) *OrganizationController {
	return &OrganizationController{
		organizationService: organizationService,
	}
}

// Create handles POST /bde
func (c *OrganizationController) Create(ctx *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error()))
		return
	}

	org, err := c.organizationService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, org)
}

// GetAll handles GET /bde
func (c *OrganizationController) GetAll(ctx *gin.Context) {
	orgs, err := c.organizationService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, orgs)
}

// GetByUUID handles GET /bde/:bdeUUID
func (c *OrganizationController) GetByUUID(ctx *gin.Context) {
	org, err := c.organizationService.GetByUUID(ctx.Request.Context(), ctx.Param("bdeUUID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, org)
}

// Delete handles DELETE /bde/:bdeUUID
func (c *OrganizationController) Delete(ctx *gin.Context) {
	if err := c.organizationService.Delete(ctx.Request.Context(), ctx.Param("bdeUUID")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
