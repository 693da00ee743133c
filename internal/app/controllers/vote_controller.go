package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/services"
	"github.com/bde-polytech/backend/internal/middleware"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

// VoteController handles voting endpoints. Votes are always cast and read as
// the authenticated caller.
type VoteController struct {
	voteService *services.VoteService
}

// NewVoteController creates a new VoteController
func NewVoteController(voteService *services.VoteService) *VoteController {
	return &VoteController{
		voteService: voteService,
	}
}

// Cast handles POST /votes
func (c *VoteController) Cast(ctx *gin.Context) {
	var req dto.CastVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error()))
		return
	}

	if err := c.voteService.Cast(ctx.Request.Context(), middleware.CallerUUID(ctx), req.Choice); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusCreated)
}

// GetMine handles GET /votes
func (c *VoteController) GetMine(ctx *gin.Context) {
	vote, err := c.voteService.GetForUser(ctx.Request.Context(), middleware.CallerUUID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, vote)
}

// Results handles GET /votes/results
func (c *VoteController) Results(ctx *gin.Context) {
	results, err := c.voteService.Results(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}
