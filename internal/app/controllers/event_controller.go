package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/services"
	"github.com/bde-polytech/backend/internal/middleware"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

// EventController handles event endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// Create handles POST /events
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error()))
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// GetByUUID handles GET /events/:eventUUID
func (c *EventController) GetByUUID(ctx *gin.Context) {
	event, err := c.eventService.GetByUUID(ctx.Request.Context(), ctx.Param("eventUUID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if event.IsDraft && !middleware.CallerHasPermission(ctx, models.PermissionManageEvents) {
		middleware.HandleAPIError(ctx, apperrors.ErrEventNotFound)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// GetAll handles GET /events
func (c *EventController) GetAll(ctx *gin.Context) {
	includeDrafts := middleware.CallerHasPermission(ctx, models.PermissionManageEvents)

	events, err := c.eventService.GetAll(ctx.Request.Context(), includeDrafts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// GetAllForOrganization handles GET /bde/:bdeUUID/events
func (c *EventController) GetAllForOrganization(ctx *gin.Context) {
	includeDrafts := middleware.CallerHasPermission(ctx, models.PermissionManageEvents)

	events, err := c.eventService.GetAllForOrganization(ctx.Request.Context(), ctx.Param("bdeUUID"), includeDrafts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}
