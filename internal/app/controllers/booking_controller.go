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

// BookingController handles booking endpoints
type BookingController struct {
	bookingService *services.BookingService
}

// NewBookingController creates a new BookingController
func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// Create handles POST /bookings. Callers book for themselves unless they
// manage bookings.
func (c *BookingController) Create(ctx *gin.Context) {
	var req dto.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error()))
		return
	}

	if req.UserUUID != middleware.CallerUUID(ctx) &&
		!middleware.CallerHasPermission(ctx, models.PermissionManageBookings) {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	if err := c.bookingService.Create(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusCreated)
}

// GetOne handles GET /bookings/:userUUID/:eventUUID
func (c *BookingController) GetOne(ctx *gin.Context) {
	booking, err := c.bookingService.GetOne(ctx.Request.Context(), ctx.Param("userUUID"), ctx.Param("eventUUID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// GetAllForEvent handles GET /events/:eventUUID/bookings
func (c *BookingController) GetAllForEvent(ctx *gin.Context) {
	bookings, err := c.bookingService.GetAllForEvent(ctx.Request.Context(), ctx.Param("eventUUID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// GetAllForUser handles GET /users/:userUUID/bookings
func (c *BookingController) GetAllForUser(ctx *gin.Context) {
	bookings, err := c.bookingService.GetAllForUser(ctx.Request.Context(), ctx.Param("userUUID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}
