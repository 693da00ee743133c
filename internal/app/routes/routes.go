package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bde-polytech/backend/internal/app/controllers"
	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/app/services"
	"github.com/bde-polytech/backend/internal/middleware"
	"github.com/bde-polytech/backend/internal/pkg/auth"
)

// SetupRoutes registers all API routes on the engine.
func SetupRoutes(router *gin.Engine, svcs *services.Services, jwtService *auth.JWTService) {
	organizationController := controllers.NewOrganizationController(svcs.OrganizationService)
	userController := controllers.NewUserController(svcs.UserService)
	authController := controllers.NewAuthController(svcs.AuthService)
	eventController := controllers.NewEventController(svcs.EventService)
	bookingController := controllers.NewBookingController(svcs.BookingService)
	voteController := controllers.NewVoteController(svcs.VoteService)

	authRequired := middleware.AuthMiddleware(jwtService)
	authOptional := middleware.OptionalAuthMiddleware(jwtService)
	manageBDE := middleware.RequirePermission(models.PermissionManageOrganization)
	manageUsers := middleware.RequirePermission(models.PermissionManageUsers)
	manageEvents := middleware.RequirePermission(models.PermissionManageEvents)
	manageBookings := middleware.RequirePermission(models.PermissionManageBookings)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
	}

	bde := api.Group("/bde")
	{
		bde.POST("", organizationController.Create)
		bde.GET("", organizationController.GetAll)
		bde.GET("/:bdeUUID", organizationController.GetByUUID)
		bde.DELETE("/:bdeUUID", authRequired, manageBDE, organizationController.Delete)
		bde.GET("/:bdeUUID/users", authRequired, manageUsers, userController.GetAllForOrganization)
		bde.GET("/:bdeUUID/requests", authRequired, manageUsers, userController.ListRequests)
		bde.GET("/:bdeUUID/events", authOptional, eventController.GetAllForOrganization)
	}

	users := api.Group("/users")
	{
		users.POST("", userController.RegisterRequest)
		users.GET("", authRequired, manageUsers, userController.GetAll)
		users.GET("/:userUUID", authRequired, userController.GetByUUID)
		users.PUT("/:userUUID/registration", userController.FinishRegistration)
		users.GET("/:userUUID/bookings", authRequired, bookingController.GetAllForUser)
	}

	userRequests := api.Group("/user-requests")
	{
		userRequests.POST("/process", authRequired, manageUsers, userController.ProcessRequest)
	}

	events := api.Group("/events")
	{
		events.POST("", authRequired, manageEvents, eventController.Create)
		events.GET("", authOptional, eventController.GetAll)
		events.GET("/:eventUUID", authOptional, eventController.GetByUUID)
		events.GET("/:eventUUID/bookings", authRequired, manageBookings, bookingController.GetAllForEvent)
	}

	bookings := api.Group("/bookings")
	{
		bookings.POST("", authRequired, bookingController.Create)
		bookings.GET("/:userUUID/:eventUUID", authRequired, bookingController.GetOne)
	}

	votes := api.Group("/votes")
	{
		votes.POST("", authRequired, voteController.Cast)
		votes.GET("", authRequired, voteController.GetMine)
		votes.GET("/results", authRequired, manageBDE, voteController.Results)
	}
}
