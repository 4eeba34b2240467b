package routes

import (
	"net/http"
	"time"

	"helphive/config"
	"helphive/handlers"
	"helphive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookingsHandler)
		api.GET("/admin/all", hb.ListAllBookingsHandler)
		api.GET("/worker/:workerId", hb.ListWorkerBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.POST("", hb.CreateBookingHandler)
		api.PATCH("/:id", hb.PatchBookingHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterWorkerRoutes registers worker registration, profile and
// dashboard endpoints.
func RegisterWorkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workers")
	{
		api.POST("", hb.RegisterWorkerHandler)
		api.GET("", hb.ListWorkersHandler)
		api.GET("/clerk/:clerkId", hb.GetWorkerByClerkHandler)
		api.PATCH("/clerk/:clerkId", hb.UpdateWorkerByClerkHandler)
		api.GET("/bookings/today/:workerId", hb.TodayBookingsHandler)
		api.GET("/bookings/worker/:workerId", hb.WorkerBookingsHandler)
		api.GET("/dashboard/:workerId", hb.WorkerDashboardHandler)
		api.GET("/:id", hb.GetWorkerByIDHandler)
	}
}

// RegisterProfileRoutes registers the customer profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.GET("/:id", hb.GetProfileHandler)
		api.PUT("/:id", hb.UpsertProfileHandler)
	}
}

// RegisterProviderRoutes registers the curated provider directory.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.ListProvidersHandler)
		api.GET("/:id", hb.GetProviderHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "HelpHive backend is running", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterWorkerRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterHealthRoute(r)
}
