// File: helphive/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Booking endpoints
	ListBookingsHandler       gin.HandlerFunc
	ListAllBookingsHandler    gin.HandlerFunc
	ListWorkerBookingsHandler gin.HandlerFunc
	GetBookingHandler         gin.HandlerFunc
	CreateBookingHandler      gin.HandlerFunc
	PatchBookingHandler       gin.HandlerFunc
	DeleteBookingHandler      gin.HandlerFunc

	// Worker endpoints
	RegisterWorkerHandler      gin.HandlerFunc
	GetWorkerByClerkHandler    gin.HandlerFunc
	UpdateWorkerByClerkHandler gin.HandlerFunc
	ListWorkersHandler         gin.HandlerFunc
	GetWorkerByIDHandler       gin.HandlerFunc
	TodayBookingsHandler       gin.HandlerFunc
	WorkerBookingsHandler      gin.HandlerFunc
	WorkerDashboardHandler     gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler    gin.HandlerFunc
	UpsertProfileHandler gin.HandlerFunc

	// Provider directory endpoints
	ListProvidersHandler gin.HandlerFunc
	GetProviderHandler   gin.HandlerFunc
}
