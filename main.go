// File: helphive/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"helphive/config"
	"helphive/cron"
	"helphive/database"
	bookingRepoPkg "helphive/database/repository/booking"
	dashboardRepoPkg "helphive/database/repository/dashboard"
	profileRepoPkg "helphive/database/repository/profile"
	providerRepoPkg "helphive/database/repository/provider"
	workerRepoPkg "helphive/database/repository/worker"
	"helphive/handlers"
	"helphive/middleware"
	"helphive/routes"
	"helphive/services/booking"
	"helphive/services/profile"
	"helphive/services/tasks"
	"helphive/services/worker"
	"helphive/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	dashboardRepo := dashboardRepoPkg.NewMongoDashboardRepo()
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()

	// services.
	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Dashboard:    dashboardRepo,
		Workers:      workerRepo,
		Reminders:    reminderScheduler,
		StrictStatus: config.AppConfig.BookingStrictStatus,
	}

	workerService := &worker.DefaultWorkerService{
		Repo:       workerRepo,
		StorageSvc: cloudinaryStorageService,
		Cache:      utils.GetCacheClient(),
	}

	profileService := &profile.DefaultProfileService{
		Repo: profileRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	workerHandler := handlers.NewWorkerHandler(workerService, bookingService)
	profileHandler := handlers.NewProfileHandler(profileService)
	providerHandler := handlers.NewProviderHandler(providerRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		ListBookingsHandler:       bookingHandler.ListBookingsHandler,
		ListAllBookingsHandler:    bookingHandler.ListAllBookingsHandler,
		ListWorkerBookingsHandler: bookingHandler.ListWorkerBookingsHandler,
		GetBookingHandler:         bookingHandler.GetBookingHandler,
		CreateBookingHandler:      bookingHandler.CreateBookingHandler,
		PatchBookingHandler:       bookingHandler.PatchBookingHandler,
		DeleteBookingHandler:      bookingHandler.DeleteBookingHandler,

		// Worker endpoints.
		RegisterWorkerHandler:      workerHandler.RegisterWorkerHandler,
		GetWorkerByClerkHandler:    workerHandler.GetWorkerByClerkHandler,
		UpdateWorkerByClerkHandler: workerHandler.UpdateWorkerByClerkHandler,
		ListWorkersHandler:         workerHandler.ListWorkersHandler,
		GetWorkerByIDHandler:       workerHandler.GetWorkerByIDHandler,
		TodayBookingsHandler:       workerHandler.TodayBookingsHandler,
		WorkerBookingsHandler:      workerHandler.WorkerBookingsHandler,
		WorkerDashboardHandler:     workerHandler.WorkerDashboardHandler,

		// Profile endpoints.
		GetProfileHandler:    profileHandler.GetProfileHandler,
		UpsertProfileHandler: profileHandler.UpsertProfileHandler,

		// Provider directory endpoints.
		ListProvidersHandler: providerHandler.ListProvidersHandler,
		GetProviderHandler:   providerHandler.GetProviderHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
