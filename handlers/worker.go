// File: helphive/handlers/worker.go
package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"helphive/models"
	"helphive/services/booking"
	"helphive/services/worker"
	"helphive/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WorkerHandler exposes worker registration, profile and dashboard endpoints.
type WorkerHandler struct {
	Service    worker.WorkerService
	BookingSvc booking.BookingService
}

// NewWorkerHandler creates a new WorkerHandler instance.
func NewWorkerHandler(svc worker.WorkerService, bookingSvc booking.BookingService) *WorkerHandler {
	return &WorkerHandler{Service: svc, BookingSvc: bookingSvc}
}

// RegisterWorkerHandler handles POST /workers (multipart form with
// optional photo and documents files).
func (h *WorkerHandler) RegisterWorkerHandler(c *gin.Context) {
	var input models.WorkerInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data"})
		return
	}

	files, cleanup, err := h.saveUploads(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store uploaded files"})
		return
	}
	defer cleanup()

	w, err := h.Service.Register(c.Request.Context(), input, files)
	if err != nil {
		utils.GetLogger().Error("Worker registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "worker": w})
}

// GetWorkerByClerkHandler handles GET /workers/clerk/:clerkId. An unbound
// subject returns a null worker, matching the legacy contract.
func (h *WorkerHandler) GetWorkerByClerkHandler(c *gin.Context) {
	clerkID := c.Param("clerkId")
	w, err := h.Service.GetByClerkID(clerkID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch worker by clerkId", zap.String("clerkId", clerkID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "worker": w})
}

// UpdateWorkerByClerkHandler handles PATCH /workers/clerk/:clerkId
// (multipart form, optional media re-upload).
func (h *WorkerHandler) UpdateWorkerByClerkHandler(c *gin.Context) {
	clerkID := c.Param("clerkId")
	var input models.WorkerInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data"})
		return
	}

	files, cleanup, err := h.saveUploads(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store uploaded files"})
		return
	}
	defer cleanup()

	w, err := h.Service.Update(c.Request.Context(), clerkID, input, files)
	if err != nil {
		if errors.Is(err, worker.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Worker not found"})
			return
		}
		utils.GetLogger().Error("Worker update failed", zap.String("clerkId", clerkID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "worker": w})
}

// ListWorkersHandler handles GET /workers (public directory, excludes
// rejected applications).
func (h *WorkerHandler) ListWorkersHandler(c *gin.Context) {
	workers, err := h.Service.ListActive(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list workers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	if workers == nil {
		workers = []models.Worker{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "workers": workers})
}

// GetWorkerByIDHandler handles GET /workers/:id.
func (h *WorkerHandler) GetWorkerByIDHandler(c *gin.Context) {
	id := c.Param("id")
	w, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, worker.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Worker not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch worker", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "worker": w})
}

// TodayBookingsHandler handles GET /workers/bookings/today/:workerId.
func (h *WorkerHandler) TodayBookingsHandler(c *gin.Context) {
	workerID := c.Param("workerId")
	bookings, err := h.BookingSvc.ListByWorkerToday(workerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch today's bookings", zap.String("workerId", workerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": emptyIfNilBookings(bookings)})
}

// WorkerBookingsHandler handles GET /workers/bookings/worker/:workerId.
func (h *WorkerHandler) WorkerBookingsHandler(c *gin.Context) {
	workerID := c.Param("workerId")
	bookings, err := h.BookingSvc.ListByWorker(workerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch worker bookings", zap.String("workerId", workerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": emptyIfNilBookings(bookings)})
}

// WorkerDashboardHandler handles GET /workers/dashboard/:workerId,
// returning the denormalized projection entries ordered by date.
func (h *WorkerHandler) WorkerDashboardHandler(c *gin.Context) {
	workerID := c.Param("workerId")
	entries, err := h.BookingSvc.ListDashboard(workerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch worker dashboard", zap.String("workerId", workerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	if entries == nil {
		entries = []models.DashboardEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": entries})
}

// saveUploads persists the optional photo/documents form files to temp
// paths for the storage service and returns a cleanup func.
func (h *WorkerHandler) saveUploads(c *gin.Context) (worker.UploadedFiles, func(), error) {
	var files worker.UploadedFiles
	var saved []string

	cleanup := func() {
		for _, path := range saved {
			os.Remove(path)
		}
	}

	for _, part := range []struct {
		field  string
		target *string
	}{
		{"photo", &files.PhotoPath},
		{"documents", &files.DocumentsPath},
	} {
		fileHeader, err := c.FormFile(part.field)
		if err != nil {
			continue // part not supplied
		}
		// Unique name: concurrent uploads may carry the same client filename.
		tempPath := filepath.Join(os.TempDir(), uuid.New().String()+"-"+filepath.Base(fileHeader.Filename))
		if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
			cleanup()
			return worker.UploadedFiles{}, func() {}, err
		}
		saved = append(saved, tempPath)
		*part.target = tempPath
	}
	return files, cleanup, nil
}
