// File: helphive/handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"helphive/models"
	"helphive/services/booking"
	"helphive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookingsHandler handles GET /bookings?clerkId=... (customer dashboard).
// A missing clerkId yields an empty list, never the full table.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	clerkID := c.Query("clerkId")
	bookings, err := h.Service.ListByCustomer(clerkID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": emptyIfNilBookings(bookings)})
}

// ListAllBookingsHandler handles GET /bookings/admin/all (admin panel).
func (h *BookingHandler) ListAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListAll()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch all bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch all bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": emptyIfNilBookings(bookings)})
}

// ListWorkerBookingsHandler handles GET /bookings/worker/:workerId.
func (h *BookingHandler) ListWorkerBookingsHandler(c *gin.Context) {
	workerID := c.Param("workerId")
	bookings, err := h.Service.ListByWorker(workerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch worker bookings", zap.String("workerId", workerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch worker bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": emptyIfNilBookings(bookings)})
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	b, err := h.Service.Create(input)
	if err != nil {
		var verr booking.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Message})
			return
		}
		utils.GetLogger().Error("Booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create booking"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": b})
}

// PatchBookingHandler handles PATCH /bookings/:id (status, rating, review).
func (h *BookingHandler) PatchBookingHandler(c *gin.Context) {
	id := c.Param("id")
	var patch models.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	b, err := h.Service.Patch(id, patch)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		var verr booking.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Message})
			return
		}
		utils.GetLogger().Error("Booking update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// DeleteBookingHandler handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		utils.GetLogger().Error("Booking deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}

func emptyIfNilBookings(bookings []models.Booking) []models.Booking {
	if bookings == nil {
		return []models.Booking{}
	}
	return bookings
}
