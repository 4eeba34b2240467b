package bookingRepo

import (
	"errors"

	"helphive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when a booking id does not resolve.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// GetByClerkID retrieves a customer's bookings, newest first.
	GetByClerkID(clerkID string) ([]models.Booking, error)
	// GetByWorker retrieves a worker's bookings ordered by date ascending.
	GetByWorker(workerID string) ([]models.Booking, error)
	// GetByWorkerAndDate retrieves a worker's bookings on a given date.
	GetByWorkerAndDate(workerID, date string) ([]models.Booking, error)
	// GetRatedByWorker retrieves every booking for the worker whose rating is set.
	GetRatedByWorker(workerID string) ([]models.Booking, error)
	// UpdateWithDocument patches a booking document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
