package workerRepo

import (
	"errors"

	"helphive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when a worker id or subject does not resolve.
var ErrNotFound = errors.New("worker not found")

// WorkerRepository defines methods for worker profile data access.
type WorkerRepository interface {
	// Create inserts a new worker record.
	Create(worker *models.Worker) error
	// GetByID retrieves a worker by its unique ID.
	GetByID(id string) (*models.Worker, error)
	// GetByClerkID retrieves a worker by its external identity subject.
	GetByClerkID(clerkID string) (*models.Worker, error)
	// GetActive retrieves all workers whose application was not rejected,
	// newest first.
	GetActive() ([]models.Worker, error)
	// UpdateWithDocument patches a worker document keyed by ID.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// UpdateByClerkID patches a worker document keyed by external subject
	// and returns the updated record.
	UpdateByClerkID(clerkID string, updateDoc bson.M) (*models.Worker, error)
	// SetAverageRating writes the recomputed average rating.
	SetAverageRating(id string, average float64) error
}
