package worker

import (
	"context"
	"errors"

	"helphive/models"
)

// ErrNotFound signals that a worker id did not resolve.
var ErrNotFound = errors.New("worker not found")

// UploadedFiles carries the temp-file paths of the multipart uploads that
// accompany a registration or profile update. Empty paths mean the part
// was not supplied.
type UploadedFiles struct {
	PhotoPath     string
	DocumentsPath string
}

// WorkerService manages worker registration, profile lookup and updates,
// and the public active-worker directory.
type WorkerService interface {
	// Register uploads any supplied media and persists a new worker
	// profile with status Active.
	Register(ctx context.Context, input models.WorkerInput, files UploadedFiles) (*models.Worker, error)
	// GetByID retrieves a worker by id.
	GetByID(id string) (*models.Worker, error)
	// GetByClerkID retrieves a worker by external identity subject. A
	// missing binding returns (nil, nil).
	GetByClerkID(clerkID string) (*models.Worker, error)
	// Update patches the worker bound to the subject, re-uploading any
	// supplied media.
	Update(ctx context.Context, clerkID string, input models.WorkerInput, files UploadedFiles) (*models.Worker, error)
	// ListActive returns all workers whose application was not rejected,
	// newest first.
	ListActive(ctx context.Context) ([]models.Worker, error)
}
