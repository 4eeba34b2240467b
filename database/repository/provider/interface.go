package providerRepo

import (
	"errors"

	"helphive/models"
)

// ErrNotFound is returned when a provider id does not resolve.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines read access to the curated provider directory.
type ProviderRepository interface {
	// GetAll retrieves all directory providers, newest first.
	GetAll() ([]models.Provider, error)
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
}
