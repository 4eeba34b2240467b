package profileRepo

import (
	"errors"

	"helphive/models"
)

// ErrNotFound is returned when no profile exists for a subject.
var ErrNotFound = errors.New("profile not found")

// ProfileRepository defines methods for customer profile data access.
type ProfileRepository interface {
	// GetByUserID retrieves a profile by external identity subject.
	GetByUserID(userID string) (*models.Profile, error)
	// Upsert creates or replaces the profile fields for a subject and
	// returns the resulting record.
	Upsert(userID string, input models.ProfileInput) (*models.Profile, error)
}
