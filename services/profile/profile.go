package profile

import (
	"errors"

	profileRepo "helphive/database/repository/profile"
	"helphive/models"
)

// ErrNotFound signals that no profile exists for the subject.
var ErrNotFound = errors.New("profile not found")

// ProfileService manages the minimal customer contact record keyed by the
// external identity subject.
type ProfileService interface {
	Get(userID string) (*models.Profile, error)
	Upsert(userID string, input models.ProfileInput) (*models.Profile, error)
}

// DefaultProfileService implements ProfileService.
type DefaultProfileService struct {
	Repo profileRepo.ProfileRepository
}

func (s *DefaultProfileService) Get(userID string) (*models.Profile, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *DefaultProfileService) Upsert(userID string, input models.ProfileInput) (*models.Profile, error) {
	return s.Repo.Upsert(userID, input)
}
