package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	workerRepo "helphive/database/repository/worker"
	"helphive/models"
	"helphive/services/storage"
	"helphive/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	workerMediaFolder = "helphive/workers"

	activeWorkersCacheKey = "workers:active"
	activeWorkersCacheTTL = 60 * time.Second
)

// ListingCache is the slice of the redis client the directory listing
// uses. *redis.Client satisfies it.
type ListingCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DefaultWorkerService implements WorkerService.
type DefaultWorkerService struct {
	Repo       workerRepo.WorkerRepository
	StorageSvc storage.StorageService
	Cache      ListingCache // optional; listing works without it
}

func (s *DefaultWorkerService) Register(ctx context.Context, input models.WorkerInput, files UploadedFiles) (*models.Worker, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	photoURL, documentsURL, err := s.uploadMedia(ctx, files)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	w := &models.Worker{
		ID:             uuid.New().String(),
		ClerkID:        input.ClerkID,
		FullName:       input.FullName,
		Email:          input.Email,
		Phone:          input.Phone,
		Service:        input.Service,
		Experience:     input.Experience,
		Address:        input.Address,
		City:           input.City,
		HourlyRate:     parseHourlyRate(input.HourlyRate),
		Certifications: input.Certifications,
		Bio:            input.Bio,
		PhotoURL:       photoURL,
		DocumentsURL:   documentsURL,
		Status:         models.WorkerStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(w); err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return w, nil
}

func (s *DefaultWorkerService) GetByID(id string) (*models.Worker, error) {
	w, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, workerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *DefaultWorkerService) GetByClerkID(clerkID string) (*models.Worker, error) {
	w, err := s.Repo.GetByClerkID(clerkID)
	if err != nil {
		// An unbound subject is not an error: the caller renders an
		// empty profile.
		if errors.Is(err, workerRepo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

func (s *DefaultWorkerService) Update(ctx context.Context, clerkID string, input models.WorkerInput, files UploadedFiles) (*models.Worker, error) {
	updateDoc := bson.M{}
	if input.FullName != "" {
		updateDoc["fullName"] = input.FullName
	}
	if input.Email != "" {
		updateDoc["email"] = input.Email
	}
	if input.Phone != "" {
		updateDoc["phone"] = input.Phone
	}
	if input.Service != "" {
		updateDoc["service"] = input.Service
	}
	if input.Experience != "" {
		updateDoc["experience"] = input.Experience
	}
	if input.Address != "" {
		updateDoc["address"] = input.Address
	}
	if input.City != "" {
		updateDoc["city"] = input.City
	}
	if input.HourlyRate != "" {
		updateDoc["hourlyRate"] = parseHourlyRate(input.HourlyRate)
	}
	if input.Certifications != "" {
		updateDoc["certifications"] = input.Certifications
	}
	if input.Bio != "" {
		updateDoc["bio"] = input.Bio
	}

	photoURL, documentsURL, err := s.uploadMedia(ctx, files)
	if err != nil {
		return nil, err
	}
	if photoURL != "" {
		updateDoc["photoUrl"] = photoURL
	}
	if documentsURL != "" {
		updateDoc["documentsUrl"] = documentsURL
	}

	updateDoc["updatedAt"] = time.Now().UTC()

	updated, err := s.Repo.UpdateByClerkID(clerkID, updateDoc)
	if err != nil {
		if errors.Is(err, workerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.invalidateListing(ctx)
	return updated, nil
}

func (s *DefaultWorkerService) ListActive(ctx context.Context) ([]models.Worker, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, activeWorkersCacheKey).Result(); err == nil {
			var workers []models.Worker
			if err := json.Unmarshal([]byte(cached), &workers); err == nil {
				return workers, nil
			}
		}
	}

	workers, err := s.Repo.GetActive()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(workers); err == nil {
			if err := s.Cache.Set(ctx, activeWorkersCacheKey, data, activeWorkersCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache worker listing", zap.Error(err))
			}
		}
	}
	return workers, nil
}

// uploadMedia pushes any supplied files to Cloudinary and returns their
// durable URLs. Photos go to the image bucket, documents to the raw one.
func (s *DefaultWorkerService) uploadMedia(ctx context.Context, files UploadedFiles) (photoURL, documentsURL string, err error) {
	if files.PhotoPath != "" {
		photoURL, err = s.StorageSvc.UploadFile(ctx, files.PhotoPath, workerMediaFolder+"/photos", "image")
		if err != nil {
			return "", "", fmt.Errorf("failed to upload photo: %w", err)
		}
	}
	if files.DocumentsPath != "" {
		documentsURL, err = s.StorageSvc.UploadFile(ctx, files.DocumentsPath, workerMediaFolder+"/documents", "raw")
		if err != nil {
			return "", "", fmt.Errorf("failed to upload documents: %w", err)
		}
	}
	return photoURL, documentsURL, nil
}

func (s *DefaultWorkerService) invalidateListing(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, activeWorkersCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate worker listing cache", zap.Error(err))
	}
}

func parseHourlyRate(raw string) float64 {
	if raw == "" {
		return models.DefaultHourlyRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 {
		return models.DefaultHourlyRate
	}
	return rate
}
