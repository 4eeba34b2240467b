package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "helphive/database/repository/booking"
	dashboardRepo "helphive/database/repository/dashboard"
	workerRepo "helphive/database/repository/worker"
	"helphive/models"
	"helphive/services/tasks"
	"helphive/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// defaultCustomerName mirrors the schema default applied when a guest
// books without a display name.
const defaultCustomerName = "Customer"

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Dashboard dashboardRepo.DashboardRepository
	Workers   workerRepo.WorkerRepository
	Reminders tasks.ReminderScheduler // optional; reminders are best effort

	// StrictStatus rejects transitions out of terminal states and status
	// values outside the enumerated domain. Off by default to match the
	// accept-anything behavior of the legacy API.
	StrictStatus bool

	ratingLocks keyedLocks
}

func (s *DefaultBookingService) Create(input models.BookingInput) (*models.Booking, error) {
	if input.WorkerID == "" || input.Date == "" || input.Time == "" || input.Address == "" {
		return nil, ValidationError{Message: "Missing required fields"}
	}

	customerName := input.CustomerName
	if customerName == "" {
		customerName = defaultCustomerName
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:           uuid.New().String(),
		ClerkID:      input.ClerkID,
		CustomerName: customerName,
		WorkerID:     input.WorkerID,
		Service:      input.Service,
		Date:         input.Date,
		Time:         input.Time,
		Duration:     input.Duration,
		Address:      input.Address,
		Phone:        input.Phone,
		Notes:        input.Notes,
		Amount:       input.Amount,
		Status:       models.BookingStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}

	entry := &models.DashboardEntry{
		ID:           uuid.New().String(),
		WorkerID:     booking.WorkerID,
		BookingID:    booking.ID,
		CustomerName: booking.CustomerName,
		Date:         booking.Date,
		Time:         booking.Time,
		Address:      booking.Address,
		Phone:        booking.Phone,
		Notes:        booking.Notes,
		Status:       booking.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// The booking and its projection are two sequential writes against
	// independent collections. A projection insert failure leaves them
	// inconsistent; there is no compensating delete, so the create still
	// succeeds and the gap is surfaced in the logs.
	if err := s.Dashboard.Insert(entry); err != nil {
		utils.GetLogger().Error("dashboard projection insert failed after booking create",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}

	s.scheduleReminder(booking)

	s.attachWorker(booking)
	return booking, nil
}

func (s *DefaultBookingService) Get(id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.attachWorker(booking)
	return booking, nil
}

func (s *DefaultBookingService) ListByCustomer(clerkID string) ([]models.Booking, error) {
	// Anti-leak guard: a missing subject never returns the full table.
	if clerkID == "" {
		return []models.Booking{}, nil
	}
	bookings, err := s.Repo.GetByClerkID(clerkID)
	if err != nil {
		return nil, err
	}
	s.attachWorkers(bookings)
	return bookings, nil
}

func (s *DefaultBookingService) ListAll() ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	s.attachWorkers(bookings)
	return bookings, nil
}

func (s *DefaultBookingService) ListByWorker(workerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByWorker(workerID)
	if err != nil {
		return nil, err
	}
	s.attachWorkers(bookings)
	return bookings, nil
}

func (s *DefaultBookingService) ListByWorkerToday(workerID string) ([]models.Booking, error) {
	today := time.Now().UTC().Format("2006-01-02")
	return s.Repo.GetByWorkerAndDate(workerID, today)
}

func (s *DefaultBookingService) ListDashboard(workerID string) ([]models.DashboardEntry, error) {
	return s.Dashboard.GetByWorker(workerID)
}

func (s *DefaultBookingService) Patch(id string, patch models.BookingPatch) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Presence, not truthiness, decides whether a field is written.
	updateDoc := bson.M{}
	if patch.Status != nil {
		if err := s.checkStatusTransition(booking.Status, *patch.Status); err != nil {
			return nil, err
		}
		booking.Status = *patch.Status
		updateDoc["status"] = *patch.Status
	}
	if patch.Rating != nil {
		if *patch.Rating < 1 || *patch.Rating > 5 {
			return nil, ValidationError{Message: "Rating must be between 1 and 5"}
		}
		booking.Rating = patch.Rating
		updateDoc["rating"] = *patch.Rating
	}
	if patch.Review != nil {
		booking.Review = patch.Review
		updateDoc["review"] = *patch.Review
	}

	if len(updateDoc) > 0 {
		booking.UpdatedAt = time.Now().UTC()
		updateDoc["updatedAt"] = booking.UpdatedAt
		if err := s.Repo.UpdateWithDocument(id, updateDoc); err != nil {
			if errors.Is(err, bookingRepo.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	if patch.Status != nil {
		// Missing projection entries are a no-op, not an error.
		if err := s.Dashboard.SyncStatus(id, *patch.Status); err != nil {
			utils.GetLogger().Error("dashboard status sync failed",
				zap.String("bookingId", id), zap.Error(err))
		}
	}

	if patch.Rating != nil && booking.WorkerID != "" {
		if _, err := s.RecomputeWorkerRating(booking.WorkerID); err != nil {
			utils.GetLogger().Error("rating recompute failed",
				zap.String("workerId", booking.WorkerID), zap.Error(err))
		}
	}

	s.attachWorker(booking)
	return booking, nil
}

func (s *DefaultBookingService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	// Projection removal is best effort; the booking is already gone.
	if err := s.Dashboard.Remove(id); err != nil {
		utils.GetLogger().Error("dashboard projection removal failed",
			zap.String("bookingId", id), zap.Error(err))
	}
	return nil
}

// checkStatusTransition enforces the configured status policy. With
// StrictStatus off any value is accepted, matching the legacy behavior.
func (s *DefaultBookingService) checkStatusTransition(current, next string) error {
	if !s.StrictStatus {
		return nil
	}
	if !models.IsValidBookingStatus(next) {
		return ValidationError{Message: fmt.Sprintf("Unknown status %q", next)}
	}
	if models.IsTerminalBookingStatus(current) && current != next {
		return ValidationError{Message: fmt.Sprintf("Cannot change status of a %s booking", current)}
	}
	return nil
}

func (s *DefaultBookingService) scheduleReminder(booking *models.Booking) {
	if s.Reminders == nil {
		return
	}
	fireAt, err := time.Parse("2006-01-02 15:04", booking.Date+" "+booking.Time)
	if err != nil || fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID:    booking.ID,
		WorkerID:     booking.WorkerID,
		CustomerName: booking.CustomerName,
		Service:      booking.Service,
		Date:         booking.Date,
		Time:         booking.Time,
		Address:      booking.Address,
	}
	if err := s.Reminders.ScheduleReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

// attachWorker joins the referenced worker's public fields onto the
// booking. A missing worker leaves the join empty, mirroring a dangling
// reference populate.
func (s *DefaultBookingService) attachWorker(booking *models.Booking) {
	if booking == nil || booking.WorkerID == "" {
		return
	}
	worker, err := s.Workers.GetByID(booking.WorkerID)
	if err != nil {
		return
	}
	booking.Worker = worker.Summary()
}

func (s *DefaultBookingService) attachWorkers(bookings []models.Booking) {
	for i := range bookings {
		s.attachWorker(&bookings[i])
	}
}
