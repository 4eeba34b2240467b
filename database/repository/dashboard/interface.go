package dashboardRepo

import "helphive/models"

// DashboardRepository defines methods for the worker dashboard projection.
// The projection is a pure cache owned by the booking: SyncStatus and
// Remove are no-ops when no entry exists for the booking.
type DashboardRepository interface {
	// Insert creates a projection entry alongside its booking.
	Insert(entry *models.DashboardEntry) error
	// SyncStatus overwrites the status of the entry keyed by booking ID.
	SyncStatus(bookingID, status string) error
	// Remove deletes the entry keyed by booking ID.
	Remove(bookingID string) error
	// GetByBookingID retrieves the entry for a booking, or nil if absent.
	GetByBookingID(bookingID string) (*models.DashboardEntry, error)
	// GetByWorker retrieves a worker's entries ordered by date ascending.
	GetByWorker(workerID string) ([]models.DashboardEntry, error)
}
