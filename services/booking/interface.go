package booking

import "helphive/models"

// BookingService owns the canonical booking lifecycle: creation with its
// dashboard projection, reads with the worker join, presence-based
// patching with projection sync and rating recomputation, and deletion.
type BookingService interface {
	// Create validates the input and persists a Pending booking together
	// with its dashboard projection entry.
	Create(input models.BookingInput) (*models.Booking, error)
	// Get returns the booking enriched with the worker's public fields.
	Get(id string) (*models.Booking, error)
	// ListByCustomer returns a customer's bookings newest first. An empty
	// subject yields an empty list, never the full table.
	ListByCustomer(clerkID string) ([]models.Booking, error)
	// ListAll returns every booking newest first (admin listing).
	ListAll() ([]models.Booking, error)
	// ListByWorker returns a worker's bookings ordered by date ascending.
	ListByWorker(workerID string) ([]models.Booking, error)
	// ListByWorkerToday returns a worker's bookings dated today.
	ListByWorkerToday(workerID string) ([]models.Booking, error)
	// ListDashboard returns a worker's projection entries, date ascending.
	ListDashboard(workerID string) ([]models.DashboardEntry, error)
	// Patch applies the present fields, syncs the projection status and,
	// when a rating was supplied, recomputes the worker's average.
	Patch(id string, patch models.BookingPatch) (*models.Booking, error)
	// Delete removes the booking and, best effort, its projection entry.
	Delete(id string) error
	// RecomputeWorkerRating recalculates a worker's average rating from
	// all of their rated bookings and writes it back.
	RecomputeWorkerRating(workerID string) (float64, error)
}
