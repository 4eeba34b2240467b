package models

import "time"

// Booking statuses. A freshly created booking is always Pending.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

// BookingStatuses enumerates every accepted booking status.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// Booking is the canonical record of one scheduled engagement between a
// customer and a worker.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	ClerkID      string    `bson:"clerkId,omitempty" json:"clerkId,omitempty"` // external identity subject; empty for guest bookings
	CustomerName string    `bson:"customerName" json:"customerName"`
	WorkerID     string    `bson:"workerId" json:"workerId"`
	Service      string    `bson:"service,omitempty" json:"service,omitempty"`
	Date         string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time         string    `bson:"time" json:"time"`
	Duration     string    `bson:"duration,omitempty" json:"duration,omitempty"`
	Address      string    `bson:"address" json:"address"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Amount       float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	Status       string    `bson:"status" json:"status"`
	Rating       *int      `bson:"rating,omitempty" json:"rating,omitempty"` // 1..5 when set
	Review       *string   `bson:"review,omitempty" json:"review,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`

	// Worker is a read-only join of the referenced worker's public fields,
	// attached on reads and never persisted with the booking.
	Worker *WorkerSummary `bson:"-" json:"worker,omitempty"`
}

// WorkerSummary is the public slice of a worker record attached to booking
// reads.
type WorkerSummary struct {
	ID            string  `json:"id"`
	FullName      string  `json:"fullName"`
	Service       string  `json:"service,omitempty"`
	City          string  `json:"city,omitempty"`
	AverageRating float64 `json:"averageRating"`
}

// IsTerminalBookingStatus reports whether a status admits no further
// transitions under the strict status policy.
func IsTerminalBookingStatus(status string) bool {
	return status == BookingStatusCompleted || status == BookingStatusCancelled
}

// IsValidBookingStatus reports whether status is in the enumerated domain.
func IsValidBookingStatus(status string) bool {
	for _, s := range BookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}
