package models

import "time"

// DashboardEntry is the worker-facing denormalized snapshot of a booking.
// It is a pure cache owned by the booking: created with it, status-synced
// on every patch, removed on delete. At most one entry exists per booking.
type DashboardEntry struct {
	ID           string    `bson:"id" json:"id"`
	WorkerID     string    `bson:"workerId" json:"workerId"`
	BookingID    string    `bson:"bookingId" json:"bookingId"`
	CustomerName string    `bson:"customerName" json:"customerName"`
	Date         string    `bson:"date,omitempty" json:"date,omitempty"`
	Time         string    `bson:"time,omitempty" json:"time,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
