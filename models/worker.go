package models

import "time"

// Worker application statuses.
const (
	WorkerStatusPending  = "Pending"
	WorkerStatusActive   = "Active"
	WorkerStatusRejected = "Rejected"
)

// DefaultHourlyRate is applied when a registration omits the rate.
const DefaultHourlyRate = 500

// Worker is a registered service provider profile.
type Worker struct {
	ID             string    `bson:"id" json:"id"`
	ClerkID        string    `bson:"clerkId,omitempty" json:"clerkId,omitempty"` // external identity subject; empty until login binding
	FullName       string    `bson:"fullName" json:"fullName"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Service        string    `bson:"service,omitempty" json:"service,omitempty"`
	Experience     string    `bson:"experience,omitempty" json:"experience,omitempty"`
	Address        string    `bson:"address,omitempty" json:"address,omitempty"`
	City           string    `bson:"city,omitempty" json:"city,omitempty"`
	HourlyRate     float64   `bson:"hourlyRate" json:"hourlyRate"`
	Certifications string    `bson:"certifications,omitempty" json:"certifications,omitempty"`
	Bio            string    `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL       string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`         // Cloudinary URL
	DocumentsURL   string    `bson:"documentsUrl,omitempty" json:"documentsUrl,omitempty"` // Cloudinary URL (pdf/doc)
	Status         string    `bson:"status" json:"status"`
	AverageRating  float64   `bson:"averageRating" json:"averageRating"` // derived; recomputed by the rating aggregator
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Summary returns the public slice of the worker attached to booking reads.
func (w *Worker) Summary() *WorkerSummary {
	if w == nil {
		return nil
	}
	return &WorkerSummary{
		ID:            w.ID,
		FullName:      w.FullName,
		Service:       w.Service,
		City:          w.City,
		AverageRating: w.AverageRating,
	}
}

// WorkerInput carries the multipart form fields of a worker registration
// or profile update. File parts are handled separately by the handler.
type WorkerInput struct {
	ClerkID        string `form:"clerkId"`
	FullName       string `form:"fullName"`
	Email          string `form:"email"`
	Phone          string `form:"phone"`
	Service        string `form:"service"`
	Experience     string `form:"experience"`
	Address        string `form:"address"`
	City           string `form:"city"`
	HourlyRate     string `form:"hourlyRate"` // parsed leniently; defaults when absent or malformed
	Certifications string `form:"certifications"`
	Bio            string `form:"bio"`
}
