package models

import "time"

// Provider is a curated directory card shown on the public search page.
// Unlike workers, providers are seeded editorially and never mutated by
// the API.
type Provider struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Service     string    `bson:"service,omitempty" json:"service,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	HourlyRate  float64   `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	Rating      float64   `bson:"rating" json:"rating"`
	Reviews     int       `bson:"reviews" json:"reviews"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
