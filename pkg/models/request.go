package models

import "time"

// Property is read-only reference data used to compute location tiers.
type Property struct {
	ID      string `json:"id" db:"id"`
	Address string `json:"address" db:"address"`
	City    string `json:"city" db:"city"`
	Region  string `json:"region" db:"region"`
}

// ServiceRequest is a maintenance/repair request tied to a property. Clover
// only reads it; it is immutable for the duration of a match operation.
type ServiceRequest struct {
	ID          string    `json:"id" db:"id"`
	PropertyID  string    `json:"property_id" db:"property_id"`
	Category    string    `json:"category" db:"category"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RequestContext is the request plus its property, resolved in one read.
type RequestContext struct {
	Request  ServiceRequest `json:"request"`
	Property Property       `json:"property"`
}
