package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Availability holds a provider's booking preferences.
type Availability struct {
	Weekdays    bool `json:"weekdays"`
	Weekends    bool `json:"weekends"`
	Emergencies bool `json:"emergencies"`
}

// Provider is a row from the provider directory. SpecialtiesRaw is stored as
// free-form text by the upstream CRUD surface: it may be empty, a plain
// string, or a serialized JSON array. The specialties parser owns decoding it.
type Provider struct {
	ID                string          `json:"id" db:"id"`
	UserID            string          `json:"user_id" db:"user_id"`
	BusinessName      string          `json:"business_name" db:"business_name"`
	Specialty         string          `json:"specialty" db:"specialty"`
	SpecialtiesRaw    *string         `json:"specialties_raw,omitempty" db:"specialties_raw"`
	HourlyRate        float64         `json:"hourly_rate" db:"hourly_rate"`
	CompletedJobs     int             `json:"completed_jobs" db:"completed_jobs"`
	ResponseTimeHours *float64        `json:"response_time_hours,omitempty" db:"response_time_hours"`
	Address           string          `json:"address" db:"address"`
	City              string          `json:"city" db:"city"`
	Region            string          `json:"region" db:"region"`
	IsVerified        bool            `json:"is_verified" db:"is_verified"`
	Status            string          `json:"status" db:"status"`
	Description       string          `json:"description" db:"description"`
	ProfileImage      string          `json:"profile_image" db:"profile_image"`
	AvailabilityRaw   json.RawMessage `json:"-" db:"availability"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// EligibleStatuses are the activity statuses that make a verified provider
// matchable. Upstream writers are inconsistent about casing and aliases, so
// both "active" and "verified" count, compared case-insensitively.
var EligibleStatuses = []string{"active", "verified"}

// IsEligible reports whether the provider passes the verification and
// activity-status precondition.
func (p *Provider) IsEligible() bool {
	if !p.IsVerified {
		return false
	}
	status := strings.ToLower(strings.TrimSpace(p.Status))
	for _, s := range EligibleStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// GetAvailability decodes the availability payload, degrading to the zero
// value when the payload is missing or malformed.
func (p *Provider) GetAvailability() Availability {
	var a Availability
	if len(p.AvailabilityRaw) == 0 {
		return a
	}
	if err := json.Unmarshal(p.AvailabilityRaw, &a); err != nil {
		return Availability{}
	}
	return a
}

// LocationScope narrows the provider pool geographically relative to the
// request's property.
type LocationScope string

const (
	LocationScopeSameCity   LocationScope = "same_city"
	LocationScopeSameRegion LocationScope = "same_region"
	LocationScopeAll        LocationScope = "all"
)

// PoolScope narrows the eligible pool geographically. Kind same_city filters
// on an exact city match; same_region keeps providers matching the city OR
// the region (inclusive). Empty geo fields disable the respective narrowing
// so incomplete data never silently zeroes out the pool.
type PoolScope struct {
	Kind   LocationScope
	City   string
	Region string
}

// DirectoryCounts are absolute, filter-independent counts over the whole
// provider directory, used by the diagnostics reporter.
type DirectoryCounts struct {
	Total          int `json:"total" db:"total"`
	Verified       int `json:"verified" db:"verified"`
	ActiveVerified int `json:"active_verified" db:"active_verified"`
}
