package models

// DistanceTier classifies a provider's location relative to the request's
// property. City match takes precedence over region match.
type DistanceTier string

const (
	DistanceTierSameCity   DistanceTier = "SAME_CITY"
	DistanceTierSameRegion DistanceTier = "SAME_REGION"
	DistanceTierOther      DistanceTier = "OTHER"
)

// AvailabilityStatus is the live workload classification of a provider.
type AvailabilityStatus string

const (
	AvailabilityStatusAvailable AvailabilityStatus = "available"
	AvailabilityStatusBusy      AvailabilityStatus = "busy"
)

// ReputationSummary is a unified rating aggregate across all of a user's
// roles. A missing aggregate is represented as the zero value, never an error.
type ReputationSummary struct {
	UserID       string  `json:"user_id" db:"user_id"`
	Rating       float64 `json:"rating" db:"rating"`
	TotalRatings int     `json:"total_ratings" db:"total_ratings"`
}

// MatchCandidate is a read projection assembled per match call. It has no
// lifecycle of its own and is discarded after the response is sent.
type MatchCandidate struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Specialty          string             `json:"specialty"`
	Specialties        []string           `json:"specialties"`
	Rating             float64            `json:"rating"`
	TotalRatings       int                `json:"totalRatings"`
	Location           string             `json:"location"`
	HourlyRate         float64            `json:"hourlyRate"`
	Experience         int                `json:"experience"`
	Distance           DistanceTier       `json:"distance"`
	EstimatedCost      float64            `json:"estimatedCost"`
	Availability       Availability       `json:"availability"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus"`
	ResponseTime       string             `json:"responseTime"`
	Description        string             `json:"description"`
	ProfileImage       string             `json:"profileImage"`

	// Informational only: category compatibility never excludes a candidate.
	MatchesCategory  bool   `json:"matchesCategory"`
	MatchedSpecialty string `json:"matchedSpecialty,omitempty"`
}

// Diagnostic explains an empty or degenerate match set. Counts are absolute
// over the whole directory so "no providers exist" and "filters are too
// narrow" are distinguishable.
type Diagnostic struct {
	TotalProvidersInDB          int    `json:"totalProvidersInDB"`
	VerifiedProvidersInDB       int    `json:"verifiedProvidersInDB"`
	ActiveVerifiedProvidersInDB int    `json:"activeVerifiedProvidersInDB"`
	Message                     string `json:"message"`
	Suggestion                  string `json:"suggestion"`
}

// MatchRequestInfo is the request context echoed back in the match response.
type MatchRequestInfo struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Property struct {
		Address string `json:"address"`
		City    string `json:"city"`
		Region  string `json:"region"`
	} `json:"property"`
}

// MatchResponse is the full response of a match operation. Diagnostic is only
// present when the candidate list is empty.
type MatchResponse struct {
	Request    MatchRequestInfo `json:"request"`
	Candidates []MatchCandidate `json:"candidates"`
	Diagnostic *Diagnostic      `json:"diagnostic,omitempty"`
}
