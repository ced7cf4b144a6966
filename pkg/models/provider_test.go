package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEligible(t *testing.T) {
	cases := []struct {
		name     string
		provider Provider
		expected bool
	}{
		{"verified and active", Provider{IsVerified: true, Status: "active"}, true},
		{"verified with verified status", Provider{IsVerified: true, Status: "verified"}, true},
		{"status casing ignored", Provider{IsVerified: true, Status: "ACTIVE"}, true},
		{"status whitespace ignored", Provider{IsVerified: true, Status: " active "}, true},
		{"unverified", Provider{IsVerified: false, Status: "active"}, false},
		{"suspended", Provider{IsVerified: true, Status: "suspended"}, false},
		{"empty status", Provider{IsVerified: true, Status: ""}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.provider.IsEligible())
		})
	}
}

func TestGetAvailability(t *testing.T) {
	p := Provider{AvailabilityRaw: json.RawMessage(`{"weekdays": true, "emergencies": true}`)}
	a := p.GetAvailability()
	assert.True(t, a.Weekdays)
	assert.False(t, a.Weekends)
	assert.True(t, a.Emergencies)
}

func TestGetAvailabilityMissing(t *testing.T) {
	p := Provider{}
	assert.Equal(t, Availability{}, p.GetAvailability())
}

func TestGetAvailabilityMalformed(t *testing.T) {
	p := Provider{AvailabilityRaw: json.RawMessage(`not json`)}
	assert.Equal(t, Availability{}, p.GetAvailability())
}
