package workload

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/clover/pkg/models"
)

type fakeCounter struct {
	counts map[string]int
	err    error
}

func (f *fakeCounter) CountActive(_ context.Context, providerID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[providerID], nil
}

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestResolveAvailable(t *testing.T) {
	resolver := NewResolver(testLogger(), &fakeCounter{counts: map[string]int{}})

	count, status := resolver.Resolve(context.Background(), "p1")
	assert.Equal(t, 0, count)
	assert.Equal(t, models.AvailabilityStatusAvailable, status)
}

func TestResolveBusy(t *testing.T) {
	resolver := NewResolver(testLogger(), &fakeCounter{counts: map[string]int{"p1": 3}})

	count, status := resolver.Resolve(context.Background(), "p1")
	assert.Equal(t, 3, count)
	assert.Equal(t, models.AvailabilityStatusBusy, status)
}

func TestResolveSingleJobIsBusy(t *testing.T) {
	resolver := NewResolver(testLogger(), &fakeCounter{counts: map[string]int{"p1": 1}})

	_, status := resolver.Resolve(context.Background(), "p1")
	assert.Equal(t, models.AvailabilityStatusBusy, status)
}

func TestResolveLedgerFailureDegradesToAvailable(t *testing.T) {
	resolver := NewResolver(testLogger(), &fakeCounter{err: errors.New("connection refused")})

	count, status := resolver.Resolve(context.Background(), "p1")
	assert.Equal(t, 0, count)
	assert.Equal(t, models.AvailabilityStatusAvailable, status)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, models.AvailabilityStatusAvailable, StatusFor(0))
	assert.Equal(t, models.AvailabilityStatusBusy, StatusFor(1))
	assert.Equal(t, models.AvailabilityStatusBusy, StatusFor(10))
}

func TestInFlightStatuses(t *testing.T) {
	expected := []string{"assigned", "in_progress", "quote_pending", "quote_approved", "scheduled"}
	assert.Equal(t, expected, InFlightStatuses)
}
