// Package workload computes a provider's live availability from its
// in-flight job count.
package workload

import (
	"context"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/pkg/metrics"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// InFlightStatuses are the job statuses that count as occupying provider
// capacity.
var InFlightStatuses = []string{
	"assigned",
	"in_progress",
	"quote_pending",
	"quote_approved",
	"scheduled",
}

// Counter counts a provider's in-flight jobs. Implemented by the job ledger
// repository.
type Counter interface {
	CountActive(ctx context.Context, providerID string) (int, error)
}

// Resolver derives availability status per provider. Each resolution is an
// independent point-in-time read; it is eventual with respect to concurrent
// job writes elsewhere in the system, not transactional.
type Resolver struct {
	logger  ectologger.Logger
	counter Counter
}

// NewResolver creates a new workload resolver
func NewResolver(logger ectologger.Logger, counter Counter) *Resolver {
	return &Resolver{
		logger:  logger,
		counter: counter,
	}
}

// Resolve returns the in-flight job count and availability status for a
// provider. A ledger failure degrades to zero jobs with a logged warning so
// one provider's lookup cannot fail a whole match.
func (r *Resolver) Resolve(ctx context.Context, providerID string) (int, models.AvailabilityStatus) {
	ctx, span := tracing.StartSpan(ctx, "workload.Resolver.Resolve")
	defer span.End()

	count, err := r.counter.CountActive(ctx, providerID)
	if err != nil {
		metrics.EnrichmentFailures.WithLabelValues("workload").Inc()
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"provider_id": providerID,
		}).Warn("Failed to count active jobs; treating provider as available")
		return 0, models.AvailabilityStatusAvailable
	}

	return count, StatusFor(count)
}

// StatusFor maps an in-flight count to a status. Any in-flight work at all
// means busy; the resolver does not grade by how many.
func StatusFor(count int) models.AvailabilityStatus {
	if count > 0 {
		return models.AvailabilityStatusBusy
	}
	return models.AvailabilityStatusAvailable
}
