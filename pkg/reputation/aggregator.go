// Package reputation fetches unified rating aggregates per provider owner.
package reputation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/pkg/metrics"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/redis"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

const cacheKeyPrefix = "clover:reputation:"

// Source looks up the unified rating aggregate for a user across all roles.
// Implemented by the reputation repository.
type Source interface {
	Summary(ctx context.Context, userID string) (models.ReputationSummary, error)
}

// Aggregator resolves reputation summaries with a read-through Redis cache.
// The aggregator is miss-tolerant end to end: a cache failure falls through
// to the source, and a source failure degrades to a zero-valued summary so a
// reputation outage cannot blank out a match result.
type Aggregator struct {
	logger ectologger.Logger
	source Source
	cache  *redis.Client
	ttl    time.Duration
}

// NewAggregator creates a new reputation aggregator. cache may be nil, which
// disables caching.
func NewAggregator(logger ectologger.Logger, source Source, cache *redis.Client, ttl time.Duration) *Aggregator {
	return &Aggregator{
		logger: logger,
		source: source,
		cache:  cache,
		ttl:    ttl,
	}
}

// Summary returns the unified reputation summary for a user. Absence of
// rating data is a valid answer (zero rating, zero count), never an error.
func (a *Aggregator) Summary(ctx context.Context, userID string) models.ReputationSummary {
	ctx, span := tracing.StartSpan(ctx, "reputation.Aggregator.Summary")
	defer span.End()

	if cached, ok := a.fromCache(ctx, userID); ok {
		return cached
	}

	summary, err := a.source.Summary(ctx, userID)
	if err != nil {
		metrics.EnrichmentFailures.WithLabelValues("reputation").Inc()
		a.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"user_id": userID,
		}).Warn("Reputation lookup failed; treating as unrated")
		return models.ReputationSummary{UserID: userID}
	}
	summary.UserID = userID

	a.toCache(ctx, userID, summary)
	return summary
}

func (a *Aggregator) fromCache(ctx context.Context, userID string) (models.ReputationSummary, bool) {
	if a.cache == nil {
		return models.ReputationSummary{}, false
	}

	raw, err := a.cache.Get(ctx, cacheKeyPrefix+userID)
	if err != nil {
		if !redis.IsMiss(err) {
			a.logger.WithContext(ctx).WithError(err).Debug("Reputation cache read failed")
		}
		return models.ReputationSummary{}, false
	}

	var summary models.ReputationSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return models.ReputationSummary{}, false
	}
	return summary, true
}

func (a *Aggregator) toCache(ctx context.Context, userID string, summary models.ReputationSummary) {
	if a.cache == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, cacheKeyPrefix+userID, string(raw), a.ttl); err != nil {
		a.logger.WithContext(ctx).WithError(err).Debug("Reputation cache write failed")
	}
}
