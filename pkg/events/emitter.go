// Package events handles audit event emission for match operations
package events

import (
	"context"

	"github.com/Gobusters/ectolinq"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/pkg/kafka"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// Emitter publishes match lifecycle events. Emission is best-effort: a
// publish failure is logged and absorbed, never surfaced to the caller.
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter. producer may be nil, which turns
// emission into a no-op.
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitMatchCompleted emits a match.completed audit event
func (e *Emitter) EmitMatchCompleted(ctx context.Context, requestID string, category string, locationFilter string, specialtyFilter string, candidates []models.MatchCandidate, diagnosed bool) {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitMatchCompleted")
	defer span.End()

	if e.producer == nil {
		return
	}

	ids := ectolinq.Map(candidates, func(c models.MatchCandidate) string {
		return c.ID
	})

	event := &kafka.MatchEvent{
		EventType:       "match.completed",
		RequestID:       requestID,
		Category:        category,
		LocationFilter:  locationFilter,
		SpecialtyFilter: specialtyFilter,
		CandidateCount:  len(candidates),
		CandidateIDs:    ids,
		Diagnosed:       diagnosed,
	}

	if err := e.producer.PublishMatchEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Warn("Failed to emit match.completed event")
	}
}
