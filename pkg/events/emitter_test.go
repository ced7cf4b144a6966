package events

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/clover/pkg/models"
)

func TestEmitMatchCompletedNilProducerIsNoop(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	emitter := NewEmitter(nil, logger)

	assert.NotPanics(t, func() {
		emitter.EmitMatchCompleted(context.Background(), "req-1", "plumbing", "same_city", "",
			[]models.MatchCandidate{{ID: "p1"}}, false)
	})
}
