package reputation

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/clover/pkg/models"
)

type fakeSource struct {
	summaries map[string]models.ReputationSummary
	err       error
	calls     int
}

func (f *fakeSource) Summary(_ context.Context, userID string) (models.ReputationSummary, error) {
	f.calls++
	if f.err != nil {
		return models.ReputationSummary{}, f.err
	}
	return f.summaries[userID], nil
}

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestSummaryFromSource(t *testing.T) {
	source := &fakeSource{summaries: map[string]models.ReputationSummary{
		"u1": {Rating: 4.5, TotalRatings: 12},
	}}
	agg := NewAggregator(testLogger(), source, nil, 0)

	summary := agg.Summary(context.Background(), "u1")
	assert.Equal(t, 4.5, summary.Rating)
	assert.Equal(t, 12, summary.TotalRatings)
	assert.Equal(t, "u1", summary.UserID)
}

func TestSummaryUnratedUserIsZero(t *testing.T) {
	source := &fakeSource{summaries: map[string]models.ReputationSummary{}}
	agg := NewAggregator(testLogger(), source, nil, 0)

	summary := agg.Summary(context.Background(), "nobody")
	assert.Zero(t, summary.Rating)
	assert.Zero(t, summary.TotalRatings)
}

func TestSummarySourceFailureDegradesToZero(t *testing.T) {
	source := &fakeSource{err: errors.New("ratings store down")}
	agg := NewAggregator(testLogger(), source, nil, 0)

	summary := agg.Summary(context.Background(), "u1")
	assert.Equal(t, models.ReputationSummary{UserID: "u1"}, summary)
}

func TestSummaryNilCacheHitsSourceEveryTime(t *testing.T) {
	source := &fakeSource{summaries: map[string]models.ReputationSummary{
		"u1": {Rating: 5, TotalRatings: 1},
	}}
	agg := NewAggregator(testLogger(), source, nil, 0)

	agg.Summary(context.Background(), "u1")
	agg.Summary(context.Background(), "u1")
	assert.Equal(t, 2, source.calls)
}
