package matching

import (
	"context"
	"sync"

	"github.com/Ramsey-B/clover/pkg/location"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/specialties"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// enrichedProvider is a provider plus everything the ranker needs about it.
type enrichedProvider struct {
	provider     *models.Provider
	specialties  []string
	folded       []string
	tier         models.DistanceTier
	label        string
	activeJobs   int
	availability models.AvailabilityStatus
	reputation   models.ReputationSummary
}

// enrich runs the per-provider lookups (specialties, location tier, workload,
// reputation) as a bounded fan-out. Each provider's result is written to its
// own slot, so no mutex is needed; a cancelled context abandons the remaining
// lookups and the partial slots are simply dropped by assemble.
func (s *Service) enrich(ctx context.Context, pool []models.Provider, property models.Property) []enrichedProvider {
	ctx, span := tracing.StartSpan(ctx, "matching.Service.enrich")
	defer span.End()

	results := make([]enrichedProvider, len(pool))
	sem := make(chan struct{}, s.cfg.EnrichWorkerCount)
	var wg sync.WaitGroup

	for i := range pool {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			if ctx.Err() != nil {
				return
			}

			results[i] = s.enrichOne(ctx, &pool[i], &property)
		}(i)
	}

	wg.Wait()
	return results
}

func (s *Service) enrichOne(ctx context.Context, provider *models.Provider, property *models.Property) enrichedProvider {
	parsed := specialties.Parse(provider.Specialty, provider.SpecialtiesRaw)
	tier, label := location.Classify(provider, property)

	activeJobs, availability := s.workload.Resolve(ctx, provider.ID)
	reputation := s.reputation.Summary(ctx, provider.UserID)

	return enrichedProvider{
		provider:     provider,
		specialties:  parsed,
		folded:       specialties.Fold(parsed),
		tier:         tier,
		label:        label,
		activeJobs:   activeJobs,
		availability: availability,
		reputation:   reputation,
	}
}
