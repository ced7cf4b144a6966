// Package matching implements the provider matching and ranking pipeline:
// load the request context, build the eligible pool, enrich each provider
// concurrently, filter, annotate, and rank.
package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/pkg/categories"
	"github.com/Ramsey-B/clover/pkg/events"
	"github.com/Ramsey-B/clover/pkg/metrics"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/normalizers"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// SpecialtyFilterAll is the sentinel value that disables the explicit
// specialty filter.
const SpecialtyFilterAll = "all"

// RequestStore resolves a service request and its property context.
type RequestStore interface {
	GetWithProperty(ctx context.Context, id string) (*models.RequestContext, error)
}

// ProviderDirectory lists eligible providers and reports absolute counts.
type ProviderDirectory interface {
	ListEligible(ctx context.Context, scope models.PoolScope) ([]models.Provider, error)
	Counts(ctx context.Context) (models.DirectoryCounts, error)
}

// WorkloadResolver derives a provider's live availability.
type WorkloadResolver interface {
	Resolve(ctx context.Context, providerID string) (int, models.AvailabilityStatus)
}

// ReputationResolver fetches unified rating summaries.
type ReputationResolver interface {
	Summary(ctx context.Context, userID string) models.ReputationSummary
}

// Config contains configuration for the matching service.
type Config struct {
	EnrichWorkerCount int     // Concurrent per-provider enrichment lookups (default: 8)
	EstimateHours     float64 // Fixed job-length estimate for cost projection (default: 2)
	MaxCandidates     int     // Maximum candidates to return (default: 100)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnrichWorkerCount: 8,
		EstimateHours:     2,
		MaxCandidates:     100,
	}
}

// Filters are the caller-supplied narrowing options. Both are optional.
type Filters struct {
	Location  models.LocationScope
	Specialty string
}

// Service orchestrates the match pipeline. It is stateless and
// request-scoped: every call is a self-contained read with no shared mutable
// state.
type Service struct {
	logger     ectologger.Logger
	requests   RequestStore
	directory  ProviderDirectory
	workload   WorkloadResolver
	reputation ReputationResolver
	table      *categories.Table
	reporter   *Reporter
	emitter    *events.Emitter
	cfg        Config
}

// NewService creates a new matching service.
func NewService(
	logger ectologger.Logger,
	requests RequestStore,
	directory ProviderDirectory,
	workload WorkloadResolver,
	reputation ReputationResolver,
	table *categories.Table,
	emitter *events.Emitter,
	cfg Config,
) *Service {
	if cfg.EnrichWorkerCount < 1 {
		cfg.EnrichWorkerCount = 8
	}
	if cfg.EstimateHours <= 0 {
		cfg.EstimateHours = 2
	}
	if cfg.MaxCandidates < 1 {
		cfg.MaxCandidates = 100
	}
	return &Service{
		logger:     logger,
		requests:   requests,
		directory:  directory,
		workload:   workload,
		reputation: reputation,
		table:      table,
		reporter:   NewReporter(logger, directory),
		emitter:    emitter,
		cfg:        cfg,
	}
}

// Match runs the full pipeline for a request. The only hard failures are an
// unknown request id and a provider pool fetch error; per-provider enrichment
// failures are absorbed upstream of this function.
func (s *Service) Match(ctx context.Context, requestID string, filters Filters) (*models.MatchResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "matching.Service.Match")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.MatchDuration.Observe(time.Since(start).Seconds())
	}()

	log := s.logger.WithContext(ctx).WithFields(map[string]any{
		"request_id":       requestID,
		"location_filter":  string(filters.Location),
		"specialty_filter": filters.Specialty,
	})

	rc, err := s.requests.GetWithProperty(ctx, requestID)
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("request_not_found").Inc()
		return nil, err
	}

	pool, err := s.directory.ListEligible(ctx, buildScope(filters.Location, rc.Property))
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("pool_fetch_failed").Inc()
		return nil, err
	}

	log.WithFields(map[string]any{"pool_size": len(pool)}).Debug("Loaded eligible pool")

	enriched := s.enrich(ctx, pool, rc.Property)
	candidates := s.assemble(rc.Request.Category, filters.Specialty, enriched)

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		return candidates[i].TotalRatings > candidates[j].TotalRatings
	})
	if len(candidates) > s.cfg.MaxCandidates {
		candidates = candidates[:s.cfg.MaxCandidates]
	}

	response := &models.MatchResponse{
		Request:    buildRequestInfo(rc),
		Candidates: candidates,
	}

	// Diagnostics supplement an empty result, they never replace it.
	if len(pool) == 0 || len(candidates) == 0 {
		response.Diagnostic = s.reporter.Diagnose(ctx)
	}

	metrics.MatchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.MatchCandidates.Observe(float64(len(candidates)))

	if s.emitter != nil {
		s.emitter.EmitMatchCompleted(ctx, requestID, rc.Request.Category, string(filters.Location), filters.Specialty, candidates, response.Diagnostic != nil)
	}

	log.WithFields(map[string]any{
		"candidate_count": len(candidates),
		"diagnosed":       response.Diagnostic != nil,
	}).Info("Match completed")

	return response, nil
}

// buildScope translates the location filter into a directory scope. Missing
// geo data on the property disables narrowing rather than producing an
// impossible filter.
func buildScope(filter models.LocationScope, property models.Property) models.PoolScope {
	switch filter {
	case models.LocationScopeSameCity:
		if property.City != "" {
			return models.PoolScope{Kind: models.LocationScopeSameCity, City: property.City}
		}
	case models.LocationScopeSameRegion:
		if property.Region != "" {
			return models.PoolScope{Kind: models.LocationScopeSameRegion, City: property.City, Region: property.Region}
		}
	}
	return models.PoolScope{Kind: models.LocationScopeAll}
}

// assemble applies the explicit specialty filter, computes the informational
// category signal, and builds candidate records.
func (s *Service) assemble(category string, specialtyFilter string, enriched []enrichedProvider) []models.MatchCandidate {
	filter := normalizers.Fold(specialtyFilter)
	if filter == SpecialtyFilterAll {
		filter = ""
	}

	synonyms := s.table.SynonymsFor(category)

	candidates := make([]models.MatchCandidate, 0, len(enriched))
	for _, e := range enriched {
		if e.provider == nil {
			continue
		}

		// Hard exclusion: explicit specialty filter, folded substring in
		// either direction. This is deliberately literal, not synonym-aware.
		if filter != "" && !anySubstring(e.folded, filter) {
			continue
		}

		// Informational only: category compatibility annotates, it never
		// excludes. Over-inclusion here is a product decision so users see
		// more options; the explicit filter above is the narrowing tool.
		matches, matched := categorySignal(synonyms, e.specialties, e.folded)

		candidates = append(candidates, models.MatchCandidate{
			ID:                 e.provider.ID,
			Name:               e.provider.BusinessName,
			Specialty:          e.provider.Specialty,
			Specialties:        e.specialties,
			Rating:             e.reputation.Rating,
			TotalRatings:       e.reputation.TotalRatings,
			Location:           e.label,
			HourlyRate:         e.provider.HourlyRate,
			Experience:         e.provider.CompletedJobs,
			Distance:           e.tier,
			EstimatedCost:      e.provider.HourlyRate * s.cfg.EstimateHours,
			Availability:       e.provider.GetAvailability(),
			AvailabilityStatus: e.availability,
			ResponseTime:       responseTimeLabel(e.provider.ResponseTimeHours),
			Description:        e.provider.Description,
			ProfileImage:       e.provider.ProfileImage,
			MatchesCategory:    matches,
			MatchedSpecialty:   matched,
		})
	}

	return candidates
}

// anySubstring reports whether any folded specialty matches the folded
// filter as a substring in either direction.
func anySubstring(folded []string, filter string) bool {
	for _, s := range folded {
		if s == "" {
			continue
		}
		if strings.Contains(s, filter) || strings.Contains(filter, s) {
			return true
		}
	}
	return false
}

// categorySignal reports whether any specialty is compatible with the
// request category via the synonym table, and which one matched first.
func categorySignal(synonyms []string, specialties []string, folded []string) (bool, string) {
	for i, s := range folded {
		if s == "" {
			continue
		}
		for _, syn := range synonyms {
			if strings.Contains(s, syn) || strings.Contains(syn, s) {
				return true, specialties[i]
			}
		}
	}
	return false, ""
}

func buildRequestInfo(rc *models.RequestContext) models.MatchRequestInfo {
	info := models.MatchRequestInfo{
		ID:       rc.Request.ID,
		Category: rc.Request.Category,
	}
	info.Property.Address = rc.Property.Address
	info.Property.City = rc.Property.City
	info.Property.Region = rc.Property.Region
	return info
}

func responseTimeLabel(hours *float64) string {
	if hours == nil {
		return "Sin información"
	}
	return fmt.Sprintf("%.0f horas", *hours)
}
