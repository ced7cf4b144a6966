package provider

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/clover/pkg/database"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// Repository reads the provider directory
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new provider directory repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

const providerColumns = "id, user_id, business_name, specialty, specialties_raw, hourly_rate, " +
	"completed_jobs, response_time_hours, address, city, region, is_verified, status, " +
	"description, profile_image, availability, created_at, updated_at"

// ListEligible returns providers passing the verification + activity-status
// precondition, optionally narrowed by location scope.
func (r *Repository) ListEligible(ctx context.Context, scope models.PoolScope) ([]models.Provider, error) {
	ctx, span := tracing.StartSpan(ctx, "provider.Repository.ListEligible")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(providerColumns)
	sb.From("providers")
	sb.Where(
		sb.Equal("is_verified", true),
		sb.In("LOWER(status)", sqlbuilder.List(models.EligibleStatuses)),
	)

	switch scope.Kind {
	case models.LocationScopeSameCity:
		if scope.City != "" {
			sb.Where(sb.Equal("city", scope.City))
		}
	case models.LocationScopeSameRegion:
		if scope.Region != "" {
			// An empty scope city would match providers with an empty city
			// column, so it only widens the region match when present.
			if scope.City != "" {
				sb.Where(sb.Or(
					sb.Equal("city", scope.City),
					sb.Equal("region", scope.Region),
				))
			} else {
				sb.Where(sb.Equal("region", scope.Region))
			}
		}
	}

	sb.OrderBy("created_at ASC")

	query, args := sb.Build()
	var providers []models.Provider
	if err := r.db.SelectContext(ctx, &providers, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list eligible providers")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list providers")
	}

	return providers, nil
}

// Counts returns absolute, filter-independent counts over the whole
// directory for the diagnostics reporter.
func (r *Repository) Counts(ctx context.Context) (models.DirectoryCounts, error) {
	ctx, span := tracing.StartSpan(ctx, "provider.Repository.Counts")
	defer span.End()

	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE is_verified) AS verified,
		COUNT(*) FILTER (WHERE is_verified AND LOWER(status) IN ('active', 'verified')) AS active_verified
	FROM providers`

	var counts models.DirectoryCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to count providers")
		return models.DirectoryCounts{}, httperror.NewHTTPError(http.StatusInternalServerError, "failed to count providers")
	}

	return counts, nil
}
