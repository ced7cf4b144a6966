package job

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/clover/pkg/database"
	"github.com/Ramsey-B/clover/pkg/tracing"
	"github.com/Ramsey-B/clover/pkg/workload"
)

// Repository reads the job ledger
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new job ledger repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// CountActive counts a provider's jobs whose status is in the in-flight set.
// Status casing is upstream-inconsistent, so comparison is case-insensitive.
func (r *Repository) CountActive(ctx context.Context, providerID string) (int, error) {
	ctx, span := tracing.StartSpan(ctx, "job.Repository.CountActive")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From("jobs")
	sb.Where(
		sb.Equal("provider_id", providerID),
		sb.In("LOWER(status)", sqlbuilder.List(workload.InFlightStatuses)),
	)

	query, args := sb.Build()
	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"provider_id": providerID}).Error("Failed to count active jobs")
		return 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to count active jobs")
	}

	return count, nil
}
