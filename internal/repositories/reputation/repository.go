package reputation

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

// Repository reads the unified ratings store
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new reputation repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type summaryRow struct {
	Rating       float64 `db:"rating"`
	TotalRatings int     `db:"total_ratings"`
}

// Summary aggregates a user's ratings across every role they hold. A user
// with no ratings yields the zero summary, not an error.
func (r *Repository) Summary(ctx context.Context, userID string) (models.ReputationSummary, error) {
	ctx, span := tracing.StartSpan(ctx, "reputation.Repository.Summary")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(
		"COALESCE(AVG(rating), 0) AS rating",
		"COUNT(*) AS total_ratings",
	)
	sb.From("ratings")
	sb.Where(sb.Equal("ratee_user_id", userID))

	query, args := sb.Build()
	var row summaryRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"user_id": userID}).Error("Failed to aggregate ratings")
		return models.ReputationSummary{}, httperror.NewHTTPError(http.StatusInternalServerError, "failed to aggregate ratings")
	}

	return models.ReputationSummary{
		UserID:       userID,
		Rating:       row.Rating,
		TotalRatings: row.TotalRatings,
	}, nil
}
