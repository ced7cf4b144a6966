package servicerequest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/clover/pkg/database"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// Repository reads service requests and their linked properties
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new service request repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type requestWithPropertyRow struct {
	RequestID       string  `db:"request_id"`
	Category        string  `db:"category"`
	Title           string  `db:"title"`
	Description     string  `db:"description"`
	PropertyID      string  `db:"property_id"`
	PropertyAddress *string `db:"property_address"`
	PropertyCity    *string `db:"property_city"`
	PropertyRegion  *string `db:"property_region"`
}

// GetWithProperty resolves a request and its property context in one read.
// Returns a 404 httperror when the request id is unknown.
func (r *Repository) GetWithProperty(ctx context.Context, id string) (*models.RequestContext, error) {
	ctx, span := tracing.StartSpan(ctx, "servicerequest.Repository.GetWithProperty")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(
		"r.id AS request_id",
		"r.category",
		"r.title",
		"r.description",
		"p.id AS property_id",
		"p.address AS property_address",
		"p.city AS property_city",
		"p.region AS property_region",
	)
	sb.From("service_requests r")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "properties p", "p.id = r.property_id")
	sb.Where(sb.Equal("r.id", id))

	query, args := sb.Build()
	var row requestWithPropertyRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if strings.Contains(err.Error(), "no rows in result set") {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("service request %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"request_id": id}).Error("Failed to get service request")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get service request")
	}

	result := &models.RequestContext{
		Request: models.ServiceRequest{
			ID:          row.RequestID,
			PropertyID:  row.PropertyID,
			Category:    row.Category,
			Title:       row.Title,
			Description: row.Description,
		},
		Property: models.Property{
			ID: row.PropertyID,
		},
	}
	if row.PropertyAddress != nil {
		result.Property.Address = *row.PropertyAddress
	}
	if row.PropertyCity != nil {
		result.Property.City = *row.PropertyCity
	}
	if row.PropertyRegion != nil {
		result.Property.Region = *row.PropertyRegion
	}

	return result, nil
}
