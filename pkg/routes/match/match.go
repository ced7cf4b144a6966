// Package match exposes the provider matching endpoint
package match

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/clover/pkg/matching"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

var validate = validator.New()

// Register registers match routes
func Register(g *echo.Group) {
	g.GET("/:requestId", GetMatches)
}

type matchQuery struct {
	Location  string `validate:"omitempty,oneof=same_city same_region all"`
	Specialty string `validate:"omitempty,max=120"`
}

// GetMatches returns ranked provider candidates for a service request
func GetMatches(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "match_handler.GetMatches")
	defer span.End()

	requestID := c.Param("requestId")
	if requestID == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "requestId is required")
	}

	query := matchQuery{
		Location:  c.QueryParam("location"),
		Specialty: c.QueryParam("specialty"),
	}
	if err := validate.Struct(query); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filters := matching.Filters{
		Location:  models.LocationScopeAll,
		Specialty: query.Specialty,
	}
	if query.Location != "" {
		filters.Location = models.LocationScope(query.Location)
	}

	ctx, service, err := ectoinject.GetContext[*matching.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	response, err := service.Match(ctx, requestID, filters)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response)
}
