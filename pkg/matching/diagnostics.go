package matching

import (
	"context"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/pkg/metrics"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// DirectoryCounter exposes the absolute provider counts the reporter needs.
type DirectoryCounter interface {
	Counts(ctx context.Context) (models.DirectoryCounts, error)
}

// Reporter explains empty match sets. Counts are taken over the whole
// directory, independent of the current filters, so the message can
// distinguish "no providers exist" from "filters are too narrow".
type Reporter struct {
	logger    ectologger.Logger
	directory DirectoryCounter
}

// NewReporter creates a new diagnostics reporter.
func NewReporter(logger ectologger.Logger, directory DirectoryCounter) *Reporter {
	return &Reporter{
		logger:    logger,
		directory: directory,
	}
}

// Diagnose computes the explanatory counts and picks a message by fixed
// decision order: nothing verified, nothing active, then filters too narrow.
func (r *Reporter) Diagnose(ctx context.Context) *models.Diagnostic {
	ctx, span := tracing.StartSpan(ctx, "matching.Reporter.Diagnose")
	defer span.End()

	counts, err := r.directory.Counts(ctx)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Warn("Failed to compute directory counts for diagnostics")
	}

	diagnostic := &models.Diagnostic{
		TotalProvidersInDB:          counts.Total,
		VerifiedProvidersInDB:       counts.Verified,
		ActiveVerifiedProvidersInDB: counts.ActiveVerified,
	}

	reason := "filters_too_narrow"
	switch {
	case counts.Verified == 0:
		reason = "none_verified"
		diagnostic.Message = "No hay proveedores verificados en la plataforma"
		diagnostic.Suggestion = "Los proveedores deben ser aprobados por un administrador antes de aparecer en los resultados"
	case counts.ActiveVerified == 0:
		reason = "none_active"
		diagnostic.Message = "Hay proveedores verificados pero ninguno está activo"
		diagnostic.Suggestion = "Revisa el estado de actividad de los proveedores verificados"
	default:
		diagnostic.Message = "Ningún proveedor coincide con los filtros aplicados"
		diagnostic.Suggestion = "Prueba ampliando la ubicación o quitando el filtro de especialidad"
	}

	metrics.DiagnosticsEmitted.WithLabelValues(reason).Inc()
	return diagnostic
}
