// Package engine orchestrates full-table recomputations over the immutable
// reference tables. Every request runs the same synchronous two-phase pass:
// derive all footprints, then compute percentile thresholds and classify.
// There is no incremental update and no cached intermediate state; the only
// state the engine holds is the caller-owned reference data.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/impactatlas/county-footprint/internal/domain"
	"github.com/impactatlas/county-footprint/internal/observability"
)

// ErrInvalidMetric reports an unrecognized metric selection.
var ErrInvalidMetric = errors.New("invalid metric")

// ErrInvalidNotation reports an unrecognized display notation.
var ErrInvalidNotation = errors.New("invalid notation")

// ErrNegativeInput reports a negative consumption value. The contract says
// inputs are non-negative reals; the engine rejects violations rather than
// computing nonsense footprints.
var ErrNegativeInput = errors.New("negative input value")

// Engine computes classified county metric tables from user input.
type Engine struct {
	universe []string
	counties map[string]domain.CountyRecord
	factors  map[string]domain.FactorRecord

	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// New creates an Engine over the given reference data. The maps and slice are
// retained as-is and must not be mutated afterwards.
func New(
	universe []string,
	counties map[string]domain.CountyRecord,
	factors map[string]domain.FactorRecord,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Engine {
	e := &Engine{
		universe: universe,
		counties: counties,
		factors:  factors,
		logger:   logger,
		metrics:  metrics,
	}

	missing := 0
	for _, fips := range universe {
		if _, ok := factors[fips]; !ok {
			missing++
		}
	}
	metrics.UniverseSize.Set(float64(len(universe)))
	metrics.CountiesMissingFactors.Set(float64(missing))

	logger.Info("engine initialized",
		"universe", len(universe),
		"reference_counties", len(counties),
		"factor_counties", len(factors),
		"missing_factors", missing,
	)

	return e
}

// CheckReadiness returns nil once the engine holds a non-empty universe and
// has served at least one recomputation.
func (e *Engine) CheckReadiness(_ context.Context) error {
	if len(e.universe) == 0 {
		return errors.New("county universe is empty")
	}
	if !e.ready.Load() {
		return errors.New("engine has not computed any tables yet")
	}
	return nil
}

// Compute validates the request and produces the full classified table: one
// row per universe county, thresholds for the selected metric, formatted in
// the given notation. Defaults: carbon metric, fixed notation.
func (e *Engine) Compute(input domain.UserInput, metric domain.Metric, notation domain.Notation) (domain.Table, error) {
	start := time.Now()

	if metric == "" {
		metric = domain.MetricCarbon
	}
	if notation == "" {
		notation = domain.NotationFixed
	}

	if err := e.validate(input, metric, notation); err != nil {
		e.metrics.InvalidInputs.Inc()
		e.metrics.RecomputeErrors.Inc()
		return domain.Table{}, err
	}

	normalized, err := domain.NormalizeInput(input)
	if err != nil {
		// Unit validation above makes this unreachable, but the converter's
		// contract stands on its own.
		e.metrics.InvalidInputs.Inc()
		e.metrics.RecomputeErrors.Inc()
		return domain.Table{}, err
	}

	table := domain.BuildTable(e.universe, e.counties, e.factors, normalized, metric, notation)

	for _, row := range table.Rows {
		e.metrics.RowsClassified.WithLabelValues(row.Category.String()).Inc()
	}
	e.metrics.Recomputes.Inc()
	e.metrics.RecomputeDuration.Observe(time.Since(start).Seconds())
	e.ready.Store(true)

	e.logger.Debug("table recomputed",
		"metric", string(metric),
		"rows", len(table.Rows),
		"thresholds_valid", table.Thresholds.Valid,
		"duration", time.Since(start),
	)

	return table, nil
}

func (e *Engine) validate(input domain.UserInput, metric domain.Metric, notation domain.Notation) error {
	if input.PowerValue < 0 {
		return fmt.Errorf("%w: power_value %g", ErrNegativeInput, input.PowerValue)
	}
	if input.WaterValue < 0 {
		return fmt.Errorf("%w: water_value %g", ErrNegativeInput, input.WaterValue)
	}
	if _, err := domain.ConvertPower(0, input.PowerUnit); err != nil {
		return err
	}
	if _, err := domain.ConvertWater(0, input.WaterUnit); err != nil {
		return err
	}
	if !metric.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMetric, metric)
	}
	if !notation.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
	return nil
}
