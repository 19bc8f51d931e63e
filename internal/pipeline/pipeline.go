package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/couchcryptid/air-quality-dashboard/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Extractor loads the dataset from its source.
type Extractor interface {
	Load(ctx context.Context, path string) (domain.Dataset, error)
}

// Result is the output of one pipeline run.
type Result struct {
	Views       domain.Views
	Rows        int
	GeneratedAt time.Time
}

// Pipeline loads the dataset and derives the dashboard views. Each Run is
// independent: the file is re-read every time and nothing is cached.
type Pipeline struct {
	extractor Extractor
	dataPath  string
	opts      domain.Options
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

// New creates a Pipeline reading from dataPath. A nil clock uses real time.
func New(e Extractor, dataPath string, opts domain.Options, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Pipeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		extractor: e,
		dataPath:  dataPath,
		opts:      opts,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
	}
}

// CheckReadiness returns nil when the data file exists and is a regular file.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	info, err := os.Stat(p.dataPath)
	if err != nil {
		return fmt.Errorf("data file unavailable: %w", err)
	}
	if info.IsDir() {
		return errors.New("data path is a directory")
	}
	return nil
}

// Run loads the dataset and computes all views. Load failures are returned;
// missing columns and insufficient data only produce placeholder views.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := p.clock.Now()

	ds, err := p.extractor.Load(ctx, p.dataPath)
	if err != nil {
		p.metrics.LoadErrors.Inc()
		p.logger.Error("load dataset failed", "error", err, "path", p.dataPath)
		return Result{}, fmt.Errorf("run pipeline: %w", err)
	}
	p.metrics.DatasetRows.Observe(float64(len(ds.Records)))

	views := domain.ComputeViews(ds, p.opts)
	for _, name := range domain.ViewNames {
		if msg, ok := domain.IsPlaceholder(views[name]); ok {
			p.metrics.ViewPlaceholders.WithLabelValues(name).Inc()
			p.logger.Debug("view degraded to placeholder", "view", name, "reason", msg)
		}
	}

	elapsed := p.clock.Since(start)
	p.metrics.AggregationDuration.Observe(elapsed.Seconds())
	p.logger.Info("dashboard views computed",
		"rows", len(ds.Records),
		"duration_ms", elapsed.Milliseconds(),
	)

	return Result{
		Views:       views,
		Rows:        len(ds.Records),
		GeneratedAt: p.clock.Now(),
	}, nil
}
