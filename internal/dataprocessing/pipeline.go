package dataprocessing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cabgap/internal/infrastructure"
	"cabgap/pkg/contracts/domain"
)

// Pipeline runs the load -> clean -> derive -> aggregate chain over one
// input file. Stages execute synchronously; the first error aborts the run.
type Pipeline struct {
	logger  *slog.Logger
	cleaner *Cleaner
	tracer  trace.Tracer
}

// NewPipeline creates a pipeline logging to the given logger.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger:  logger,
		cleaner: NewCleaner(logger),
		tracer:  infrastructure.Tracer(),
	}
}

// Result holds the outputs of one pipeline run.
type Result struct {
	Requests []EnrichedRequest
	Summary  []domain.SummaryRow
}

// Run executes the full pipeline over the input file.
func (p *Pipeline) Run(ctx context.Context, inputPath string) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.run",
		trace.WithAttributes(attribute.String("input.path", inputPath)))
	defer span.End()

	p.logger.InfoContext(ctx, "starting supply-demand pipeline",
		slog.String("input_path", inputPath))

	table, err := p.load(ctx, inputPath)
	if err != nil {
		return nil, failSpan(span, err)
	}

	records, err := p.clean(ctx, table)
	if err != nil {
		return nil, failSpan(span, err)
	}

	enriched, err := p.derive(ctx, records)
	if err != nil {
		return nil, failSpan(span, err)
	}

	summary := p.aggregate(ctx, enriched)

	var totalDemand, totalSupply int64
	for _, row := range summary {
		totalDemand += row.Demand
		totalSupply += row.Supply
	}
	p.logger.InfoContext(ctx, "pipeline complete",
		slog.Int("record_count", len(enriched)),
		slog.Int("group_count", len(summary)),
		slog.Int64("total_demand", totalDemand),
		slog.Int64("total_supply", totalSupply),
		slog.Int64("total_gap", totalDemand-totalSupply))

	return &Result{Requests: enriched, Summary: summary}, nil
}

func (p *Pipeline) load(ctx context.Context, path string) (*RawTable, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.load")
	defer span.End()
	return LoadRawTable(ctx, p.logger, path)
}

func (p *Pipeline) clean(ctx context.Context, table *RawTable) ([]domain.TripRequest, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.clean")
	defer span.End()

	records, err := p.cleaner.Clean(ctx, table)
	if err != nil {
		return nil, err
	}
	if err := VerifyDistinct(records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *Pipeline) derive(ctx context.Context, records []domain.TripRequest) ([]EnrichedRequest, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.derive")
	defer span.End()

	enriched, err := DeriveFeatures(records)
	if err != nil {
		return nil, err
	}
	p.logger.DebugContext(ctx, "derived time features",
		slog.Int("record_count", len(enriched)))
	return enriched, nil
}

func (p *Pipeline) aggregate(ctx context.Context, records []EnrichedRequest) []domain.SummaryRow {
	ctx, span := p.tracer.Start(ctx, "pipeline.aggregate")
	defer span.End()

	summary := Aggregate(records)
	p.logger.DebugContext(ctx, "aggregated supply-demand groups",
		slog.Int("group_count", len(summary)))
	return summary
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
