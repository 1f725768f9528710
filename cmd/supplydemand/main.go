package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"cabgap/internal/config"
	"cabgap/internal/dataprocessing"
	"cabgap/internal/exporter"
	"cabgap/internal/infrastructure"
	"cabgap/pkg/contracts"
	"cabgap/pkg/contracts/domain"
)

func main() {
	in := flag.String("in", "", "input requests csv (defaults to data/downloads/cab_requests.csv relative to executable)")
	out := flag.String("out", "", "reports directory (defaults to data/reports relative to executable)")
	format := flag.String("format", "all", "export format: csv | json | xlsx | all")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// CLI flags override configured paths.
	if *in != "" {
		cfg.Paths.InputCSV = *in
	}
	if *out != "" {
		cfg.Paths.ReportsDir = *out
	}

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	shutdownTracing, err := infrastructure.InitTracing(cfg.Tracing)
	if err != nil {
		logger.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("Failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	logger.InfoContext(ctx, "Starting supply-demand analysis",
		slog.String("input_csv", paths.RequestsCSV),
		slog.String("reports_dir", paths.ReportsDir),
		slog.String("format", *format))

	pipeline := dataprocessing.NewPipeline(logger)
	result, err := pipeline.Run(ctx, paths.RequestsCSV)
	if err != nil {
		logger.ErrorContext(ctx, "Pipeline failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := export(ctx, logger, paths, *format, result); err != nil {
		logger.ErrorContext(ctx, "Export failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	printSummary(result.Summary)

	logger.InfoContext(ctx, "Supply-demand analysis completed",
		slog.Int("record_count", len(result.Requests)),
		slog.Int("group_count", len(result.Summary)))
}

func export(ctx context.Context, logger *slog.Logger, paths *config.Paths, format string, result *dataprocessing.Result) error {
	writer := exporter.NewSummaryWriter(logger, paths)

	switch format {
	case "csv":
		return writer.WriteCSV(ctx, result.Summary)
	case "json":
		return writer.WriteJSON(ctx, result.Summary)
	case "xlsx":
		return writer.WriteXLSX(ctx, result.Summary)
	case "all":
		if err := writer.WriteCSV(ctx, result.Summary); err != nil {
			return err
		}
		if err := writer.WriteJSON(ctx, result.Summary); err != nil {
			return err
		}
		if err := writer.WriteXLSX(ctx, result.Summary); err != nil {
			return err
		}
		return writer.WriteHourlyCSV(ctx, exporter.BuildHourlyProfile(result.Requests))
	default:
		return fmt.Errorf("unknown format %q (want csv, json, xlsx, or all)", format)
	}
}

// printSummary renders the summary to stdout sorted by decreasing gap. The
// sort is purely presentational; exported tables keep slot order.
func printSummary(summary []domain.SummaryRow) {
	rows := make([]domain.SummaryRow, len(summary))
	copy(rows, summary)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Gap > rows[j].Gap })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME SLOT\tPICKUP POINT\tDEMAND\tSUPPLY\tGAP")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
			row.TimeSlot, row.PickupPoint, row.Demand, row.Supply, row.Gap)
	}
	w.Flush()
}
