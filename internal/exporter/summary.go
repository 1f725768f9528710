package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"cabgap/internal/config"
	"cabgap/internal/errors"
	"cabgap/pkg/contracts"
	"cabgap/pkg/contracts/domain"
)

// summaryHeaders is the column order of every summary export.
var summaryHeaders = []string{"TimeSlot", "PickupPoint", "Demand", "Supply", "Gap"}

// SummaryWriter exports the supply-demand summary table. Row order is taken
// as given; callers sort before exporting if presentation order matters.
type SummaryWriter struct {
	logger *slog.Logger
	paths  *config.Paths
	csv    *CSVWriter
}

// NewSummaryWriter creates a summary writer rooted at the given paths.
func NewSummaryWriter(logger *slog.Logger, paths *config.Paths) *SummaryWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryWriter{
		logger: logger,
		paths:  paths,
		csv:    NewCSVWriter(paths),
	}
}

// WriteCSV writes the summary to supply_demand.csv in the reports directory.
func (w *SummaryWriter) WriteCSV(ctx context.Context, rows []domain.SummaryRow) error {
	w.logger.InfoContext(ctx, "writing supply-demand summary to CSV",
		slog.String("path", w.paths.SupplyDemandCSV),
		slog.Int("row_count", len(rows)))

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			string(row.TimeSlot),
			string(row.PickupPoint),
			formatInt(row.Demand),
			formatInt(row.Supply),
			formatInt(row.Gap),
		})
	}

	if err := w.csv.WriteSimpleCSV(w.paths.SupplyDemandCSV, summaryHeaders, records); err != nil {
		return errors.NewStorageError("failed to write supply-demand CSV", err)
	}
	return nil
}

// WriteJSON writes the summary with metadata to supply_demand.json.
func (w *SummaryWriter) WriteJSON(ctx context.Context, rows []domain.SummaryRow) error {
	path := w.paths.SupplyDemandJSON
	w.logger.InfoContext(ctx, "writing supply-demand summary to JSON",
		slog.String("path", path),
		slog.Int("row_count", len(rows)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for JSON output", err)
	}

	jsonData := map[string]interface{}{
		"rows":         rows,
		"count":        len(rows),
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "supply_demand_" + contracts.DataFormatVersion,
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create JSON file for summary", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonData); err != nil {
		return errors.NewStorageError("failed to encode summary to JSON", err)
	}

	return nil
}

// WriteXLSX writes the summary to supply_demand.xlsx with a bold header row,
// ready for spreadsheet charting.
func (w *SummaryWriter) WriteXLSX(ctx context.Context, rows []domain.SummaryRow) error {
	path := w.paths.SupplyDemandXLSX
	w.logger.InfoContext(ctx, "writing supply-demand summary to XLSX",
		slog.String("path", path),
		slog.Int("row_count", len(rows)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for XLSX output", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "SupplyDemand"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.NewStorageError("failed to compute header cell name", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return errors.NewStorageError("failed to write XLSX header", err)
		}
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.NewStorageError("failed to create XLSX header style", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", boldStyle); err != nil {
		return errors.NewStorageError("failed to style XLSX header", err)
	}

	for i, row := range rows {
		values := []interface{}{
			string(row.TimeSlot),
			string(row.PickupPoint),
			row.Demand,
			row.Supply,
			row.Gap,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return errors.NewStorageError("failed to compute cell name", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errors.NewStorageError(
					fmt.Sprintf("failed to write XLSX row %d", i+1), err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save XLSX file", err)
	}

	return nil
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}
