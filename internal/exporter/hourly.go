package exporter

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"cabgap/internal/dataprocessing"
	"cabgap/internal/errors"
	"cabgap/pkg/contracts/domain"
)

// HourlyDemand is one row of the hour-of-day demand profile: how many
// requests arrived in a given hour from a given pickup point. This is the
// table behind the hour-of-day bar charts.
type HourlyDemand struct {
	Hour        int                `json:"hour"`
	PickupPoint domain.PickupPoint `json:"pickup_point"`
	Requests    int64              `json:"requests"`
}

// BuildHourlyProfile counts requests per (hour, pickup point). Hours with no
// requests are absent, mirroring the summary's treatment of empty groups.
func BuildHourlyProfile(records []dataprocessing.EnrichedRequest) []HourlyDemand {
	type key struct {
		hour   int
		pickup domain.PickupPoint
	}

	counts := make(map[key]int64)
	for _, record := range records {
		counts[key{record.Hour, record.PickupPoint}]++
	}

	profile := make([]HourlyDemand, 0, len(counts))
	for k, n := range counts {
		profile = append(profile, HourlyDemand{Hour: k.hour, PickupPoint: k.pickup, Requests: n})
	}

	sort.Slice(profile, func(i, j int) bool {
		if profile[i].Hour != profile[j].Hour {
			return profile[i].Hour < profile[j].Hour
		}
		return profile[i].PickupPoint < profile[j].PickupPoint
	})

	return profile
}

// WriteHourlyCSV writes the hourly demand profile to hourly_demand.csv.
func (w *SummaryWriter) WriteHourlyCSV(ctx context.Context, profile []HourlyDemand) error {
	w.logger.InfoContext(ctx, "writing hourly demand profile to CSV",
		slog.String("path", w.paths.HourlyDemandCSV),
		slog.Int("row_count", len(profile)))

	records := make([][]string, 0, len(profile))
	for _, row := range profile {
		records = append(records, []string{
			strconv.Itoa(row.Hour),
			string(row.PickupPoint),
			formatInt(row.Requests),
		})
	}

	headers := []string{"Hour", "PickupPoint", "Requests"}
	if err := w.csv.WriteSimpleCSV(w.paths.HourlyDemandCSV, headers, records); err != nil {
		return errors.NewStorageError("failed to write hourly demand CSV", err)
	}
	return nil
}
