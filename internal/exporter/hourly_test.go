package exporter

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabgap/internal/dataprocessing"
	"cabgap/pkg/contracts/domain"
)

func enrichedAt(t *testing.T, id int64, pickup domain.PickupPoint, hour int) dataprocessing.EnrichedRequest {
	t.Helper()

	driver := int64(300 + id)
	slot, err := domain.SlotForHour(hour)
	require.NoError(t, err)

	return dataprocessing.EnrichedRequest{
		TripRequest: domain.TripRequest{
			RequestID:   id,
			PickupPoint: pickup,
			DriverID:    &driver,
			Status:      domain.StatusCancelled,
			RequestTime: time.Date(2016, time.July, 15, hour, 0, 0, 0, time.UTC),
		},
		Day:  15,
		Hour: hour,
		Slot: slot,
	}
}

func TestBuildHourlyProfile(t *testing.T) {
	records := []dataprocessing.EnrichedRequest{
		enrichedAt(t, 1, domain.PickupCity, 8),
		enrichedAt(t, 2, domain.PickupCity, 8),
		enrichedAt(t, 3, domain.PickupAirport, 8),
		enrichedAt(t, 4, domain.PickupCity, 17),
	}

	profile := BuildHourlyProfile(records)

	require.Len(t, profile, 3)
	assert.Equal(t, HourlyDemand{Hour: 8, PickupPoint: domain.PickupAirport, Requests: 1}, profile[0])
	assert.Equal(t, HourlyDemand{Hour: 8, PickupPoint: domain.PickupCity, Requests: 2}, profile[1])
	assert.Equal(t, HourlyDemand{Hour: 17, PickupPoint: domain.PickupCity, Requests: 1}, profile[2])

	// Profile counts sum to the total number of records.
	var total int64
	for _, row := range profile {
		total += row.Requests
	}
	assert.Equal(t, int64(len(records)), total)
}

func TestBuildHourlyProfile_Empty(t *testing.T) {
	assert.Empty(t, BuildHourlyProfile(nil))
}

func TestSummaryWriter_WriteHourlyCSV(t *testing.T) {
	ctx := context.Background()
	paths := testPaths(t)
	writer := NewSummaryWriter(slog.Default(), paths)

	profile := BuildHourlyProfile([]dataprocessing.EnrichedRequest{
		enrichedAt(t, 1, domain.PickupCity, 5),
		enrichedAt(t, 2, domain.PickupAirport, 5),
	})
	require.NoError(t, writer.WriteHourlyCSV(ctx, profile))

	content, err := os.ReadFile(paths.HourlyDemandCSV)
	require.NoError(t, err)

	text := strings.TrimPrefix(string(content), "\xef\xbb\xbf")
	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"Hour", "PickupPoint", "Requests"}, records[0])
	assert.Equal(t, []string{"5", "Airport", "1"}, records[1])
	assert.Equal(t, []string{"5", "City", "1"}, records[2])
}
