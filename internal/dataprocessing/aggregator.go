package dataprocessing

import (
	"sort"

	"cabgap/pkg/contracts/domain"
)

// Aggregate groups enriched requests by (time slot, pickup point) and
// computes per group: demand (all requests), supply (completed trips), and
// gap (demand - supply). Combinations with no records are absent from the
// output rather than emitted as zero rows.
//
// Grouping is order-independent. Rows are returned sorted by slot order then
// pickup point purely for stable output; callers needing a display order
// (e.g. decreasing gap) sort explicitly.
func Aggregate(records []EnrichedRequest) []domain.SummaryRow {
	type groupKey struct {
		slot   domain.TimeSlot
		pickup domain.PickupPoint
	}

	groups := make(map[groupKey]*domain.SummaryRow)
	for _, record := range records {
		key := groupKey{record.Slot, record.PickupPoint}
		row, ok := groups[key]
		if !ok {
			row = &domain.SummaryRow{TimeSlot: record.Slot, PickupPoint: record.PickupPoint}
			groups[key] = row
		}
		row.Demand++
		if record.Completed() {
			row.Supply++
		}
	}

	rows := make([]domain.SummaryRow, 0, len(groups))
	for _, row := range groups {
		row.Gap = row.Demand - row.Supply
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TimeSlot != rows[j].TimeSlot {
			return domain.SlotIndex(rows[i].TimeSlot) < domain.SlotIndex(rows[j].TimeSlot)
		}
		return rows[i].PickupPoint < rows[j].PickupPoint
	})

	return rows
}
