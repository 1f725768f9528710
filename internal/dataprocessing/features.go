package dataprocessing

import (
	"cabgap/internal/errors"
	"cabgap/pkg/contracts/domain"
)

// EnrichedRequest couples a cleaned request with its derived time features.
type EnrichedRequest struct {
	domain.TripRequest

	Day  int             // calendar day-of-month of the request
	Hour int             // hour-of-day, 0-23
	Slot domain.TimeSlot // fixed bucket derived from Hour
}

// DeriveFeatures computes the day, hour, and time slot of every request.
// The slot mapping is total over parsed timestamps, so an error here means
// a bug upstream rather than bad input.
func DeriveFeatures(records []domain.TripRequest) ([]EnrichedRequest, error) {
	enriched := make([]EnrichedRequest, 0, len(records))

	for _, record := range records {
		hour := record.RequestHour()
		slot, err := domain.SlotForHour(hour)
		if err != nil {
			return nil, errors.NewValidationError("request hour outside the slot partition", err).
				WithContext("request_id", record.RequestID)
		}

		enriched = append(enriched, EnrichedRequest{
			TripRequest: record,
			Day:         record.RequestDay(),
			Hour:        hour,
			Slot:        slot,
		})
	}

	return enriched, nil
}
