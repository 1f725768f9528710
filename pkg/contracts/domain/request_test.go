package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTripRequest_DerivedFields(t *testing.T) {
	record := TripRequest{
		RequestID:   619,
		PickupPoint: PickupCity,
		Status:      StatusNoCarsAvailable,
		RequestTime: time.Date(2016, time.July, 11, 15, 39, 0, 0, time.UTC),
	}

	assert.Equal(t, 11, record.RequestDay())
	assert.Equal(t, 15, record.RequestHour())
	assert.False(t, record.Completed())
}

func TestTripRequest_Completed(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusTripCompleted, true},
		{StatusCancelled, false},
		{StatusNoCarsAvailable, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			record := TripRequest{Status: tt.status}
			assert.Equal(t, tt.want, record.Completed())
		})
	}
}
