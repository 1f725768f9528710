package domain

import "time"

// PickupPoint is the origin of a cab request.
type PickupPoint string

const (
	PickupCity    PickupPoint = "City"
	PickupAirport PickupPoint = "Airport"
)

// PickupPoints lists the known pickup points in display order.
var PickupPoints = []PickupPoint{PickupCity, PickupAirport}

// Status is the terminal state of a cab request.
type Status string

const (
	StatusTripCompleted   Status = "Trip Completed"
	StatusCancelled       Status = "Cancelled"
	StatusNoCarsAvailable Status = "No Cars Available"
)

// TripRequest is a single cab request after cleaning.
//
// DriverID is nil exactly when no driver was assigned (Status is
// "No Cars Available"); DropTime is non-nil exactly when the trip completed.
// Both invariants are enforced by the cleaner, not here.
type TripRequest struct {
	RequestID   int64       `json:"request_id" validate:"required"`
	PickupPoint PickupPoint `json:"pickup_point" validate:"required,oneof=City Airport"`
	DriverID    *int64      `json:"driver_id,omitempty"`
	Status      Status      `json:"status" validate:"required,oneof='Trip Completed' 'Cancelled' 'No Cars Available'"`
	RequestTime time.Time   `json:"request_time" validate:"required"`
	DropTime    *time.Time  `json:"drop_time,omitempty"`
}

// RequestDay returns the calendar day-of-month of the request.
func (r TripRequest) RequestDay() int {
	return r.RequestTime.Day()
}

// RequestHour returns the hour-of-day (0-23) of the request.
func (r TripRequest) RequestHour() int {
	return r.RequestTime.Hour()
}

// Completed reports whether the request ended in a finished trip.
func (r TripRequest) Completed() bool {
	return r.Status == StatusTripCompleted
}
