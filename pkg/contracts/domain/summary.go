package domain

// SummaryRow is one row of the supply-demand summary: a (time slot, pickup
// point) group with its request counts.
//
// Demand counts every request in the group, Supply counts the completed
// trips, and Gap is the unmet demand (Demand - Supply). Combinations with no
// records are simply absent from the summary.
type SummaryRow struct {
	TimeSlot    TimeSlot    `json:"time_slot" csv:"TimeSlot"`
	PickupPoint PickupPoint `json:"pickup_point" csv:"PickupPoint"`
	Demand      int64       `json:"demand" csv:"Demand"`
	Supply      int64       `json:"supply" csv:"Supply"`
	Gap         int64       `json:"gap" csv:"Gap"`
}
