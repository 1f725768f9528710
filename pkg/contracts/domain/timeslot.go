package domain

import "fmt"

// TimeSlot is one of six fixed buckets partitioning the 24-hour day.
type TimeSlot string

const (
	SlotLateNight   TimeSlot = "late night"   // 00-03
	SlotMorning     TimeSlot = "morning"      // 04-07
	SlotLateMorning TimeSlot = "late morning" // 08-12
	SlotAfternoon   TimeSlot = "afternoon"    // 13-16
	SlotEvening     TimeSlot = "evening"      // 17-20
	SlotNight       TimeSlot = "night"        // 21-23
)

// TimeSlots lists the slots in chronological order.
var TimeSlots = []TimeSlot{
	SlotLateNight,
	SlotMorning,
	SlotLateMorning,
	SlotAfternoon,
	SlotEvening,
	SlotNight,
}

// SlotForHour maps an hour-of-day to its time slot. The mapping is total over
// 0-23; any other value is an error.
func SlotForHour(hour int) (TimeSlot, error) {
	switch {
	case hour < 0 || hour > 23:
		return "", fmt.Errorf("hour %d outside 0-23", hour)
	case hour <= 3:
		return SlotLateNight, nil
	case hour <= 7:
		return SlotMorning, nil
	case hour <= 12:
		return SlotLateMorning, nil
	case hour <= 16:
		return SlotAfternoon, nil
	case hour <= 20:
		return SlotEvening, nil
	default:
		return SlotNight, nil
	}
}

// SlotIndex returns the chronological position of a slot, or -1 for an
// unknown value. Used for stable ordering of summary output.
func SlotIndex(slot TimeSlot) int {
	for i, s := range TimeSlots {
		if s == slot {
			return i
		}
	}
	return -1
}
