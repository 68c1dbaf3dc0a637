package ml

import (
	"errors"
	"fmt"
	"time"

	"flightdelay/flights"
)

// DelayThresholdMinutes binarizes departure delay into the training label.
const DelayThresholdMinutes = 15.0

func MinutesLate(scheduled, actual time.Time) float64 {
	return actual.Sub(scheduled).Minutes()
}

// DelayLabel returns 1 when the flight left at least 15 minutes late.
func DelayLabel(scheduled, actual time.Time) int {
	if MinutesLate(scheduled, actual) >= DelayThresholdMinutes {
		return 1
	}
	return 0
}

// GenerateLabels derives the binary target vector for a historical batch.
// Only the training path calls this; inference records carry no
// timestamps.
func GenerateLabels(records []flights.FlightRecord) ([]int, error) {
	if len(records) == 0 {
		return nil, errors.New("records is empty")
	}
	labels := make([]int, len(records))
	for i, r := range records {
		if r.ScheduledDeparture.IsZero() || r.ActualDeparture.IsZero() {
			return nil, fmt.Errorf("record %d has no departure timestamps", i)
		}
		labels[i] = DelayLabel(r.ScheduledDeparture, r.ActualDeparture)
	}
	return labels, nil
}
