package flights

import "fmt"

// ValidationError reports the first invalid field found in a request
// batch. Index is the offending record's position, or -1 when the batch
// itself is malformed.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("flight %d: %s: %s", e.Index, e.Field, e.Reason)
}

// ValidateBatch checks every record against the closed category sets and
// numeric ranges before anything reaches the encoder. First failure wins.
// An empty batch is rejected: the contract promises one label per record,
// so a batch with nothing to predict is a client error.
func ValidateBatch(records []FlightRecord) error {
	if len(records) == 0 {
		return &ValidationError{Index: -1, Field: "flights", Reason: "batch is empty"}
	}
	for i, r := range records {
		if !KnownAirline(r.Airline) {
			return &ValidationError{Index: i, Field: "airline", Reason: fmt.Sprintf("unknown airline %q", r.Airline)}
		}
		if r.Month < 1 || r.Month > 12 {
			return &ValidationError{Index: i, Field: "month", Reason: fmt.Sprintf("month %d out of range [1, 12]", r.Month)}
		}
		if !ValidFlightType(r.FlightType) {
			return &ValidationError{Index: i, Field: "flight_type", Reason: fmt.Sprintf("%q is not %q or %q", r.FlightType, TypeInternational, TypeNational)}
		}
	}
	return nil
}
