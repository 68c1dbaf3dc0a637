package ml

import (
	"fmt"

	"flightdelay/flights"
)

// TopFeatures is the frozen column set selected at training time. The
// encoder always emits exactly these columns, in this order; the model
// artifact carries the same list so the contract survives restarts.
var TopFeatures = []string{
	"airline_Latin American Wings",
	"month_7",
	"month_10",
	"airline_Grupo LATAM",
	"month_12",
	"type_I",
	"month_4",
	"month_11",
	"airline_Sky Airline",
	"airline_Copa Air",
}

var topFeatureIndex = buildTopFeatureIndex()

func buildTopFeatureIndex() map[string]int {
	index := make(map[string]int, len(TopFeatures))
	for i, name := range TopFeatures {
		index[name] = i
	}
	return index
}

// FeatureNames returns a copy of the frozen column ordering.
func FeatureNames() []string {
	names := make([]string, len(TopFeatures))
	copy(names, TopFeatures)
	return names
}

// Encode one-hot encodes airline, month and flight type and reindexes the
// result to the frozen top feature columns. Generated columns outside the
// frozen set are dropped; frozen columns with no matching category stay
// zero, so every batch has the same width regardless of which categories
// appear. Inputs are assumed valid; malformed records are rejected
// upstream before reaching this layer.
func Encode(records []flights.FlightRecord) [][]float64 {
	matrix := make([][]float64, len(records))
	for i, r := range records {
		row := make([]float64, len(TopFeatures))
		setColumn(row, "airline_"+r.Airline)
		setColumn(row, fmt.Sprintf("month_%d", r.Month))
		setColumn(row, "type_"+r.FlightType)
		matrix[i] = row
	}
	return matrix
}

func setColumn(row []float64, name string) {
	if idx, ok := topFeatureIndex[name]; ok {
		row[idx] = 1
	}
}
