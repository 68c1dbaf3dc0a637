package ml

import "errors"

// DelayPredictor is the contract the serving layer depends on.
type DelayPredictor interface {
	Train(features [][]float64, labels []int) error
	Predict(features [][]float64) ([]int, error)
	Save(path string) error
	Load(path string) error
}

// ErrNotTrained is returned by Predict before a successful Train or Load.
// It indicates a deployment defect, not a client mistake.
var ErrNotTrained = errors.New("model not trained")
