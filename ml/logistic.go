package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

const (
	artifactVersion = 1

	learningRate   = 0.1
	maxIterations  = 1000
	convergenceTol = 1e-6
)

// LogisticRegression is a binary classifier over the frozen feature
// columns. Training weights the positive class by the inverse class ratio
// so the minority delay rate does not collapse into always predicting 0.
type LogisticRegression struct {
	weights      []float64
	bias         float64
	features     []string
	trained      bool
	artifactPath string
}

func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{features: FeatureNames()}
}

// BindArtifact makes Train persist the fitted parameters to path as a
// side effect of a successful fit.
func (m *LogisticRegression) BindArtifact(path string) {
	m.artifactPath = path
}

func (m *LogisticRegression) Trained() bool { return m.trained }

// FeatureOrder returns the column ordering the model was trained against.
func (m *LogisticRegression) FeatureOrder() []string {
	names := make([]string, len(m.features))
	copy(names, m.features)
	return names
}

// Train fits the decision boundary by class-weighted batch gradient
// descent. Weights start at zero and rows are visited in input order, so
// the fit is deterministic for a given dataset.
func (m *LogisticRegression) Train(features [][]float64, labels []int) error {
	if len(features) == 0 || len(labels) == 0 {
		return errors.New("features or labels empty")
	}
	if len(features) != len(labels) {
		return errors.New("features and labels size mismatch")
	}
	width := len(m.features)
	var n0, n1 int
	for i, row := range features {
		if len(row) != width {
			return fmt.Errorf("row %d has %d columns, want %d", i, len(row), width)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("row %d column %d is not finite", i, j)
			}
		}
		switch labels[i] {
		case 0:
			n0++
		case 1:
			n1++
		default:
			return fmt.Errorf("label %d at row %d is not binary", labels[i], i)
		}
	}
	if n0 == 0 || n1 == 0 {
		return errors.New("training data contains a single class")
	}

	posWeight := float64(n0) / float64(n1)

	weights := make([]float64, width)
	bias := 0.0
	grad := make([]float64, width)
	for iter := 0; iter < maxIterations; iter++ {
		for j := range grad {
			grad[j] = 0
		}
		biasGrad := 0.0
		for i, row := range features {
			p := sigmoid(dot(weights, row) + bias)
			w := 1.0
			if labels[i] == 1 {
				w = posWeight
			}
			residual := w * (p - float64(labels[i]))
			for j, v := range row {
				grad[j] += residual * v
			}
			biasGrad += residual
		}
		scale := learningRate / float64(len(features))
		maxStep := 0.0
		for j := range weights {
			step := scale * grad[j]
			weights[j] -= step
			if s := math.Abs(step); s > maxStep {
				maxStep = s
			}
		}
		biasStep := scale * biasGrad
		bias -= biasStep
		if s := math.Abs(biasStep); s > maxStep {
			maxStep = s
		}
		if maxStep < convergenceTol {
			break
		}
	}

	m.weights = weights
	m.bias = bias
	m.trained = true

	if m.artifactPath != "" {
		if err := m.Save(m.artifactPath); err != nil {
			return fmt.Errorf("save artifact: %w", err)
		}
	}
	return nil
}

// PredictProba returns the delay probability for a single encoded row.
func (m *LogisticRegression) PredictProba(row []float64) (float64, error) {
	if !m.trained {
		return 0, ErrNotTrained
	}
	if len(row) != len(m.weights) {
		return 0, fmt.Errorf("row has %d columns, want %d", len(row), len(m.weights))
	}
	return sigmoid(dot(m.weights, row) + m.bias), nil
}

// Predict thresholds the delay probability at 0.5 for each row, one label
// per row in input order.
func (m *LogisticRegression) Predict(features [][]float64) ([]int, error) {
	if !m.trained {
		return nil, ErrNotTrained
	}
	labels := make([]int, len(features))
	for i, row := range features {
		p, err := m.PredictProba(row)
		if err != nil {
			return nil, err
		}
		if p >= 0.5 {
			labels[i] = 1
		}
	}
	return labels, nil
}

type artifact struct {
	Version  int       `json:"version"`
	Weights  []float64 `json:"weights"`
	Bias     float64   `json:"bias"`
	Features []string  `json:"features"`
}

func (m *LogisticRegression) Save(path string) error {
	if !m.trained {
		return ErrNotTrained
	}
	payload, err := json.Marshal(artifact{
		Version:  artifactVersion,
		Weights:  m.weights,
		Bias:     m.bias,
		Features: m.features,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func (m *LogisticRegression) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var a artifact
	if err := json.Unmarshal(payload, &a); err != nil {
		return err
	}
	if a.Version != artifactVersion {
		return fmt.Errorf("unsupported artifact version %d", a.Version)
	}
	if len(a.Weights) != len(a.Features) {
		return fmt.Errorf("artifact has %d weights for %d features", len(a.Weights), len(a.Features))
	}
	m.weights = a.Weights
	m.bias = a.Bias
	m.features = a.Features
	m.trained = true
	return nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
