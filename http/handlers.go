package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"flightdelay/flights"
	"flightdelay/ml"
	"flightdelay/monitoring"
)

// delayModel is process-wide read-only state: set once at startup (or by
// tests), never mutated while serving. Predictions are pure reads, so no
// locking is needed.
var delayModel ml.DelayPredictor

func SetDelayModel(model ml.DelayPredictor) {
	delayModel = model
}

func RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("POST /predict", handlePredict)
	mux.Handle("GET /metrics", promhttp.Handler())
}

type predictRequest struct {
	Flights []flights.FlightRecord `json:"flights"`
}

type predictResponse struct {
	Predictions []int `json:"predictions"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func handlePredict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	monitoring.PredictionRequests.Inc()

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		monitoring.ValidationRejections.WithLabelValues("body").Inc()
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := flights.ValidateBatch(req.Flights); err != nil {
		var verr *flights.ValidationError
		field := "flights"
		if errors.As(err, &verr) {
			field = verr.Field
		}
		monitoring.ValidationRejections.WithLabelValues(field).Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	labels, err := predictBatch(req.Flights)
	if err != nil {
		monitoring.PredictionErrors.Inc()
		if errors.Is(err, ml.ErrNotTrained) {
			log.Error("predict called with untrained model",
				zap.String("request_id", GetRequestID(r.Context())))
			writeError(w, http.StatusInternalServerError, "model not trained")
			return
		}
		log.Error("prediction failed",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "an internal error occurred")
		return
	}

	monitoring.PredictedFlights.Add(float64(len(labels)))
	monitoring.PredictionLatency.Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, predictResponse{Predictions: labels})
}

// predictBatch scores the batch, serving repeated single records out of
// the LRU cache and batching the rest through the model. Output order
// always matches input order.
func predictBatch(records []flights.FlightRecord) ([]int, error) {
	model := delayModel
	if model == nil {
		return nil, ml.ErrNotTrained
	}

	labels := make([]int, len(records))
	missing := make([]int, 0, len(records))
	for i, record := range records {
		if label, ok := cacheGet(record); ok {
			labels[i] = label
			monitoring.CacheHits.Inc()
			continue
		}
		monitoring.CacheMisses.Inc()
		missing = append(missing, i)
	}

	if len(missing) > 0 {
		subset := make([]flights.FlightRecord, len(missing))
		for j, i := range missing {
			subset[j] = records[i]
		}
		predicted, err := model.Predict(ml.Encode(subset))
		if err != nil {
			return nil, err
		}
		for j, i := range missing {
			labels[i] = predicted[j]
			cacheAdd(records[i], predicted[j])
		}
	}

	return labels, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
