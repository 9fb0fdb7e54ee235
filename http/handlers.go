package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/db"
	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/ml"
	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/pipeline"
)

// Predictor serves one budget prediction per call.
type Predictor interface {
	Predict(raw map[string]string) (pipeline.Result, error)
}

// Adviser answers one free-text financial question per call.
type Adviser interface {
	Advise(ctx context.Context, userText string) string
}

var (
	predictor         Predictor
	adviser           Adviser
	artifacts         *ml.ArtifactStore
	logger            = zap.NewNop()
	savePrediction    = db.SavePrediction
	recentPredictions = db.RecentPredictions
)

func SetPredictor(p Predictor) {
	predictor = p
}

func SetAdviser(a Adviser) {
	adviser = a
}

func SetArtifactStore(store *ml.ArtifactStore) {
	artifacts = store
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

func RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/schema", handleSchema)
	mux.HandleFunc("POST /api/predict", handlePredict)
	mux.HandleFunc("GET /api/history", handleHistory)
	mux.HandleFunc("POST /api/advice", handleAdvice)
	mux.HandleFunc("GET /api/ws/advice", handleAdviceSocket)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	ready := artifacts.Ready()
	status := "ok"
	if !ready {
		status = "degraded"
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":          status,
		"artifacts_ready": ready,
	})
}

func handleSchema(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"features": ml.FeatureNames(),
		"outputs":  ml.OutputNames(),
	})
}

func handlePredict(w http.ResponseWriter, r *http.Request) {
	if predictor == nil {
		respondError(w, http.StatusServiceUnavailable, "prediction service not initialized")
		return
	}

	var raw map[string]string
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, "request body must be a JSON object of string fields")
		return
	}

	result, err := predictor.Predict(raw)
	if err != nil {
		writePredictError(w, err)
		return
	}

	if err := savePrediction(raw, result); err != nil {
		logger.Warn("failed to record prediction", zap.Error(err))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"results": result,
		"display": formatAmounts(result),
	})
}

// writePredictError maps the pipeline error taxonomy onto HTTP statuses.
// Field errors are the caller's to fix; shape and arity failures mean the
// loaded artifacts disagree with each other.
func writePredictError(w http.ResponseWriter, err error) {
	var missing *pipeline.MissingFieldError
	var invalid *pipeline.InvalidNumberError
	var shape *pipeline.ShapeMismatchError
	var arity *pipeline.OutputArityError

	switch {
	case errors.Is(err, ml.ErrArtifactUnavailable):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &missing):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": missing.Error(),
			"field": missing.Field,
		})
	case errors.As(err, &invalid):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": invalid.Error(),
			"field": invalid.Field,
			"value": invalid.Value,
		})
	case errors.As(err, &shape):
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":    shape.Error(),
			"expected": shape.Expected,
			"actual":   shape.Actual,
		})
	case errors.As(err, &arity):
		logger.Error("output arity mismatch", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := recentPredictions(limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"predictions": records,
		"count":       len(records),
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
