package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sells-group/litigation-cli/internal/loader"
	"github.com/sells-group/litigation-cli/internal/query"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("http: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg, RequestID: RequestIDFrom(r.Context())})
}

// paramError is a malformed query string parameter.
type paramError struct {
	name   string
	reason string
}

func (e *paramError) Error() string {
	return "invalid parameter " + e.name + ": " + e.reason
}

// writeFailure maps an engine error to an HTTP status.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var (
		qe *query.QueryError
		pe *paramError
		le *loader.DataLoadError
	)
	switch {
	case errors.As(err, &pe), errors.As(err, &qe):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, query.ErrCaseNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.As(err, &le):
		zap.L().Error("http: data load failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("path", le.Path),
			zap.Error(err),
		)
		writeError(w, r, http.StatusServiceUnavailable, "case data is unavailable")
	default:
		zap.L().Error("http: request failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
