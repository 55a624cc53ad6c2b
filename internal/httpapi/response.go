package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nguyentantai21042004/summary-flow/internal/history"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

type errorResponse struct {
	Error    string   `json:"error"`
	Failures []string `json:"failures,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// fail maps err to a status code and writes it. Unexpected errors are logged
// and reported as a generic internal error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := errorResponse{Error: err.Error()}

	var allFailed *models.AllFilesFailedError
	if errors.As(err, &allFailed) {
		resp.Error = "No documents were successfully processed"
		resp.Failures = allFailed.Messages()
	}
	if status == http.StatusInternalServerError {
		h.logger.Error(r.Context(), "%s %s: %v", r.Method, r.URL.Path, err)
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

func statusFor(err error) int {
	var (
		unsupported *models.UnsupportedTypeError
		empty       *models.EmptyExtractionError
		extraction  *models.ExtractionError
		allFailed   *models.AllFilesFailedError
		generation  *models.GenerationError
	)
	switch {
	case models.IsConfiguration(err):
		return http.StatusServiceUnavailable
	case errors.As(err, &unsupported), errors.As(err, &empty), errors.As(err, &extraction), errors.As(err, &allFailed):
		return http.StatusUnprocessableEntity
	case errors.As(err, &generation):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrNoArtifacts):
		return http.StatusBadRequest
	case errors.Is(err, history.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// decodeJSON reads a JSON body into v and validates it.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}
