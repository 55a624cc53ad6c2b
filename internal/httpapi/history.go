package httpapi

import (
	"net/http"
	"strconv"

	"github.com/nguyentantai21042004/summary-flow/internal/history"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

type saveRequest struct {
	Title     string                `json:"title" validate:"required,max=200"`
	Result    *models.SummaryResult `json:"result" validate:"required"`
	FileNames []string              `json:"file_names"`
	Length    models.LengthClass    `json:"length" validate:"omitempty,oneof=short medium long"`
}

// userID returns the caller's id from X-User-ID, or writes 401.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "history is not configured")
		return "", false
	}
	id := r.Header.Get("X-User-ID")
	if id == "" {
		writeError(w, http.StatusUnauthorized, "X-User-ID header is required")
		return "", false
	}
	return id, true
}

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	limit := history.DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.store.ListByUser(r.Context(), userID, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"summaries": records})
}

func (h *Handler) SaveHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req saveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.Save(r.Context(), userID, history.FromResult(req.Title, req.Result, req.FileNames, req.Length))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) UpdateHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var upd history.Update
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Update(r.Context(), userID, r.PathValue("id"), upd); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	stats, err := h.store.Stats(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
