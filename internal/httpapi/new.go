package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/history"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/processor"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
)

// validate is the package-level validator instance used for request bodies.
var validate = validator.New(validator.WithRequiredStructEnabled())

type Handler struct {
	processor      processor.Processor
	transcriber    summarizer.Transcriber
	store          history.Store
	logger         logger.Logger
	maxUploadBytes int64
	allowedOrigin  string
}

// New builds the JSON API. store may be nil, in which case the history
// endpoints answer 503.
func New(cfg config.ServerConfig, proc processor.Processor, tr summarizer.Transcriber, store history.Store, log logger.Logger) http.Handler {
	maxMB := cfg.MaxUploadMB
	if maxMB <= 0 {
		maxMB = 10
	}
	h := &Handler{
		processor:      proc,
		transcriber:    tr,
		store:          store,
		logger:         log,
		maxUploadBytes: int64(maxMB) * 1024 * 1024,
		allowedOrigin:  cfg.AllowedOrigin,
	}
	return h.withRequestID(h.withCORS(h.routes()))
}

func (h *Handler) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/summaries", h.Summarize)
	mux.HandleFunc("POST /api/summaries/text", h.SummarizeText)
	mux.HandleFunc("POST /api/transcribe", h.Transcribe)
	mux.HandleFunc("POST /api/export/{format}", h.Export)

	mux.HandleFunc("GET /api/history", h.ListHistory)
	mux.HandleFunc("POST /api/history", h.SaveHistory)
	mux.HandleFunc("PATCH /api/history/{id}", h.UpdateHistory)
	mux.HandleFunc("DELETE /api/history/{id}", h.DeleteHistory)
	mux.HandleFunc("GET /api/stats", h.Stats)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}
