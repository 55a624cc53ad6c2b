package httpapi

import (
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

// Transcribe converts a multipart "audio" recording to text. The client can
// submit the text to /api/summaries/text afterwards.
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if h.transcriber == nil {
		h.fail(w, r, &models.ConfigurationError{Service: "speech transcription"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("recording too large (max %dMB) or invalid form", h.maxUploadBytes/(1024*1024)))
		return
	}

	headers := r.MultipartForm.File["audio"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "audio is required")
		return
	}
	audio, err := readArtifact(headers[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read audio")
		return
	}

	text, err := h.transcriber.Transcribe(r.Context(), audio.Bytes(), audio.MediaType)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
