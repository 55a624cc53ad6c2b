package httpapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

type fileStatus struct {
	FileName string `json:"file_name"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

type summaryResponse struct {
	Result any          `json:"result"`
	Files  []fileStatus `json:"files,omitempty"`
}

type textRequest struct {
	Text           string             `json:"text" validate:"required"`
	Length         models.LengthClass `json:"length" validate:"omitempty,oneof=short medium long"`
	TargetLanguage string             `json:"target_language" validate:"omitempty,min=2,max=8"`
}

// Summarize accepts one or more multipart "file" parts. A single file is
// summarized directly; several are combined into one result.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file too large (max %dMB) or invalid form", h.maxUploadBytes/(1024*1024)))
		return
	}

	opts := models.SummaryOptions{
		LengthClass:    models.LengthClass(r.FormValue("length")),
		TargetLanguage: strings.TrimSpace(r.FormValue("target_language")),
	}
	if err := opts.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}

	artifacts := make([]models.Artifact, 0, len(headers))
	for _, fh := range headers {
		a, err := readArtifact(fh)
		if err != nil {
			h.logger.Warn(r.Context(), "Failed to read upload %s: %v", fh.Filename, err)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("could not read %s", fh.Filename))
			return
		}
		artifacts = append(artifacts, a)
	}

	if len(artifacts) == 1 {
		result, err := h.processor.ProcessSingle(r.Context(), artifacts[0], opts)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, summaryResponse{Result: result})
		return
	}

	combined, outcomes, err := h.processor.ProcessBatch(r.Context(), artifacts, opts)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Result: combined, Files: fileStatuses(outcomes)})
}

// SummarizeText summarizes pasted text.
func (h *Handler) SummarizeText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.processor.ProcessSingle(r.Context(), models.NewTextArtifact("", req.Text), models.SummaryOptions{
		LengthClass:    req.Length,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Result: result})
}

func readArtifact(fh *multipart.FileHeader) (models.Artifact, error) {
	f, err := fh.Open()
	if err != nil {
		return models.Artifact{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.Artifact{}, err
	}
	return models.NewArtifact(fh.Filename, fh.Header.Get("Content-Type"), data), nil
}

func fileStatuses(outcomes []models.FileOutcome) []fileStatus {
	statuses := make([]fileStatus, 0, len(outcomes))
	for _, o := range outcomes {
		statuses = append(statuses, fileStatus{
			FileName: o.FileName,
			Success:  o.Success(),
			Error:    o.ErrorMessage(),
		})
	}
	return statuses
}
