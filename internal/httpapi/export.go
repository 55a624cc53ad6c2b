package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
	"github.com/nguyentantai21042004/summary-flow/internal/report"
)

type exportRequest struct {
	Title     string                `json:"title" validate:"required,max=200"`
	Result    *models.SummaryResult `json:"result" validate:"required"`
	FileNames []string              `json:"file_names"`
	CreatedAt time.Time             `json:"created_at"`
}

// Export renders a result as a downloadable txt, md or docx file.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")

	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		body        []byte
		contentType string
	)
	switch format {
	case "txt":
		body = []byte(report.Text(req.Title, req.Result, req.CreatedAt))
		contentType = "text/plain; charset=utf-8"
	case "md":
		body = []byte(report.Markdown(req.Title, req.Result, req.FileNames...))
		contentType = "text/markdown; charset=utf-8"
	case "docx":
		data, err := report.Docx(req.Title, req.Result, req.FileNames...)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		body = data
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported export format %q", format))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(req.Title, format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
