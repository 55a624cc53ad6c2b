package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/history"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

type fakeProcessor struct {
	result    *models.SummaryResult
	combined  *models.CombinedResult
	outcomes  []models.FileOutcome
	err       error
	opts      models.SummaryOptions
	artifacts []models.Artifact
}

func (f *fakeProcessor) ProcessOne(context.Context, models.Artifact, models.SummaryOptions) (*models.SummaryResult, error) {
	return nil, errors.New("not used")
}

func (f *fakeProcessor) ProcessMany(context.Context, []models.Artifact, models.SummaryOptions) ([]models.FileOutcome, error) {
	return nil, errors.New("not used")
}

func (f *fakeProcessor) Combine(context.Context, []models.FileOutcome, models.SummaryOptions) (*models.CombinedResult, error) {
	return nil, errors.New("not used")
}

func (f *fakeProcessor) ProcessSingle(_ context.Context, a models.Artifact, opts models.SummaryOptions) (*models.SummaryResult, error) {
	f.artifacts = []models.Artifact{a}
	f.opts = opts
	return f.result, f.err
}

func (f *fakeProcessor) ProcessBatch(_ context.Context, as []models.Artifact, opts models.SummaryOptions) (*models.CombinedResult, []models.FileOutcome, error) {
	f.artifacts = as
	f.opts = opts
	return f.combined, f.outcomes, f.err
}

type fakeTranscriber struct {
	text     string
	mimeType string
}

func (f *fakeTranscriber) Configured() bool { return true }

func (f *fakeTranscriber) Transcribe(_ context.Context, _ []byte, mimeType string) (string, error) {
	f.mimeType = mimeType
	return f.text, nil
}

type upload struct {
	field, name, contentType, body string
}

func multipartRequest(t *testing.T, path string, fields map[string]string, files ...upload) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		hdr.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(method, path string, body any) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newTestHandler(t *testing.T, proc *fakeProcessor, store history.Store) http.Handler {
	t.Helper()
	cfg := config.ServerConfig{MaxUploadMB: 1, AllowedOrigin: "http://localhost:3000"}
	return New(cfg, proc, &fakeTranscriber{text: "hello there"}, store, logger.Nop())
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSummarizeSingleFile(t *testing.T) {
	proc := &fakeProcessor{result: &models.SummaryResult{Summary: "short version", FileName: "a.txt"}}
	h := newTestHandler(t, proc, nil)

	rec := serve(h, multipartRequest(t, "/api/summaries",
		map[string]string{"length": "short", "target_language": "es"},
		upload{"file", "a.txt", "text/plain", "Hello world"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "short version", body["result"].(map[string]any)["summary"])
	assert.Nil(t, body["files"])

	require.Len(t, proc.artifacts, 1)
	assert.Equal(t, "a.txt", proc.artifacts[0].Name)
	assert.Equal(t, "text/plain", proc.artifacts[0].MediaType)
	assert.Equal(t, "Hello world", string(proc.artifacts[0].Bytes()))
	assert.Equal(t, models.SummaryOptions{LengthClass: models.LengthShort, TargetLanguage: "es"}, proc.opts)
}

func TestSummarizeBatch(t *testing.T) {
	proc := &fakeProcessor{
		combined: &models.CombinedResult{
			SummaryResult: &models.SummaryResult{Summary: "both"},
			FileNames:     []string{"a.txt"},
			DocumentCount: 1,
		},
		outcomes: []models.FileOutcome{
			models.Succeeded("a.txt", &models.SummaryResult{Summary: "a"}),
			models.Failed("b.xyz", &models.UnsupportedTypeError{FileName: "b.xyz"}),
		},
	}
	h := newTestHandler(t, proc, nil)

	rec := serve(h, multipartRequest(t, "/api/summaries", nil,
		upload{"file", "a.txt", "text/plain", "Hello"},
		upload{"file", "b.xyz", "application/octet-stream", "??"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)

	result := body["result"].(map[string]any)
	assert.Equal(t, "both", result["summary"])
	assert.Equal(t, float64(1), result["document_count"])

	files := body["files"].([]any)
	require.Len(t, files, 2)
	assert.Equal(t, true, files[0].(map[string]any)["success"])
	assert.Contains(t, files[1].(map[string]any)["error"], "Unsupported file type")
	assert.Len(t, proc.artifacts, 2)
}

func TestSummarizeErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unsupported", &models.UnsupportedTypeError{FileName: "x.bin"}, http.StatusUnprocessableEntity},
		{"empty", &models.EmptyExtractionError{FileName: "x.txt"}, http.StatusUnprocessableEntity},
		{"pdf parse", &models.ExtractionError{FileName: "x.pdf", Format: models.FormatPDF, Err: errors.New("bad")}, http.StatusUnprocessableEntity},
		{"configuration", &models.ConfigurationError{Service: "summary generator"}, http.StatusServiceUnavailable},
		{"generation", &models.GenerationError{Op: "generate summary", Err: errors.New("quota")}, http.StatusBadGateway},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &fakeProcessor{err: tt.err}, nil)
			rec := serve(h, multipartRequest(t, "/api/summaries", nil, upload{"file", "x", "text/plain", "x"}))

			assert.Equal(t, tt.want, rec.Code)
			body := decodeBody(t, rec)
			if tt.want == http.StatusInternalServerError {
				assert.Equal(t, "internal error", body["error"])
			} else {
				assert.Equal(t, tt.err.Error(), body["error"])
			}
		})
	}
}

func TestSummarizeAllFailed(t *testing.T) {
	failures := []models.FileOutcome{
		models.Failed("a.xyz", &models.UnsupportedTypeError{FileName: "a.xyz"}),
		models.Failed("b.xyz", &models.UnsupportedTypeError{FileName: "b.xyz"}),
	}
	h := newTestHandler(t, &fakeProcessor{err: &models.AllFilesFailedError{Failures: failures}}, nil)

	rec := serve(h, multipartRequest(t, "/api/summaries", nil,
		upload{"file", "a.xyz", "", "?"}, upload{"file", "b.xyz", "", "?"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["failures"], 2)
}

func TestSummarizeBadRequests(t *testing.T) {
	h := newTestHandler(t, &fakeProcessor{}, nil)

	rec := serve(h, multipartRequest(t, "/api/summaries", map[string]string{"length": "huge"}, upload{"file", "a.txt", "text/plain", "x"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, multipartRequest(t, "/api/summaries", map[string]string{"length": "short"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	big := strings.Repeat("x", 2*1024*1024)
	rec = serve(h, multipartRequest(t, "/api/summaries", nil, upload{"file", "big.txt", "text/plain", big}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarizeText(t *testing.T) {
	proc := &fakeProcessor{result: &models.SummaryResult{Summary: "pasted"}}
	h := newTestHandler(t, proc, nil)

	rec := serve(h, jsonRequest(http.MethodPost, "/api/summaries/text", map[string]string{"text": "some pasted text", "length": "long"}))
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, proc.artifacts, 1)
	assert.Equal(t, "pasted-text.txt", proc.artifacts[0].Name)
	assert.Equal(t, "text/plain", proc.artifacts[0].MediaType)
	assert.Equal(t, models.LengthLong, proc.opts.LengthClass)

	rec = serve(h, jsonRequest(http.MethodPost, "/api/summaries/text", map[string]string{"length": "long"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranscribe(t *testing.T) {
	h := newTestHandler(t, &fakeProcessor{}, nil)

	rec := serve(h, multipartRequest(t, "/api/transcribe", nil, upload{"audio", "memo.wav", "audio/wav", "RIFF"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello there", decodeBody(t, rec)["text"])

	rec = serve(h, multipartRequest(t, "/api/transcribe", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport(t *testing.T) {
	h := newTestHandler(t, &fakeProcessor{}, nil)
	body := map[string]any{
		"title":  "Q3 Report",
		"result": map[string]any{"summary": "Revenue grew.", "word_count": map[string]int{"original": 40, "summary": 2}},
	}

	rec := serve(h, jsonRequest(http.MethodPost, "/api/export/txt", body))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Title: Q3 Report\n\nSummary:\nRevenue grew.\n\nOriginal Word Count: 40\nSummary Word Count: 2", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="q3_report.txt"`)

	rec = serve(h, jsonRequest(http.MethodPost, "/api/export/docx", body))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))

	rec = serve(h, jsonRequest(http.MethodPost, "/api/export/pdf", body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, jsonRequest(http.MethodPost, "/api/export/txt", map[string]any{"title": "no result"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryFlow(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	h := newTestHandler(t, &fakeProcessor{}, store)

	withUser := func(req *http.Request) *http.Request {
		req.Header.Set("X-User-ID", "u1")
		return req
	}

	rec := serve(h, withUser(jsonRequest(http.MethodPost, "/api/history", map[string]any{
		"title":  "Notes",
		"length": "short",
		"result": map[string]any{"summary": "a b", "target_language": "es", "word_count": map[string]int{"original": 10, "summary": 2}},
	})))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decodeBody(t, rec)["id"].(string)

	rec = serve(h, withUser(httptest.NewRequest(http.MethodGet, "/api/history", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	summaries := decodeBody(t, rec)["summaries"].([]any)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Notes", summaries[0].(map[string]any)["title"])

	rec = serve(h, withUser(jsonRequest(http.MethodPatch, "/api/history/"+id, map[string]string{"title": "Renamed"})))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(h, withUser(httptest.NewRequest(http.MethodGet, "/api/stats", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody(t, rec)
	assert.Equal(t, float64(1), stats["total_summaries"])
	assert.Equal(t, float64(80), stats["average_reduction"])
	assert.Equal(t, float64(1), stats["languages_used"])

	rec = serve(h, withUser(httptest.NewRequest(http.MethodDelete, "/api/history/"+id, nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(h, withUser(httptest.NewRequest(http.MethodDelete, "/api/history/"+id, nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHistoryRequiresUserAndStore(t *testing.T) {
	rec := serve(newTestHandler(t, &fakeProcessor{}, nil), httptest.NewRequest(http.MethodGet, "/api/history", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	rec = serve(newTestHandler(t, &fakeProcessor{}, store), httptest.NewRequest(http.MethodGet, "/api/history", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSPreflightAndRequestID(t *testing.T) {
	h := newTestHandler(t, &fakeProcessor{}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodOptions, "/api/summaries", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
