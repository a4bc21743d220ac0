package ui

import (
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"personadash/adapters/excel"
	"personadash/app"
	apperrors "personadash/internal/errors"
)

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := a.templates.ExecuteTemplate(w, "index.html", nil); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleUpload accepts a survey spreadsheet and renders the dashboard with
// the payload injected.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	payload, err := a.processUpload(r)
	if err != nil {
		a.renderError(w, err)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to encode payload", http.StatusInternalServerError)
		return
	}

	view := struct {
		Payload     *app.Payload
		PayloadJSON template.JS
	}{Payload: payload, PayloadJSON: template.JS(data)}

	if err := a.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		a.log.Error("dashboard render failed: %v", err)
	}
}

// handleProcess is the JSON API variant of handleUpload.
func (a *App) handleProcess(w http.ResponseWriter, r *http.Request) {
	payload, err := a.processUpload(r)
	if err != nil {
		status := http.StatusBadRequest
		if apperrors.GetCode(err) == apperrors.CodeInternalError {
			status = http.StatusInternalServerError
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error(), "code": apperrors.GetCode(err)})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// processUpload validates the multipart upload, stages it to a temp file,
// and runs the pipeline. The staged file is removed before returning; no
// respondent data outlives the request.
func (a *App) processUpload(r *http.Request) (*app.Payload, error) {
	uploadID := uuid.New().String()[:8]

	file, header, err := r.FormFile("survey")
	if err != nil {
		return nil, apperrors.InvalidInput("no file uploaded")
	}
	defer file.Close()

	if header.Size > a.maxUpload {
		a.log.Warn("[%s] upload rejected: %d bytes over limit", uploadID, header.Size)
		return nil, apperrors.InvalidInput("file exceeds the upload size limit")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".csv" {
		return nil, apperrors.InvalidInput("only .xlsx and .csv files are accepted")
	}

	tmp, err := os.CreateTemp("", "survey-*"+ext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to stage upload")
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, io.LimitReader(file, a.maxUpload+1)); err != nil {
		return nil, apperrors.Wrap(err, "failed to stage upload")
	}

	table, err := excel.NewReader(tmp.Name()).Read()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.InvalidInput(err.Error()), "could not parse upload")
	}

	a.log.Info("[%s] upload parsed: %d columns, %d rows", uploadID, len(table.Headers), len(table.Rows))
	return a.pipeline.Run(table)
}

func (a *App) renderError(w http.ResponseWriter, err error) {
	a.log.Warn("upload failed: %v", err)
	w.WriteHeader(http.StatusBadRequest)
	view := struct{ Message string }{Message: err.Error()}
	if terr := a.templates.ExecuteTemplate(w, "index.html", view); terr != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
