package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personadash/app"
	"personadash/domain/persona"
	"personadash/domain/survey"
)

func testApp(t *testing.T) *App {
	t.Helper()
	pipeline, err := app.NewPipeline(survey.DefaultPatternTable(), persona.DefaultRuleTable())
	require.NoError(t, err)
	webApp, err := NewApp(pipeline, Config{MaxUploadBytes: 1024 * 1024})
	require.NoError(t, err)
	return webApp
}

func multipartCSV(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestHandleProcess_CSVUpload(t *testing.T) {
	webApp := testApp(t)

	body, contentType := multipartCSV(t, "survey", "survey.csv",
		"Name,Motivation,Format Pref,Freq,Hours/week\nAlice,Career growth,Structured course,Daily,<2\n")
	req := httptest.NewRequest(http.MethodPost, "/api/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	webApp.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload app.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Respondents, 1)
	assert.Equal(t, persona.Pathfinder, payload.Respondents[0].Persona)
	assert.NotContains(t, rec.Body.String(), "Alice")
}

func TestHandleProcess_RejectsMissingFile(t *testing.T) {
	webApp := testApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/process", strings.NewReader(""))
	rec := httptest.NewRecorder()

	webApp.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProcess_RejectsBadExtension(t *testing.T) {
	webApp := testApp(t)

	body, contentType := multipartCSV(t, "survey", "survey.txt", "whatever")
	req := httptest.NewRequest(http.MethodPost, "/api/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	webApp.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ".xlsx")
}

func TestHandleUpload_RendersDashboard(t *testing.T) {
	webApp := testApp(t)

	body, contentType := multipartCSV(t, "survey", "survey.csv",
		"Motivation,Format Pref,Freq,Hours/week\nCareer growth,Short videos,Daily,<2\n")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	webApp.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pathfinder")
	assert.Contains(t, rec.Body.String(), "__DASHBOARD__")
}

func TestHandleIndex(t *testing.T) {
	webApp := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	webApp.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "form")
}

func TestHandleHealth(t *testing.T) {
	webApp := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	webApp.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
