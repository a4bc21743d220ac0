package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"personadash/app"
	"personadash/internal"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is the upload-and-dashboard web application.
type App struct {
	router    *chi.Mux
	pipeline  *app.Pipeline
	templates *template.Template
	maxUpload int64
	log       *internal.Logger
}

// Config holds web application settings.
type Config struct {
	MaxUploadBytes int64
}

// NewApp wires the router, templates, and pipeline into a servable app.
func NewApp(pipeline *app.Pipeline, cfg Config) (*App, error) {
	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		pipeline:  pipeline,
		templates: templates,
		maxUpload: cfg.MaxUploadBytes,
		log:       internal.DefaultLogger,
	}

	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	a.router.Get("/", a.handleIndex)
	a.router.Post("/upload", a.handleUpload)
	a.router.Post("/api/process", a.handleProcess)
	a.router.Get("/health", a.handleHealth)

	return a, nil
}

// Router exposes the chi mux for embedding or testing.
func (a *App) Router() http.Handler {
	return a.router
}

// Start blocks serving HTTP on the given port.
func (a *App) Start(port string) error {
	a.log.Info("listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}
