package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cardforge/cardforge/internal/api"
	apiMiddleware "github.com/cardforge/cardforge/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	parseHandler := api.NewParseHandler(app.logger)
	editorHandler := api.NewEditorHandler(app.editor, app.collection, app.logger)
	setHandler := api.NewSetHandler(app.collection, app.logger)
	studyHandler := api.NewStudyHandler(app.sessions, app.collection, app.logger)
	themeHandler := api.NewThemeHandler(app.prefs, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/parse", parseHandler.Parse)

		// Working-set editor
		r.Get("/editor", editorHandler.Snapshot)
		r.Post("/editor/cards", editorHandler.AddCards)
		r.Post("/editor/cards/blank", editorHandler.AddBlankCard)
		r.Patch("/editor/cards/{index}", editorHandler.UpdateCard)
		r.Delete("/editor/cards/{index}", editorHandler.DeleteCard)
		r.Post("/editor/edit/{id}", editorHandler.BeginEdit)
		r.Post("/editor/save", editorHandler.Save)
		r.Post("/editor/cancel", editorHandler.Cancel)

		// Collection
		r.Get("/sets", setHandler.List)
		r.Get("/sets/tags", setHandler.Tags)
		r.Post("/sets/import", setHandler.Import)
		r.Get("/sets/{id}", setHandler.Get)
		r.Delete("/sets/{id}", setHandler.Delete)
		r.Post("/sets/{id}/duplicate", setHandler.Duplicate)
		r.Get("/sets/{id}/export", setHandler.Export)

		// Study sessions
		r.Post("/sets/{id}/sessions", studyHandler.Start)
		r.Get("/sessions/{id}", studyHandler.Get)
		r.Post("/sessions/{id}/flip", studyHandler.Flip)
		r.Post("/sessions/{id}/assess", studyHandler.Assess)
		r.Post("/sessions/{id}/previous", studyHandler.Previous)
		r.Post("/sessions/{id}/restart", studyHandler.Restart)
		r.Delete("/sessions/{id}", studyHandler.Exit)

		// Preferences
		r.Get("/theme", themeHandler.Get)
		r.Put("/theme", themeHandler.Put)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
