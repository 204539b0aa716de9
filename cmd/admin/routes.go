package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/justinas/nosurf"
)

// routes sets up the HTTP router for the admin application. The HTML
// dashboard posts forms protected by nosurf; the JSON API under /api is
// exempt and intended for the editor frontend.
func (app *adminApplication) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Dashboard (HTML)
	r.Get("/", app.dashboardHandler)
	r.Post("/admin/pages/new", app.pageCreateFormHandler)
	r.Post("/admin/pages/delete/{slug}", app.pageDeleteFormHandler)

	// Pages (JSON API)
	r.Route("/api/pages", func(r chi.Router) {
		r.Get("/", app.listPagesHandler)
		r.Post("/", app.createPageHandler)
		r.Get("/{slug}", app.getPageHandler)
		r.Put("/{slug}", app.updatePageHandler)
		r.Delete("/{slug}", app.deletePageHandler)
		r.Get("/{slug}/preview", app.previewPageHandler)
	})

	// Canvas editor sessions
	r.Route("/api/editor/{slug}", func(r chi.Router) {
		r.Post("/open", app.editorOpenHandler)
		r.Get("/elements", app.editorElementsHandler)
		r.Post("/elements", app.editorAddElementHandler)
		r.Patch("/elements/{id}", app.editorUpdateElementHandler)
		r.Delete("/elements/{id}", app.editorDeleteElementHandler)
		r.Post("/select", app.editorSelectHandler)
		r.Post("/pointer", app.editorPointerHandler)
		r.Post("/edit", app.editorInlineEditHandler)
		r.Post("/save", app.editorSaveHandler)
	})

	// TV configuration (the simulator)
	r.Route("/api/config", func(r chi.Router) {
		r.Get("/", app.getConfigHandler)
		r.Patch("/", app.patchConfigHandler)
		r.Put("/", app.importConfigHandler)
		r.Post("/reset", app.resetConfigHandler)
		r.Get("/export", app.exportConfigHandler)
		r.Get("/preview", app.previewConfigHandler)
	})

	// TV template library
	r.Route("/api/templates", func(r chi.Router) {
		r.Get("/", app.listTemplatesHandler)
		r.Post("/", app.saveTemplateHandler)
		r.Post("/{id}/duplicate", app.duplicateTemplateHandler)
		r.Post("/{id}/select", app.selectTemplateHandler)
		r.Delete("/{id}", app.deleteTemplateHandler)
	})

	// Web template bundles
	r.Route("/api/webtemplates", func(r chi.Router) {
		r.Get("/", app.listWebTemplatesHandler)
		r.Get("/{id}", app.getWebTemplateHandler)
		r.Get("/{id}/pages", app.webTemplatePagesHandler)
		r.Get("/{id}/export", app.exportWebTemplateHandler)
		r.Get("/{id}/files/{name}", app.webTemplateFileHandler)
		r.Delete("/{id}/files/{name}", app.deleteWebTemplateFileHandler)
	})

	csrf := nosurf.New(r)
	csrf.ExemptFunc(func(r *http.Request) bool {
		return strings.HasPrefix(r.URL.Path, "/api/")
	})
	return csrf
}
