package main

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"go-tv-builder/internal/model"
	"go-tv-builder/internal/pagemanager"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// application holds the public server's dependencies.
type application struct {
	logger    *slog.Logger
	pages     *pagemanager.PageManager
	staticDir string
}

// routes sets up the HTTP router for the public rendering host.
func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	fs := http.FileServer(http.Dir(app.staticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	r.Get("/", app.handleIndex)
	r.Get("/p/{slug}", app.handlePage)

	return r
}

// pageShell wraps a rendered fragment in the minimal document the viewer
// injects content into. The fragment is pre-rendered trusted markup.
var pageShell = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/static/page.css">
</head>
<body>
  <div class="page-content">{{.Fragment}}</div>
</body>
</html>
`))

// handleIndex lists published pages.
func (app *application) handleIndex(w http.ResponseWriter, r *http.Request) {
	pages, err := app.pages.ListPages()
	if err != nil {
		app.logger.Error("Failed to list pages", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html><html><head><title>Pages</title></head><body><h1>Pages</h1><ul>")
	for _, p := range pages {
		if p.Status != model.StatusPublished {
			continue
		}
		fmt.Fprintf(w, `<li><a href="/p/%s">%s</a></li>`, template.HTMLEscapeString(p.Slug), template.HTMLEscapeString(p.Title))
	}
	fmt.Fprint(w, "</ul></body></html>")
}

// handlePage resolves a slug to a page document and serves the rendered
// result. Only published pages are visible publicly.
func (app *application) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := app.pages.GetPage(slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.logger.Error("Failed to load page", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if page.Status != model.StatusPublished {
		app.logger.Info("Blocking non-published page", "slug", slug, "status", page.Status)
		http.Error(w, "Page not available", http.StatusForbidden)
		return
	}

	fragment, err := app.pages.RenderPage(slug)
	if err != nil {
		app.logger.Error("Failed to render page", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = pageShell.Execute(w, struct {
		Title    string
		Fragment template.HTML
	}{Title: page.Title, Fragment: template.HTML(fragment)})
	if err != nil {
		app.logger.Error("Error executing page shell", "slug", slug, "error", err)
	}
}
