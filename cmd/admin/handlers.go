package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"go-tv-builder/internal/model"
	"go-tv-builder/internal/pagedoc"
	"go-tv-builder/internal/tvconfig"

	"github.com/go-chi/chi/v5"
	"github.com/justinas/nosurf"
)

// --- Helpers ---

func (app *adminApplication) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.Error("Failed to encode response", "error", err)
	}
}

func (app *adminApplication) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrLastEntry):
		status = http.StatusConflict
	case errors.Is(err, model.ErrParse):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		app.logger.Error("Request failed", "error", err)
	}
	app.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (app *adminApplication) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		app.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

// --- Dashboard (HTML) ---

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>TV Builder Admin</title></head>
<body>
  <h1>TV Builder Admin</h1>
  <h2>Pages</h2>
  <table>
    <tr><th>Title</th><th>Slug</th><th>Status</th><th>Views</th><th></th></tr>
    {{range .Pages}}
    <tr>
      <td>{{.Title}}</td>
      <td>/{{.Slug}}</td>
      <td>{{.Status}}</td>
      <td>{{.Views}}</td>
      <td>
        <form method="POST" action="/admin/pages/delete/{{.Slug}}">
          <input type="hidden" name="csrf_token" value="{{$.CSRFToken}}">
          <button type="submit">Delete</button>
        </form>
      </td>
    </tr>
    {{end}}
  </table>
  <h2>New page</h2>
  <form method="POST" action="/admin/pages/new">
    <input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
    <label>Title <input name="title"></label>
    <label>Slug <input name="slug"></label>
    <button type="submit">Create</button>
  </form>
</body>
</html>
`))

func (app *adminApplication) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	pages, err := app.pages.ListPages()
	if err != nil {
		app.logger.Error("Failed to list pages for dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	data := map[string]any{
		"Pages":     pages,
		"CSRFToken": nosurf.Token(r),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, data); err != nil {
		app.logger.Error("Error executing dashboard template", "error", err)
	}
}

func (app *adminApplication) pageCreateFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if _, err := app.pages.CreatePage(r.PostFormValue("title"), r.PostFormValue("slug"), ""); err != nil {
		app.logger.Error("Failed to create page", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *adminApplication) pageDeleteFormHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	slug := chi.URLParam(r, "slug")
	if err := app.pages.DeletePage(slug); err != nil {
		app.logger.Error("Failed to delete page", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	delete(app.sessions, slug)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// --- Pages (JSON API) ---

func (app *adminApplication) listPagesHandler(w http.ResponseWriter, r *http.Request) {
	pages, err := app.pages.ListPages()
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, pages)
}

func (app *adminApplication) createPageHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title  string `json:"title"`
		Slug   string `json:"slug"`
		Author string `json:"author"`
	}
	if !app.decodeBody(w, r, &req) {
		return
	}
	page, err := app.pages.CreatePage(req.Title, req.Slug, req.Author)
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeJSON(w, http.StatusCreated, page)
}

func (app *adminApplication) getPageHandler(w http.ResponseWriter, r *http.Request) {
	page, err := app.pages.GetPage(chi.URLParam(r, "slug"))
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, page)
}

func (app *adminApplication) updatePageHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title  string           `json:"title"`
		Author string           `json:"author"`
		Status model.PageStatus `json:"status"`
	}
	if !app.decodeBody(w, r, &req) {
		return
	}
	slug := chi.URLParam(r, "slug")
	if err := app.pages.UpdatePage(slug, req.Title, req.Author, req.Status); err != nil {
		app.writeError(w, err)
		return
	}
	page, err := app.pages.GetPage(slug)
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, page)
}

func (app *adminApplication) deletePageHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	slug := chi.URLParam(r, "slug")
	if err := app.pages.DeletePage(slug); err != nil {
		app.writeError(w, err)
		return
	}
	delete(app.sessions, slug)
	w.WriteHeader(http.StatusNoContent)
}

// previewPageHandler renders the page fragment without bumping the public
// view counter.
func (app *adminApplication) previewPageHandler(w http.ResponseWriter, r *http.Request) {
	src, err := app.pages.LoadDocument(chi.URLParam(r, "slug"))
	if err != nil {
		app.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	switch {
	case src.Invalid:
		fmt.Fprint(w, pagedoc.InvalidContentHTML)
	case src.Raw:
		fmt.Fprint(w, src.RawHTML)
	default:
		fmt.Fprint(w, pagedoc.RenderHTML(src.Elements))
	}
}

// --- TV configuration ---

func (app *adminApplication) getConfigHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	tv := app.tv
	app.mu.Unlock()
	app.writeJSON(w, http.StatusOK, tv)
}

// patchConfigHandler applies a top-level partial update. Branches present in
// the body replace the current branch wholesale; see tvconfig.ApplyPartial.
func (app *adminApplication) patchConfigHandler(w http.ResponseWriter, r *http.Request) {
	var partial tvconfig.Partial
	if !app.decodeBody(w, r, &partial) {
		return
	}
	app.mu.Lock()
	app.tv = tvconfig.ApplyPartial(app.tv, partial)
	tv := app.tv
	app.mu.Unlock()
	app.writeJSON(w, http.StatusOK, tv)
}

func (app *adminApplication) importConfigHandler(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if !app.decodeBody(w, r, &raw) {
		return
	}
	data, err := tvconfig.ImportJSON(string(raw))
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.mu.Lock()
	app.tv = data
	app.mu.Unlock()
	app.writeJSON(w, http.StatusOK, data)
}

func (app *adminApplication) resetConfigHandler(w http.ResponseWriter, r *http.Request) {
	tv := tvconfig.Default()
	app.mu.Lock()
	app.tv = tv
	app.mu.Unlock()
	app.writeJSON(w, http.StatusOK, tv)
}

func (app *adminApplication) exportConfigHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	tv := app.tv
	app.mu.Unlock()
	out, err := tvconfig.ExportJSON(tv)
	if err != nil {
		app.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="android-tv-template.json"`)
	fmt.Fprint(w, out)
}

func (app *adminApplication) previewConfigHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	tv := app.tv
	app.mu.Unlock()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, pagedoc.RenderTV(tv))
}

// --- TV template library ---

func (app *adminApplication) listTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	list := app.library.List()
	app.mu.Unlock()
	app.writeJSON(w, http.StatusOK, list)
}

// saveTemplateHandler snapshots the live config under a new name and
// persists it alongside the pages.
func (app *adminApplication) saveTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !app.decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		app.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	app.mu.Lock()
	t := app.library.Add(req.Name, app.tv)
	app.mu.Unlock()
	if err := app.store.SaveTemplate(&t); err != nil {
		app.logger.Warn("Failed to persist template snapshot", "id", t.ID, "error", err)
	}
	app.writeJSON(w, http.StatusCreated, t)
}

func (app *adminApplication) duplicateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	dup, err := app.library.Duplicate(chi.URLParam(r, "id"))
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeJSON(w, http.StatusCreated, dup)
}

func (app *adminApplication) selectTemplateHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	data, err := app.library.Select(chi.URLParam(r, "id"))
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.tv = data
	app.writeJSON(w, http.StatusOK, app.tv)
}

func (app *adminApplication) deleteTemplateHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if err := app.library.Remove(chi.URLParam(r, "id")); err != nil {
		app.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Web template bundles ---

func (app *adminApplication) listWebTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	list := app.weblib.List()
	app.mu.Unlock()
	app.writeJSON(w, http.StatusOK, list)
}

func (app *adminApplication) getWebTemplateHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	t, err := app.weblib.Get(chi.URLParam(r, "id"))
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, t)
}

func (app *adminApplication) webTemplatePagesHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	pages, err := app.weblib.HTMLPages(chi.URLParam(r, "id"))
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, pages)
}

func (app *adminApplication) exportWebTemplateHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	id := chi.URLParam(r, "id")
	t, err := app.weblib.Get(id)
	if err != nil {
		app.writeError(w, err)
		return
	}
	out, err := app.weblib.ExportBundle(id)
	if err != nil {
		app.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", t.ExportFilename()))
	fmt.Fprint(w, out)
}

func (app *adminApplication) webTemplateFileHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	f, err := app.weblib.File(chi.URLParam(r, "id"), chi.URLParam(r, "name"))
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, f)
}

func (app *adminApplication) deleteWebTemplateFileHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if err := app.weblib.RemoveFile(chi.URLParam(r, "id"), chi.URLParam(r, "name")); err != nil {
		app.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
