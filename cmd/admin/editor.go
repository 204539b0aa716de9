package main

import (
	"errors"
	"fmt"
	"net/http"

	"go-tv-builder/internal/canvas"
	"go-tv-builder/internal/model"

	"github.com/go-chi/chi/v5"
)

// session returns the open canvas session for a slug, if any. Callers must
// hold app.mu.
func (app *adminApplication) session(w http.ResponseWriter, r *http.Request) (*canvas.Canvas, string, bool) {
	slug := chi.URLParam(r, "slug")
	c, ok := app.sessions[slug]
	if !ok {
		app.writeJSON(w, http.StatusConflict, map[string]string{"error": "no open editor session for " + slug})
		return nil, slug, false
	}
	return c, slug, true
}

// canvasState is the editor state snapshot returned after every interaction,
// so the frontend can re-render without tracking deltas.
type canvasState struct {
	Slug     string          `json:"slug"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Selected string          `json:"selected,omitempty"`
	Elements []model.Element `json:"elements"`
}

func (app *adminApplication) writeState(w http.ResponseWriter, slug string, c *canvas.Canvas) {
	width, height := c.Size()
	app.writeJSON(w, http.StatusOK, canvasState{
		Slug:     slug,
		Width:    width,
		Height:   height,
		Selected: c.SelectedID(),
		Elements: c.Elements(),
	})
}

// editorOpenHandler loads the page document into a fresh canvas session.
// Reopening a slug discards any previous session state for it.
func (app *adminApplication) editorOpenHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	slug := chi.URLParam(r, "slug")
	src, err := app.pages.LoadDocument(slug)
	if err != nil {
		app.writeError(w, err)
		return
	}
	if src.Invalid || src.Raw {
		app.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "page content is not an editable element document",
		})
		return
	}

	c, err := canvas.New(canvasWidth, canvasHeight, app.logger)
	if err != nil {
		app.writeError(w, err)
		return
	}
	if err := c.SetElements(src.Elements); err != nil {
		app.writeError(w, fmt.Errorf("%w: %w", model.ErrParse, err))
		return
	}
	app.sessions[slug] = c
	app.logger.Info("Editor session opened", "slug", slug, "elements", len(src.Elements))
	app.writeState(w, slug, c)
}

func (app *adminApplication) editorElementsHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	c, slug, ok := app.session(w, r)
	if !ok {
		return
	}
	app.writeState(w, slug, c)
}

func (app *adminApplication) editorAddElementHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	c, _, ok := app.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Type model.ElementType `json:"type"`
	}
	if !app.decodeBody(w, r, &req) {
		return
	}
	el := c.AddElement(req.Type)
	app.writeJSON(w, http.StatusCreated, el)
}

func (app *adminApplication) editorUpdateElementHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	c, _, ok := app.session(w, r)
	if !ok {
		return
	}
	var u model.ElementUpdate
	if !app.decodeBody(w, r, &u) {
		return
	}
	id := chi.URLParam(r, "id")
	if err := c.Update(id, u); err != nil {
		app.writeError(w, err)
		return
	}
	el, err := c.Element(id)
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, el)
}

func (app *adminApplication) editorDeleteElementHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	c, _, ok := app.session(w, r)
	if !ok {
		return
	}
	if err := c.Delete(chi.URLParam(r, "id")); err != nil {
		app.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *adminApplication) editorSelectHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	c, slug, ok := app.session(w, r)
	if !ok {
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if !app.decodeBody(w, r, &req) {
		return
	}
	if req.ID == "" {
		c.ClearSelection()
	} else if err := c.Select(req.ID); err != nil {
		app.writeError(w, err)
		return
	}
	app.writeState(w, slug, c)
}

// editorPointerHandler multiplexes the pointer protocol: drag-start,
// resize-start, move, release and double-click all arrive here.
func (app *adminApplication) editorPointerHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	c, slug, ok := app.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Action string  `json:"action"`
		ID     string  `json:"id"`
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
	}
	if !app.decodeBody(w, r, &req) {
		return
	}

	var err error
	switch req.Action {
	case "drag":
		err = c.StartDrag(req.ID, req.X, req.Y)
	case "resize":
		err = c.StartResize(req.ID, req.X, req.Y)
	case "move":
		c.PointerMove(req.X, req.Y)
	case "release":
		c.EndDrag()
	case "dblclick":
		err = c.DoubleClick(req.ID)
	default:
		app.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown pointer action " + req.Action})
		return
	}
	if err != nil {
		app.writeError(w, err)
		return
	}
	app.writeState(w, slug, c)
}

// editorInlineEditHandler drives the inline text editing lifecycle.
func (app *adminApplication) editorInlineEditHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	c, slug, ok := app.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Action string `json:"action"` // start, set, commit, cancel
		ID     string `json:"id"`
		Value  string `json:"value"`
	}
	if !app.decodeBody(w, r, &req) {
		return
	}

	switch req.Action {
	case "start":
		if err := c.StartInlineEdit(req.ID); err != nil {
			app.writeError(w, err)
			return
		}
	case "set":
		c.SetEditValue(req.Value)
	case "commit":
		c.CommitInlineEdit()
	case "cancel":
		c.CancelInlineEdit()
	default:
		app.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown edit action " + req.Action})
		return
	}
	app.writeState(w, slug, c)
}

// editorSaveHandler serializes the session's elements back into the page
// document. The session stays open so editing can continue.
func (app *adminApplication) editorSaveHandler(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	defer app.mu.Unlock()

	c, slug, ok := app.session(w, r)
	if !ok {
		return
	}
	if err := app.pages.SaveDocument(slug, c.Elements()); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			delete(app.sessions, slug)
		}
		app.writeError(w, err)
		return
	}
	app.logger.Info("Page document saved", "slug", slug, "elements", len(c.Elements()))
	app.writeState(w, slug, c)
}
