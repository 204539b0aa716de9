package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go-tv-builder/internal/canvas"
	"go-tv-builder/internal/library"
	"go-tv-builder/internal/model"
	"go-tv-builder/internal/pagemanager"
	"go-tv-builder/internal/storage"
	"go-tv-builder/internal/tvconfig"
)

func newTestApp(t *testing.T) *adminApplication {
	t.Helper()
	store, err := storage.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &adminApplication{
		logger:   logger,
		store:    store,
		pages:    pagemanager.NewManager(store, logger),
		library:  library.New(logger),
		weblib:   library.NewWebLibrary(logger),
		tv:       tvconfig.Default(),
		sessions: make(map[string]*canvas.Canvas),
	}
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestEditorSessionOverHTTP(t *testing.T) {
	app := newTestApp(t)
	handler := app.routes()

	if rec := doJSON(t, handler, http.MethodPost, "/api/pages", `{"title":"Lobby","slug":"lobby"}`); rec.Code != http.StatusCreated {
		t.Fatalf("create page: got status %d: %s", rec.Code, rec.Body)
	}
	if rec := doJSON(t, handler, http.MethodPost, "/api/editor/lobby/open", ""); rec.Code != http.StatusOK {
		t.Fatalf("open session: got status %d: %s", rec.Code, rec.Body)
	}

	rec := doJSON(t, handler, http.MethodPost, "/api/editor/lobby/elements", `{"type":"text"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add element: got status %d: %s", rec.Code, rec.Body)
	}
	var el model.Element
	if err := json.Unmarshal(rec.Body.Bytes(), &el); err != nil {
		t.Fatalf("decoding element failed: %v", err)
	}

	drag := fmt.Sprintf(`{"action":"drag","id":%q,"x":%v,"y":%v}`, el.ID, el.X+5, el.Y+5)
	if rec := doJSON(t, handler, http.MethodPost, "/api/editor/lobby/pointer", drag); rec.Code != http.StatusOK {
		t.Fatalf("drag start: got status %d: %s", rec.Code, rec.Body)
	}
	if rec := doJSON(t, handler, http.MethodPost, "/api/editor/lobby/pointer", `{"action":"move","x":200,"y":150}`); rec.Code != http.StatusOK {
		t.Fatalf("move: got status %d: %s", rec.Code, rec.Body)
	}
	if rec := doJSON(t, handler, http.MethodPost, "/api/editor/lobby/pointer", `{"action":"release"}`); rec.Code != http.StatusOK {
		t.Fatalf("release: got status %d: %s", rec.Code, rec.Body)
	}
	if rec := doJSON(t, handler, http.MethodPost, "/api/editor/lobby/save", ""); rec.Code != http.StatusOK {
		t.Fatalf("save: got status %d: %s", rec.Code, rec.Body)
	}

	src, err := app.pages.LoadDocument("lobby")
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	if len(src.Elements) != 1 {
		t.Fatalf("got %d saved elements, want 1", len(src.Elements))
	}
	if src.Elements[0].X != 195 || src.Elements[0].Y != 145 {
		t.Errorf("got saved position (%v, %v), want (195, 145)", src.Elements[0].X, src.Elements[0].Y)
	}
}

// Browsers deliver pointer traffic on overlapping connections; the handlers
// must serialize mutations so concurrent requests cannot corrupt a session.
func TestConcurrentPointerRequests(t *testing.T) {
	app := newTestApp(t)
	handler := app.routes()

	if rec := doJSON(t, handler, http.MethodPost, "/api/pages", `{"slug":"p1"}`); rec.Code != http.StatusCreated {
		t.Fatalf("create page: got status %d: %s", rec.Code, rec.Body)
	}
	if rec := doJSON(t, handler, http.MethodPost, "/api/editor/p1/open", ""); rec.Code != http.StatusOK {
		t.Fatalf("open session: got status %d: %s", rec.Code, rec.Body)
	}
	rec := doJSON(t, handler, http.MethodPost, "/api/editor/p1/elements", `{"type":"text"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add element: got status %d: %s", rec.Code, rec.Body)
	}
	var el model.Element
	if err := json.Unmarshal(rec.Body.Bytes(), &el); err != nil {
		t.Fatalf("decoding element failed: %v", err)
	}

	drag := fmt.Sprintf(`{"action":"drag","id":%q,"x":%v,"y":%v}`, el.ID, el.X, el.Y)
	if rec := doJSON(t, handler, http.MethodPost, "/api/editor/p1/pointer", drag); rec.Code != http.StatusOK {
		t.Fatalf("drag start: got status %d: %s", rec.Code, rec.Body)
	}

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				body := fmt.Sprintf(`{"action":"move","x":%d,"y":%d}`, 50+g*10+i%40, 60+g*10+i%30)
				req := httptest.NewRequest(http.MethodPost, "/api/editor/p1/pointer", strings.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				handler.ServeHTTP(httptest.NewRecorder(), req)
			}
		}(g)
	}
	wg.Wait()

	if rec := doJSON(t, handler, http.MethodPost, "/api/editor/p1/pointer", `{"action":"release"}`); rec.Code != http.StatusOK {
		t.Fatalf("release: got status %d: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/editor/p1/elements", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("elements: got status %d: %s", rec.Code, rec.Body)
	}
	var state struct {
		Width    float64         `json:"width"`
		Height   float64         `json:"height"`
		Elements []model.Element `json:"elements"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decoding state failed: %v", err)
	}
	if len(state.Elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(state.Elements))
	}
	got := state.Elements[0]
	if got.X < 0 || got.X > state.Width-got.Width || got.Y < 0 || got.Y > state.Height-got.Height {
		t.Errorf("element out of bounds after concurrent moves: (%v, %v)", got.X, got.Y)
	}
}
