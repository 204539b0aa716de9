package library

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"go-tv-builder/internal/model"
)

// WebTemplate is a named bundle of static site files with a designated main
// (entry) file shown on the TV.
type WebTemplate struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Thumbnail   string          `json:"thumbnail"`
	Files       []model.WebFile `json:"files"`
	MainFile    string          `json:"mainFile"`
}

// WebLibrary is the catalog of web template bundles.
type WebLibrary struct {
	logger    *slog.Logger
	templates []WebTemplate
}

// NewWebLibrary creates a catalog seeded with the built-in bundle.
func NewWebLibrary(logger *slog.Logger) *WebLibrary {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &WebLibrary{logger: logger, templates: builtinWebTemplates()}
}

// List returns a copy of the catalog entries.
func (l *WebLibrary) List() []WebTemplate {
	out := make([]WebTemplate, len(l.templates))
	copy(out, l.templates)
	return out
}

func (l *WebLibrary) find(id string) int {
	for i := range l.templates {
		if l.templates[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the bundle with the given ID.
func (l *WebLibrary) Get(id string) (WebTemplate, error) {
	i := l.find(id)
	if i < 0 {
		return WebTemplate{}, fmt.Errorf("web template %s: %w", id, model.ErrNotFound)
	}
	return l.templates[i], nil
}

// HTMLPages lists the bundle's HTML files, the pages selectable on the TV.
func (l *WebLibrary) HTMLPages(id string) ([]model.WebFile, error) {
	t, err := l.Get(id)
	if err != nil {
		return nil, err
	}
	var pages []model.WebFile
	for _, f := range t.Files {
		if f.Type == model.FileHTML {
			pages = append(pages, f)
		}
	}
	return pages, nil
}

// File returns one file of a bundle by name.
func (l *WebLibrary) File(id, name string) (model.WebFile, error) {
	t, err := l.Get(id)
	if err != nil {
		return model.WebFile{}, err
	}
	for _, f := range t.Files {
		if f.Name == name {
			return f, nil
		}
	}
	return model.WebFile{}, fmt.Errorf("web template %s file %s: %w", id, name, model.ErrNotFound)
}

// RemoveFile deletes one file from a bundle. The last remaining file is
// protected, as is the main file.
func (l *WebLibrary) RemoveFile(id, name string) error {
	i := l.find(id)
	if i < 0 {
		return fmt.Errorf("web template %s: %w", id, model.ErrNotFound)
	}
	t := &l.templates[i]
	if len(t.Files) <= 1 {
		return fmt.Errorf("web template %s file %s: %w", id, name, model.ErrLastEntry)
	}
	if name == t.MainFile {
		return fmt.Errorf("web template %s: main file %s cannot be deleted", id, name)
	}
	for j := range t.Files {
		if t.Files[j].Name == name {
			t.Files = append(t.Files[:j], t.Files[j+1:]...)
			return nil
		}
	}
	return fmt.Errorf("web template %s file %s: %w", id, name, model.ErrNotFound)
}

// ExportBundle renders a bundle as the downloadable JSON document keyed by
// file path.
func (l *WebLibrary) ExportBundle(id string) (string, error) {
	t, err := l.Get(id)
	if err != nil {
		return "", err
	}
	files := make(map[string]string, len(t.Files))
	for _, f := range t.Files {
		files[f.Path] = f.Content
	}
	out := struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		Files       map[string]string `json:"files"`
	}{t.Name, t.Description, files}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal web template %s: %w", id, err)
	}
	return string(b), nil
}

// ExportFilename is the download name for a bundle export.
func (t WebTemplate) ExportFilename() string { return t.ID + "-web-template.json" }
