// Package library holds the in-memory catalogs of named template snapshots:
// TV home screen configurations and multi-file web template bundles. The
// catalogs guarantee at least one entry at all times; persistence beyond the
// process lifetime belongs to the storage layer.
package library

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"go-tv-builder/internal/model"
	"go-tv-builder/internal/tvconfig"

	"github.com/google/uuid"
)

// TVTemplate is a named, timestamped snapshot of a TV configuration.
type TVTemplate struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Thumbnail   string                `json:"thumbnail"`
	Data        tvconfig.TemplateData `json:"data"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// Library is the TV template catalog.
type Library struct {
	logger    *slog.Logger
	templates []TVTemplate
}

// New creates a catalog seeded with the built-in presets.
func New(logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Library{logger: logger, templates: builtinTVTemplates()}
}

// List returns a copy of the catalog entries in insertion order.
func (l *Library) List() []TVTemplate {
	out := make([]TVTemplate, len(l.templates))
	copy(out, l.templates)
	return out
}

func (l *Library) find(id string) int {
	for i := range l.templates {
		if l.templates[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the catalog entry with the given ID.
func (l *Library) Get(id string) (TVTemplate, error) {
	i := l.find(id)
	if i < 0 {
		return TVTemplate{}, fmt.Errorf("template %s: %w", id, model.ErrNotFound)
	}
	return l.templates[i], nil
}

// Add saves the given configuration snapshot as a new named entry. The
// snapshot's background image doubles as the thumbnail.
func (l *Library) Add(name string, data tvconfig.TemplateData) TVTemplate {
	t := TVTemplate{
		ID:          uuid.New().String(),
		Name:        name,
		Description: "Custom Template",
		Thumbnail:   data.BackgroundImage,
		Data:        data,
		CreatedAt:   time.Now(),
	}
	l.templates = append(l.templates, t)
	l.logger.Debug("template saved", "id", t.ID, "name", t.Name)
	return t
}

// Duplicate copies an entry by value under a fresh ID and timestamp, with
// the name suffixed "(Copy)".
func (l *Library) Duplicate(id string) (TVTemplate, error) {
	i := l.find(id)
	if i < 0 {
		return TVTemplate{}, fmt.Errorf("template %s: %w", id, model.ErrNotFound)
	}
	dup := l.templates[i]
	dup.ID = uuid.New().String()
	dup.Name = dup.Name + " (Copy)"
	dup.CreatedAt = time.Now()
	l.templates = append(l.templates, dup)
	return dup, nil
}

// Remove deletes an entry. The last remaining entry is protected.
func (l *Library) Remove(id string) error {
	i := l.find(id)
	if i < 0 {
		return fmt.Errorf("template %s: %w", id, model.ErrNotFound)
	}
	if len(l.templates) <= 1 {
		return fmt.Errorf("template %s: %w", id, model.ErrLastEntry)
	}
	l.templates = append(l.templates[:i], l.templates[i+1:]...)
	return nil
}

// Select returns the entry's configuration snapshot, normalized, ready to
// replace the live config.
func (l *Library) Select(id string) (tvconfig.TemplateData, error) {
	t, err := l.Get(id)
	if err != nil {
		return tvconfig.TemplateData{}, err
	}
	return tvconfig.Normalize(t.Data), nil
}
