package pagemanager

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go-tv-builder/internal/model"
	"go-tv-builder/internal/pagedoc"
	"go-tv-builder/internal/storage"
	"go-tv-builder/pkg/fsutils"

	"github.com/google/uuid"
)

// PageManager provides methods for managing CMS pages (create, update,
// render, delete). It encapsulates the orchestration between the store and
// the page document encoding so HTTP handlers and the CLI stay thin.
type PageManager struct {
	store  storage.DataStore
	logger *slog.Logger
}

// NewManager creates a new PageManager instance.
func NewManager(store storage.DataStore, logger *slog.Logger) *PageManager {
	if logger == nil {
		// Provide a default discard logger if none is provided
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &PageManager{store: store, logger: logger}
}

// GetStore returns the underlying DataStore instance.
func (m *PageManager) GetStore() storage.DataStore { return m.store }

// CreatePage creates a new draft page with an empty page document. An empty
// title or slug gets the editor defaults; a custom slug is sanitized into
// URL/filename-safe form. Fails if the slug is taken.
func (m *PageManager) CreatePage(title, customSlug, author string) (*model.Page, error) {
	m.logger.Info("Creating page", "title", title, "customSlug", customSlug)

	if title == "" {
		title = "New Page"
	}
	slug := fsutils.SanitizeFilename(customSlug)
	if slug == "" {
		slug = fmt.Sprintf("page-%d", time.Now().UnixMilli())
	}
	if author == "" {
		author = "Admin"
	}

	if _, err := m.store.LoadPage(slug); err == nil {
		return nil, fmt.Errorf("page slug %q already exists", slug)
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("checking slug %q failed: %w", slug, err)
	}

	content, err := pagedoc.Serialize(nil)
	if err != nil {
		return nil, fmt.Errorf("building empty page document failed: %w", err)
	}

	page := &model.Page{
		ID:           uuid.New().String(),
		Title:        title,
		Slug:         slug,
		Status:       model.StatusDraft,
		Author:       author,
		LastModified: time.Now(),
		Views:        0,
		Content:      content,
	}
	if err := m.store.SavePage(page); err != nil {
		m.logger.Error("Error saving new page", "slug", slug, "error", err)
		return nil, fmt.Errorf("saving page %q failed: %w", slug, err)
	}

	m.logger.Info("Successfully created page", "title", title, "slug", slug, "id", page.ID)
	return page, nil
}

// GetPage retrieves a page by slug.
func (m *PageManager) GetPage(slug string) (*model.Page, error) {
	return m.store.LoadPage(slug)
}

// ListPages retrieves all pages.
func (m *PageManager) ListPages() ([]*model.Page, error) {
	return m.store.ListPages()
}

// UpdatePage updates page metadata. Empty values leave the corresponding
// field unchanged.
func (m *PageManager) UpdatePage(slug, newTitle, newAuthor string, newStatus model.PageStatus) error {
	m.logger.Info("Updating page", "slug", slug)

	page, err := m.store.LoadPage(slug)
	if err != nil {
		m.logger.Error("Error loading page for update", "slug", slug, "error", err)
		return fmt.Errorf("loading page %q failed: %w", slug, err)
	}

	updated := false
	if newTitle != "" {
		page.Title = newTitle
		updated = true
	}
	if newAuthor != "" {
		page.Author = newAuthor
		updated = true
	}
	if newStatus != "" {
		switch newStatus {
		case model.StatusDraft, model.StatusPublished, model.StatusReview:
		default:
			return fmt.Errorf("invalid page status %q", newStatus)
		}
		page.Status = newStatus
		updated = true
	}
	if !updated {
		m.logger.Info("No update values provided, nothing to change.", "slug", slug)
		return nil
	}

	page.LastModified = time.Now()
	if err := m.store.SavePage(page); err != nil {
		m.logger.Error("Error saving updated page", "slug", slug, "error", err)
		return fmt.Errorf("saving updated page %q failed: %w", slug, err)
	}
	return nil
}

// SaveDocument serializes the element list into the page's content and
// persists it. On failure the stored page is left as it was; the caller's
// in-memory working copy is never touched by this method.
func (m *PageManager) SaveDocument(slug string, elements []model.Element) error {
	page, err := m.store.LoadPage(slug)
	if err != nil {
		return fmt.Errorf("loading page %q failed: %w", slug, err)
	}
	content, err := pagedoc.Serialize(elements)
	if err != nil {
		return fmt.Errorf("serializing document for page %q failed: %w", slug, err)
	}
	page.Content = content
	page.LastModified = time.Now()
	if err := m.store.SavePage(page); err != nil {
		m.logger.Error("Error saving page document", "slug", slug, "error", err)
		return fmt.Errorf("saving page %q failed: %w", slug, err)
	}
	m.logger.Info("Saved page document", "slug", slug, "elements", len(elements))
	return nil
}

// LoadDocument decodes the page's content through the fallback chain.
func (m *PageManager) LoadDocument(slug string) (pagedoc.Source, error) {
	page, err := m.store.LoadPage(slug)
	if err != nil {
		return pagedoc.Source{}, fmt.Errorf("loading page %q failed: %w", slug, err)
	}
	return pagedoc.Deserialize(page.Content), nil
}

// RenderPage produces the public HTML fragment for a page and bumps its view
// counter. A failed counter write is logged but does not fail the render.
func (m *PageManager) RenderPage(slug string) (string, error) {
	page, err := m.store.LoadPage(slug)
	if err != nil {
		return "", fmt.Errorf("loading page %q failed: %w", slug, err)
	}

	html := pagedoc.RenderContent(page.Content)

	page.Views++
	if err := m.store.SavePage(page); err != nil {
		m.logger.Warn("Failed to record page view", "slug", slug, "error", err)
	}
	return html, nil
}

// DeletePage removes a page.
func (m *PageManager) DeletePage(slug string) error {
	m.logger.Info("Deleting page", "slug", slug)
	if err := m.store.DeletePage(slug); err != nil {
		m.logger.Error("Error deleting page", "slug", slug, "error", err)
		return fmt.Errorf("deleting page %q failed: %w", slug, err)
	}
	return nil
}
