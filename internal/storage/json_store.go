package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-tv-builder/internal/library"
	"go-tv-builder/internal/model"
)

// JSONStore implements the DataStore interface using JSON files: one file
// per page (keyed by slug) and one per saved TV template (keyed by ID).
type JSONStore struct {
	// BasePath is the directory holding the pages/ and templates/ subtrees.
	BasePath string
}

const (
	pagesDir     = "pages"
	templatesDir = "templates"
)

// NewJSONStore creates a new JSONStore instance. It ensures the storage
// directories exist.
func NewJSONStore(basePath string) (*JSONStore, error) {
	for _, sub := range []string{pagesDir, templatesDir} {
		if err := os.MkdirAll(filepath.Join(basePath, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory '%s': %w", filepath.Join(basePath, sub), err)
		}
	}
	return &JSONStore{BasePath: basePath}, nil
}

// GetBasePath returns the base path of the JSON store.
func (s *JSONStore) GetBasePath() string {
	return s.BasePath
}

// slugToFilename guards against slugs escaping the pages directory.
func slugToFilename(slug string) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("slug cannot be empty")
	}
	if strings.ContainsAny(slug, "/\\") || slug == "." || slug == ".." {
		return "", fmt.Errorf("invalid slug %q", slug)
	}
	return slug + ".json", nil
}

// SavePage persists the page to a JSON file named after its slug. A failed
// write never touches an existing file's previous content partially: data is
// marshaled first and written in one call.
func (s *JSONStore) SavePage(page *model.Page) error {
	name, err := slugToFilename(page.Slug)
	if err != nil {
		return err
	}
	filePath := filepath.Join(s.BasePath, pagesDir, name)

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal page %s: %w", page.Slug, err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write page file %s: %w", filePath, err)
	}
	return nil
}

// LoadPage retrieves a page by slug.
func (s *JSONStore) LoadPage(slug string) (*model.Page, error) {
	name, err := slugToFilename(slug)
	if err != nil {
		return nil, err
	}
	filePath := filepath.Join(s.BasePath, pagesDir, name)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("page %s: %w: %w", slug, model.ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to read page file %s: %w", filePath, err)
	}

	var page model.Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page data from %s: %w", filePath, err)
	}
	return &page, nil
}

// DeletePage removes the page's JSON file. Deleting a missing page is
// idempotent and not an error.
func (s *JSONStore) DeletePage(slug string) error {
	name, err := slugToFilename(slug)
	if err != nil {
		return err
	}
	filePath := filepath.Join(s.BasePath, pagesDir, name)

	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete page file %s: %w", filePath, err)
	}
	return nil
}

// ListPages retrieves all pages by loading each slug file individually.
func (s *JSONStore) ListPages() ([]*model.Page, error) {
	dir := filepath.Join(s.BasePath, pagesDir)
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*model.Page{}, nil
		}
		return nil, fmt.Errorf("failed to read storage directory %s: %w", dir, err)
	}

	pages := make([]*model.Page, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		slug := strings.TrimSuffix(file.Name(), ".json")
		page, err := s.LoadPage(slug)
		if err != nil {
			return nil, fmt.Errorf("failed to load page %s during ListPages: %w", slug, err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// SaveTemplate persists a TV template snapshot to a JSON file named after
// its ID.
func (s *JSONStore) SaveTemplate(t *library.TVTemplate) error {
	if t.ID == "" {
		return fmt.Errorf("template ID cannot be empty")
	}
	filePath := filepath.Join(s.BasePath, templatesDir, t.ID+".json")

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal template %s: %w", t.ID, err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write template file %s: %w", filePath, err)
	}
	return nil
}

// LoadTemplate retrieves a TV template snapshot by ID.
func (s *JSONStore) LoadTemplate(id string) (*library.TVTemplate, error) {
	if id == "" {
		return nil, fmt.Errorf("template ID cannot be empty")
	}
	filePath := filepath.Join(s.BasePath, templatesDir, id+".json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("template %s: %w: %w", id, model.ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to read template file %s: %w", filePath, err)
	}

	var t library.TVTemplate
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template data from %s: %w", filePath, err)
	}
	return &t, nil
}
