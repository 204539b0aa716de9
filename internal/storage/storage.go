package storage

import (
	"go-tv-builder/internal/library"
	"go-tv-builder/internal/model"
)

// DataStore defines the operations needed for persisting pages and saved TV
// templates. This allows swapping implementations (e.g. JSON files vs. a
// remote row store) later.
type DataStore interface {
	// SavePage persists a page, keyed by its slug.
	SavePage(page *model.Page) error

	// LoadPage retrieves a page by its slug.
	LoadPage(slug string) (*model.Page, error)

	// DeletePage removes a page. Deleting a missing page is not an error.
	DeletePage(slug string) error

	// ListPages retrieves all pages.
	ListPages() ([]*model.Page, error)

	// SaveTemplate persists a TV template snapshot, keyed by its ID.
	SaveTemplate(t *library.TVTemplate) error

	// LoadTemplate retrieves a TV template snapshot by its ID.
	LoadTemplate(id string) (*library.TVTemplate, error)

	// GetBasePath returns the storage base path.
	GetBasePath() string
}
