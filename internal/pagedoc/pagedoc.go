// Package pagedoc owns the page document encoding: the JSON structure
// {elements, layout, version} persisted inside a page's content field, the
// backward-compatible fallback chain for older encodings, and the static
// HTML rendering of an element list.
package pagedoc

import (
	"encoding/json"
	"fmt"
	"strings"

	"go-tv-builder/internal/model"
)

const (
	// Layout is the only layout tag written for new pages.
	Layout = "tv"
	// Version is the page document version tag.
	Version = "1.0"
)

// Document is the persisted page content shape for new pages.
type Document struct {
	Elements []model.Element `json:"elements"`
	Layout   string          `json:"layout"`
	Version  string          `json:"version"`
}

// InvalidContentHTML is rendered for content that parsed as JSON but is not
// a page document. The public page always renders something.
const InvalidContentHTML = `<p>Invalid page content.</p>`

// Serialize encodes an element list as a page document JSON string. A nil
// element list serializes as an empty document, the boilerplate a new page
// starts with.
func Serialize(elements []model.Element) (string, error) {
	if elements == nil {
		elements = []model.Element{}
	}
	doc := Document{Elements: elements, Layout: Layout, Version: Version}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal page document: %w", err)
	}
	return string(b), nil
}

// Source is the outcome of decoding a persisted content string.
type Source struct {
	// Elements is the decoded element list when the content was a page
	// document or a bare element array.
	Elements []model.Element
	// RawHTML is the pass-through markup for legacy plain-HTML pages.
	RawHTML string
	// Raw reports whether RawHTML should be used instead of Elements.
	Raw bool
	// Invalid reports content that parsed as JSON but matched no known
	// shape; render the invalid-content placeholder.
	Invalid bool
}

// Deserialize decodes a persisted content string, trying in order:
//
//  1. a bare JSON array of elements (oldest format),
//  2. a JSON object with an "elements" field (current format),
//  3. anything that is not JSON at all, passed through as literal HTML
//     (legacy plain-HTML pages).
//
// Valid JSON matching none of these yields an invalid Source rather than an
// error; public rendering must never fail outright.
func Deserialize(raw string) Source {
	trimmed := strings.TrimSpace(raw)
	if !json.Valid([]byte(trimmed)) {
		return Source{RawHTML: raw, Raw: true}
	}
	if strings.HasPrefix(trimmed, "[") {
		var elements []model.Element
		if err := json.Unmarshal([]byte(trimmed), &elements); err != nil {
			return Source{Invalid: true}
		}
		return Source{Elements: elements}
	}
	var doc struct {
		Elements *[]model.Element `json:"elements"`
	}
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil || doc.Elements == nil {
		return Source{Invalid: true}
	}
	return Source{Elements: *doc.Elements}
}

// RenderContent decodes a persisted content string and produces the final
// HTML fragment for the public page, following the fallback chain.
func RenderContent(raw string) string {
	src := Deserialize(raw)
	switch {
	case src.Invalid:
		return InvalidContentHTML
	case src.Raw:
		return src.RawHTML
	default:
		return RenderHTML(src.Elements)
	}
}

// ImportElements parses an exported element list (either encoding accepted
// by Deserialize). Unlike public rendering, imports fail loudly on content
// that is not an element document.
func ImportElements(raw string) ([]model.Element, error) {
	src := Deserialize(raw)
	if src.Raw || src.Invalid {
		return nil, fmt.Errorf("element import: not a page document: %w", model.ErrParse)
	}
	return src.Elements, nil
}
