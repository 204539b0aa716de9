package model

import "time"

// PageStatus is the editorial state of a page.
type PageStatus string

const (
	StatusDraft     PageStatus = "draft"
	StatusPublished PageStatus = "published"
	StatusReview    PageStatus = "review"
)

// Page is one CMS page as persisted. Content is itself a JSON-encoded page
// document ({elements, layout, version}); the pagedoc package is the only
// producer and consumer of that inner encoding.
type Page struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Status       PageStatus `json:"status"`
	Author       string     `json:"author"`
	LastModified time.Time  `json:"lastModified"`
	Views        int        `json:"views"`
	Content      string     `json:"content"`
}

// WebFileType classifies a file inside a web template bundle.
type WebFileType string

const (
	FileHTML  WebFileType = "html"
	FileCSS   WebFileType = "css"
	FileJS    WebFileType = "js"
	FileJSON  WebFileType = "json"
	FileImage WebFileType = "image"
)

// WebFile is a single file inside a web template bundle.
type WebFile struct {
	Name    string      `json:"name"`
	Type    WebFileType `json:"type"`
	Content string      `json:"content"`
	Path    string      `json:"path"`
}
