package model

import "errors"

var (
	// ErrNotFound is returned when a page, template or element does not exist.
	ErrNotFound = errors.New("not found")

	// ErrParse is returned when JSON fed to an import path is malformed.
	ErrParse = errors.New("parse error")

	// ErrLastEntry is returned when deleting the only remaining entry of a
	// catalog or bundle; the last entry is protected.
	ErrLastEntry = errors.New("last remaining entry cannot be deleted")
)
