package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ElementType identifies the render strategy and editing affordances of a
// canvas element. The set is closed; unknown types fall back to a plain div
// at render time.
type ElementType string

const (
	TypeText      ElementType = "text"
	TypeHeading   ElementType = "heading"
	TypeImage     ElementType = "image"
	TypeButton    ElementType = "button"
	TypeVideo     ElementType = "video"
	TypeLink      ElementType = "link"
	TypeList      ElementType = "list"
	TypeContainer ElementType = "container"
	TypeEvent     ElementType = "event"
)

// ErrInvalidEventContent is returned when an event element's content does not
// decode as an event payload. Renderers show a visible error state instead of
// propagating this.
var ErrInvalidEventContent = errors.New("invalid event content")

// Element is one positioned, typed object on the editing canvas.
// X/Y are canvas-local pixel coordinates of the top-left corner; after any
// drag or resize they stay within [0, canvas-size - element-size].
//
// Content is always a string on the wire. For most types it is the plain text
// body, image URL or link target; for event elements it is a JSON-encoded
// EventPayload. Use DecodeEvent to get the structured form.
type Element struct {
	ID      string            `json:"id"`
	Type    ElementType       `json:"type"`
	X       float64           `json:"x"`
	Y       float64           `json:"y"`
	Width   float64           `json:"width"`
	Height  float64           `json:"height"`
	Content string            `json:"content"`
	Styles  map[string]string `json:"styles,omitempty"`
}

// EventPayload is the structured form of an event element's content.
// Extra fields that legacy page templates stored alongside these are
// tolerated on decode and dropped.
type EventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Encode returns the string form stored in Element.Content.
func (p EventPayload) Encode() string {
	b, _ := json.Marshal(p)
	return string(b)
}

// DecodeEvent decodes the element's content as an event payload.
// Returns ErrInvalidEventContent (wrapped) for non-event elements or content
// that is not valid JSON.
func (e Element) DecodeEvent() (EventPayload, error) {
	if e.Type != TypeEvent {
		return EventPayload{}, fmt.Errorf("element %s is %q, not an event: %w", e.ID, e.Type, ErrInvalidEventContent)
	}
	var p EventPayload
	if err := json.Unmarshal([]byte(e.Content), &p); err != nil {
		return EventPayload{}, fmt.Errorf("element %s: %v: %w", e.ID, err, ErrInvalidEventContent)
	}
	return p, nil
}

// ElementUpdate carries a partial update for a single element. Nil fields are
// left untouched; a non-nil Styles replaces the style map wholesale.
type ElementUpdate struct {
	X       *float64           `json:"x,omitempty"`
	Y       *float64           `json:"y,omitempty"`
	Width   *float64           `json:"width,omitempty"`
	Height  *float64           `json:"height,omitempty"`
	Content *string            `json:"content,omitempty"`
	Styles  *map[string]string `json:"styles,omitempty"`
}

// Apply merges the update into the element.
func (u ElementUpdate) Apply(e *Element) {
	if u.X != nil {
		e.X = *u.X
	}
	if u.Y != nil {
		e.Y = *u.Y
	}
	if u.Width != nil {
		e.Width = *u.Width
	}
	if u.Height != nil {
		e.Height = *u.Height
	}
	if u.Content != nil {
		e.Content = *u.Content
	}
	if u.Styles != nil {
		e.Styles = *u.Styles
	}
}
