// Package canvas implements the absolute-position editing surface: selection,
// pointer drag, resize and inline editing over an ordered element collection.
//
// The Canvas is the single owner of its elements. Interaction methods mutate
// the collection directly and emit intents to an optional sink so that outer
// layers (editor UI, persistence) can observe changes without holding back-
// references into the canvas.
package canvas

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"go-tv-builder/internal/model"

	"github.com/google/uuid"
)

type mode int

const (
	modeIdle mode = iota
	modeSelected
	modeDragging
	modeResizing
	modeEditing
)

// Intent is a change notification emitted by the canvas.
type Intent interface{ intent() }

// ElementMoved is emitted after every position change during a drag.
type ElementMoved struct {
	ID   string
	X, Y float64
}

// ElementResized is emitted after every size change during a resize drag.
type ElementResized struct {
	ID            string
	Width, Height float64
}

// ElementDeleted is emitted when an element is removed.
type ElementDeleted struct{ ID string }

// ElementUpdated is emitted when an element's content or styles change.
type ElementUpdated struct{ ID string }

// SelectionChanged is emitted when the selection changes. ID is empty when
// the selection was cleared.
type SelectionChanged struct{ ID string }

// OpenEventEditor is emitted when an event element is double-clicked. Event
// elements are not inline-editable; an external editor dialog owns them.
type OpenEventEditor struct{ ID string }

func (ElementMoved) intent()     {}
func (ElementResized) intent()   {}
func (ElementDeleted) intent()   {}
func (ElementUpdated) intent()   {}
func (SelectionChanged) intent() {}
func (OpenEventEditor) intent()  {}

// Canvas is a bounded editing surface holding an ordered element list.
// Element order is render/stacking order (first = earliest in document order).
type Canvas struct {
	width  float64
	height float64

	elements []model.Element

	mode     mode
	selected string

	// drag/resize state
	activeID string
	offX     float64 // pointer offset from the element's top-left at drag start
	offY     float64

	// inline edit state
	editID    string
	editValue string

	logger *slog.Logger
	sink   func(Intent)
}

// New creates an empty canvas of the given pixel size.
func New(width, height float64, logger *slog.Logger) (*Canvas, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("invalid canvas size %vx%v", width, height)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Canvas{width: width, height: height, logger: logger}, nil
}

// SetIntentSink registers a callback receiving every emitted intent.
func (c *Canvas) SetIntentSink(sink func(Intent)) { c.sink = sink }

func (c *Canvas) emit(i Intent) {
	if c.sink != nil {
		c.sink(i)
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height float64) { return c.width, c.height }

// Elements returns a copy of the element list in render order.
func (c *Canvas) Elements() []model.Element {
	out := make([]model.Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// SetElements replaces the whole element collection, e.g. when loading a page
// document. All interaction state is reset.
func (c *Canvas) SetElements(elements []model.Element) error {
	seen := make(map[string]struct{}, len(elements))
	for _, el := range elements {
		if el.ID == "" {
			return fmt.Errorf("element with empty ID")
		}
		if _, dup := seen[el.ID]; dup {
			return fmt.Errorf("duplicate element ID %s", el.ID)
		}
		if !(el.Width > 0) || !(el.Height > 0) {
			return fmt.Errorf("element %s has non-positive size %vx%v", el.ID, el.Width, el.Height)
		}
		seen[el.ID] = struct{}{}
	}
	c.elements = make([]model.Element, len(elements))
	copy(c.elements, elements)
	// Positions from storage may predate a canvas resize; re-clamp them.
	for i := range c.elements {
		c.clampElement(&c.elements[i])
	}
	c.mode = modeIdle
	c.selected = ""
	c.activeID = ""
	c.editID = ""
	return nil
}

func (c *Canvas) find(id string) *model.Element {
	for i := range c.elements {
		if c.elements[i].ID == id {
			return &c.elements[i]
		}
	}
	return nil
}

// Element returns a copy of the element with the given ID.
func (c *Canvas) Element(id string) (model.Element, error) {
	el := c.find(id)
	if el == nil {
		return model.Element{}, fmt.Errorf("element %s: %w", id, model.ErrNotFound)
	}
	return *el, nil
}

// AddElement appends a new element of the given type with the palette default
// size and content, clamped into the canvas, and returns it.
func (c *Canvas) AddElement(t model.ElementType) model.Element {
	el := paletteDefault(t)
	el.ID = uuid.New().String()
	c.clampElement(&el)
	c.elements = append(c.elements, el)
	c.logger.Debug("element added", "id", el.ID, "type", el.Type)
	return el
}

func paletteDefault(t model.ElementType) model.Element {
	el := model.Element{Type: t, X: 20, Y: 20}
	switch t {
	case model.TypeText:
		el.Width, el.Height, el.Content = 160, 40, "New text"
	case model.TypeHeading:
		el.Width, el.Height, el.Content = 240, 48, "New heading"
	case model.TypeImage:
		el.Width, el.Height, el.Content = 200, 120, "/placeholder.svg"
	case model.TypeButton:
		el.Width, el.Height, el.Content = 140, 44, "Button"
	case model.TypeVideo:
		el.Width, el.Height, el.Content = 240, 135, ""
	case model.TypeLink:
		el.Width, el.Height, el.Content = 120, 32, "Link"
	case model.TypeList:
		el.Width, el.Height, el.Content = 180, 100, "List item"
	case model.TypeContainer:
		el.Width, el.Height, el.Content = 240, 160, ""
	case model.TypeEvent:
		el.Width, el.Height = 200, 80
		el.Content = model.EventPayload{Title: "New event"}.Encode()
	default:
		el.Width, el.Height = 160, 80
	}
	return el
}

// SelectedID returns the ID of the selected element, or "" if none.
func (c *Canvas) SelectedID() string { return c.selected }

// Select makes the element with the given ID the single selected element.
// If another element is mid inline edit, that edit is committed first.
func (c *Canvas) Select(id string) error {
	if c.find(id) == nil {
		return fmt.Errorf("element %s: %w", id, model.ErrNotFound)
	}
	if c.mode == modeEditing && c.editID != id {
		c.CommitInlineEdit()
	}
	if c.selected != id {
		c.selected = id
		c.emit(SelectionChanged{ID: id})
	}
	if c.mode != modeEditing {
		c.mode = modeSelected
	}
	return nil
}

// ClearSelection deselects, as clicking empty canvas area does. A pending
// inline edit is committed first.
func (c *Canvas) ClearSelection() {
	if c.mode == modeEditing {
		c.CommitInlineEdit()
	}
	if c.selected != "" {
		c.selected = ""
		c.emit(SelectionChanged{})
	}
	c.mode = modeIdle
}

func validPointer(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// StartDrag begins dragging the element under the pointer. The pointer's
// offset from the element's top-left corner is captured so the grab point
// stays under the cursor. Starting a drag while another drag or resize is in
// progress is a no-op.
func (c *Canvas) StartDrag(id string, pointerX, pointerY float64) error {
	if c.mode == modeDragging || c.mode == modeResizing {
		return nil
	}
	if !validPointer(pointerX, pointerY) {
		c.logger.Debug("ignoring malformed pointer input", "x", pointerX, "y", pointerY)
		return nil
	}
	el := c.find(id)
	if el == nil {
		return fmt.Errorf("element %s: %w", id, model.ErrNotFound)
	}
	// A pending inline edit is committed, not discarded, whichever element
	// it belongs to. Select only commits edits on other elements.
	if c.mode == modeEditing {
		c.CommitInlineEdit()
	}
	if err := c.Select(id); err != nil {
		return err
	}
	c.mode = modeDragging
	c.activeID = id
	c.offX = pointerX - el.X
	c.offY = pointerY - el.Y
	return nil
}

// StartResize begins a south-east handle resize of the element. The pointer's
// offset from the element's bottom-right corner is captured.
func (c *Canvas) StartResize(id string, pointerX, pointerY float64) error {
	if c.mode == modeDragging || c.mode == modeResizing {
		return nil
	}
	if !validPointer(pointerX, pointerY) {
		c.logger.Debug("ignoring malformed pointer input", "x", pointerX, "y", pointerY)
		return nil
	}
	el := c.find(id)
	if el == nil {
		return fmt.Errorf("element %s: %w", id, model.ErrNotFound)
	}
	if c.mode == modeEditing {
		c.CommitInlineEdit()
	}
	if err := c.Select(id); err != nil {
		return err
	}
	c.mode = modeResizing
	c.activeID = id
	c.offX = pointerX - (el.X + el.Width)
	c.offY = pointerY - (el.Y + el.Height)
	return nil
}

// PointerMove updates the active drag or resize with a new pointer position.
// Malformed coordinates (NaN, Inf) are ignored; the element position always
// stays finite and in bounds. Outside a drag or resize this is a no-op.
func (c *Canvas) PointerMove(pointerX, pointerY float64) {
	if c.mode != modeDragging && c.mode != modeResizing {
		return
	}
	if !validPointer(pointerX, pointerY) {
		c.logger.Debug("ignoring malformed pointer input", "x", pointerX, "y", pointerY)
		return
	}
	el := c.find(c.activeID)
	if el == nil {
		// Element was deleted mid-gesture; drop the gesture.
		c.mode = modeSelected
		c.activeID = ""
		return
	}
	if c.mode == modeDragging {
		el.X = clamp(pointerX-c.offX, 0, c.width-el.Width)
		el.Y = clamp(pointerY-c.offY, 0, c.height-el.Height)
		c.emit(ElementMoved{ID: el.ID, X: el.X, Y: el.Y})
		return
	}
	// Resize keeps the top-left corner fixed; the element may not shrink
	// below 1px or grow past the canvas edge.
	el.Width = clamp(pointerX-c.offX-el.X, 1, c.width-el.X)
	el.Height = clamp(pointerY-c.offY-el.Y, 1, c.height-el.Y)
	c.emit(ElementResized{ID: el.ID, Width: el.Width, Height: el.Height})
}

// EndDrag finishes the active drag or resize. Releasing the pointer outside
// any target is handled identically to a normal release.
func (c *Canvas) EndDrag() {
	if c.mode != modeDragging && c.mode != modeResizing {
		return
	}
	c.mode = modeSelected
	c.activeID = ""
}

// DoubleClick dispatches a double-click on an element: text and heading enter
// inline edit, event elements raise an OpenEventEditor intent, every other
// type is inert.
func (c *Canvas) DoubleClick(id string) error {
	el := c.find(id)
	if el == nil {
		return fmt.Errorf("element %s: %w", id, model.ErrNotFound)
	}
	switch el.Type {
	case model.TypeText, model.TypeHeading:
		return c.StartInlineEdit(id)
	case model.TypeEvent:
		if err := c.Select(id); err != nil {
			return err
		}
		c.emit(OpenEventEditor{ID: id})
	}
	return nil
}

// StartInlineEdit begins editing the text content of a text or heading
// element. The edit buffer is seeded with the current content.
func (c *Canvas) StartInlineEdit(id string) error {
	el := c.find(id)
	if el == nil {
		return fmt.Errorf("element %s: %w", id, model.ErrNotFound)
	}
	if el.Type != model.TypeText && el.Type != model.TypeHeading {
		return fmt.Errorf("element %s of type %q is not inline-editable", id, el.Type)
	}
	if err := c.Select(id); err != nil {
		return err
	}
	c.mode = modeEditing
	c.editID = id
	c.editValue = el.Content
	return nil
}

// SetEditValue replaces the in-progress edit buffer.
func (c *Canvas) SetEditValue(text string) {
	if c.mode == modeEditing {
		c.editValue = text
	}
}

// CommitInlineEdit writes the edit buffer into the element and leaves edit
// mode. Outside an edit this is a no-op.
func (c *Canvas) CommitInlineEdit() {
	if c.mode != modeEditing {
		return
	}
	if el := c.find(c.editID); el != nil {
		el.Content = c.editValue
		c.emit(ElementUpdated{ID: el.ID})
	}
	c.mode = modeSelected
	c.editID = ""
	c.editValue = ""
}

// CancelInlineEdit discards the edit buffer and leaves edit mode.
func (c *Canvas) CancelInlineEdit() {
	if c.mode != modeEditing {
		return
	}
	c.mode = modeSelected
	c.editID = ""
	c.editValue = ""
}

// Update merges a partial update into one element, leaving others untouched.
// Position and size are re-clamped afterwards so the invariants hold for
// updates coming from form inputs as well as drags.
func (c *Canvas) Update(id string, u model.ElementUpdate) error {
	el := c.find(id)
	if el == nil {
		return fmt.Errorf("element %s: %w", id, model.ErrNotFound)
	}
	if u.Width != nil && (!(*u.Width > 0) || math.IsNaN(*u.Width) || math.IsInf(*u.Width, 0)) {
		return fmt.Errorf("element %s: invalid width %v", id, *u.Width)
	}
	if u.Height != nil && (!(*u.Height > 0) || math.IsNaN(*u.Height) || math.IsInf(*u.Height, 0)) {
		return fmt.Errorf("element %s: invalid height %v", id, *u.Height)
	}
	if u.X != nil && !validPointer(*u.X, 0) {
		return fmt.Errorf("element %s: invalid x %v", id, *u.X)
	}
	if u.Y != nil && !validPointer(0, *u.Y) {
		return fmt.Errorf("element %s: invalid y %v", id, *u.Y)
	}
	u.Apply(el)
	c.clampElement(el)
	c.emit(ElementUpdated{ID: el.ID})
	return nil
}

// Delete removes the element. If it was selected the selection is cleared;
// if it was mid-edit the edit is dropped without committing.
func (c *Canvas) Delete(id string) error {
	idx := -1
	for i := range c.elements {
		if c.elements[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("element %s: %w", id, model.ErrNotFound)
	}
	if c.editID == id {
		c.mode = modeSelected
		c.editID = ""
		c.editValue = ""
	}
	if c.activeID == id {
		c.mode = modeSelected
		c.activeID = ""
	}
	c.elements = append(c.elements[:idx], c.elements[idx+1:]...)
	if c.selected == id {
		c.selected = ""
		c.mode = modeIdle
		c.emit(SelectionChanged{})
	}
	c.emit(ElementDeleted{ID: id})
	return nil
}

func (c *Canvas) clampElement(el *model.Element) {
	if el.Width > c.width {
		el.Width = c.width
	}
	if el.Height > c.height {
		el.Height = c.height
	}
	el.X = clamp(el.X, 0, c.width-el.Width)
	el.Y = clamp(el.Y, 0, c.height-el.Height)
}

// clamp bounds v to [lo, hi]. The lower bound wins when hi < lo, which keeps
// oversized elements pinned to the origin instead of at negative coordinates.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
