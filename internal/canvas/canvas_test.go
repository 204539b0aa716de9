package canvas

import (
	"errors"
	"math"
	"testing"

	"go-tv-builder/internal/model"
)

func newTestCanvas(t *testing.T, width, height float64, elements ...model.Element) *Canvas {
	t.Helper()
	c, err := New(width, height, nil)
	if err != nil {
		t.Fatalf("New(%v, %v) failed: %v", width, height, err)
	}
	if len(elements) > 0 {
		if err := c.SetElements(elements); err != nil {
			t.Fatalf("SetElements failed: %v", err)
		}
	}
	return c
}

func textElement(id string, x, y, w, h float64) model.Element {
	return model.Element{ID: id, Type: model.TypeText, X: x, Y: y, Width: w, Height: h, Content: "hello"}
}

func TestNewRejectsInvalidSize(t *testing.T) {
	for _, tc := range []struct{ w, h float64 }{
		{0, 300},
		{400, 0},
		{-10, 300},
		{math.Inf(1), 300},
		{400, math.NaN()},
	} {
		if _, err := New(tc.w, tc.h, nil); err == nil {
			t.Errorf("New(%v, %v) expected error, got nil", tc.w, tc.h)
		}
	}
}

func TestDragClampsToCanvasBounds(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))

	// Grab the element at (60, 20): offset (50, 10) from its top-left.
	if err := c.StartDrag("e1", 60, 20); err != nil {
		t.Fatalf("StartDrag failed: %v", err)
	}
	c.PointerMove(500, 500)
	c.EndDrag()

	el, err := c.Element("e1")
	if err != nil {
		t.Fatalf("Element failed: %v", err)
	}
	// Unclamped target would be (450, 490); the element pins to the
	// bottom-right limit (400-100, 300-20).
	if el.X != 300 || el.Y != 280 {
		t.Errorf("got position (%v, %v), want (300, 280)", el.X, el.Y)
	}
}

func TestDragPreservesGrabOffset(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))

	if err := c.StartDrag("e1", 60, 20); err != nil {
		t.Fatalf("StartDrag failed: %v", err)
	}
	c.PointerMove(100, 100)

	el, _ := c.Element("e1")
	// Pointer moved (+40, +80); the element must too.
	if el.X != 50 || el.Y != 90 {
		t.Errorf("got position (%v, %v), want (50, 90)", el.X, el.Y)
	}
}

func TestDragIgnoresMalformedPointer(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))

	if err := c.StartDrag("e1", 60, 20); err != nil {
		t.Fatalf("StartDrag failed: %v", err)
	}
	c.PointerMove(math.NaN(), 50)
	c.PointerMove(50, math.Inf(1))

	el, _ := c.Element("e1")
	if el.X != 10 || el.Y != 10 {
		t.Errorf("position changed to (%v, %v) after malformed input", el.X, el.Y)
	}

	// The gesture survives malformed samples; a good one still lands.
	c.PointerMove(70, 30)
	el, _ = c.Element("e1")
	if el.X != 20 || el.Y != 20 {
		t.Errorf("got position (%v, %v), want (20, 20)", el.X, el.Y)
	}
}

func TestStartDragWhileDraggingIsNoOp(t *testing.T) {
	c := newTestCanvas(t, 400, 300,
		textElement("e1", 10, 10, 100, 20),
		textElement("e2", 200, 100, 50, 50),
	)

	if err := c.StartDrag("e1", 60, 20); err != nil {
		t.Fatalf("StartDrag failed: %v", err)
	}
	if err := c.StartDrag("e2", 210, 110); err != nil {
		t.Fatalf("second StartDrag returned error: %v", err)
	}

	// e1 is still the active element.
	c.PointerMove(160, 120)
	e1, _ := c.Element("e1")
	e2, _ := c.Element("e2")
	if e1.X != 110 || e1.Y != 110 {
		t.Errorf("e1 at (%v, %v), want (110, 110)", e1.X, e1.Y)
	}
	if e2.X != 200 || e2.Y != 100 {
		t.Errorf("e2 moved to (%v, %v)", e2.X, e2.Y)
	}
}

func TestPointerMoveOutsideGestureIsNoOp(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))
	c.PointerMove(200, 200)
	el, _ := c.Element("e1")
	if el.X != 10 || el.Y != 10 {
		t.Errorf("element moved to (%v, %v) without a drag", el.X, el.Y)
	}
}

func TestResizeClampsToCanvas(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 100, 100, 50, 50))

	if err := c.StartResize("e1", 150, 150); err != nil {
		t.Fatalf("StartResize failed: %v", err)
	}
	c.PointerMove(1000, 1000)

	el, _ := c.Element("e1")
	if el.Width != 300 || el.Height != 200 {
		t.Errorf("got size %vx%v, want 300x200", el.Width, el.Height)
	}
	if el.X != 100 || el.Y != 100 {
		t.Errorf("resize moved the element to (%v, %v)", el.X, el.Y)
	}

	// Shrinking below 1px clamps at 1.
	c.PointerMove(0, 0)
	el, _ = c.Element("e1")
	if el.Width != 1 || el.Height != 1 {
		t.Errorf("got size %vx%v, want 1x1", el.Width, el.Height)
	}
}

func TestSelectEmitsIntentOnce(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))

	var intents []Intent
	c.SetIntentSink(func(i Intent) { intents = append(intents, i) })

	if err := c.Select("e1"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := c.Select("e1"); err != nil {
		t.Fatalf("re-Select failed: %v", err)
	}

	if len(intents) != 1 {
		t.Fatalf("got %d intents, want 1", len(intents))
	}
	if sc, ok := intents[0].(SelectionChanged); !ok || sc.ID != "e1" {
		t.Errorf("got intent %#v, want SelectionChanged{e1}", intents[0])
	}
}

func TestSelectMissingElement(t *testing.T) {
	c := newTestCanvas(t, 400, 300)
	err := c.Select("ghost")
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSelectOtherElementCommitsEdit(t *testing.T) {
	c := newTestCanvas(t, 400, 300,
		textElement("e1", 10, 10, 100, 20),
		textElement("e2", 200, 100, 50, 50),
	)

	if err := c.StartInlineEdit("e1"); err != nil {
		t.Fatalf("StartInlineEdit failed: %v", err)
	}
	c.SetEditValue("edited")
	if err := c.Select("e2"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	e1, _ := c.Element("e1")
	if e1.Content != "edited" {
		t.Errorf("got content %q, want committed edit", e1.Content)
	}
	if c.SelectedID() != "e2" {
		t.Errorf("selected %q, want e2", c.SelectedID())
	}
}

func TestInlineEditLifecycle(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))

	if err := c.StartInlineEdit("e1"); err != nil {
		t.Fatalf("StartInlineEdit failed: %v", err)
	}
	c.SetEditValue("new content")
	c.CommitInlineEdit()

	el, _ := c.Element("e1")
	if el.Content != "new content" {
		t.Errorf("got content %q, want %q", el.Content, "new content")
	}

	// Cancel discards.
	c.StartInlineEdit("e1")
	c.SetEditValue("discarded")
	c.CancelInlineEdit()
	el, _ = c.Element("e1")
	if el.Content != "new content" {
		t.Errorf("cancel leaked edit buffer: content %q", el.Content)
	}
}

func TestDragDuringEditCommitsEdit(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))

	if err := c.StartInlineEdit("e1"); err != nil {
		t.Fatalf("StartInlineEdit failed: %v", err)
	}
	c.SetEditValue("typed mid-edit")

	// Grabbing the element being edited commits the buffer instead of
	// silently dropping it.
	if err := c.StartDrag("e1", 60, 20); err != nil {
		t.Fatalf("StartDrag failed: %v", err)
	}
	el, _ := c.Element("e1")
	if el.Content != "typed mid-edit" {
		t.Errorf("got content %q, want the committed edit", el.Content)
	}

	// The drag itself proceeds normally.
	c.PointerMove(100, 100)
	el, _ = c.Element("e1")
	if el.X != 50 || el.Y != 90 {
		t.Errorf("got position (%v, %v), want (50, 90)", el.X, el.Y)
	}

	// Committing again later must not resurrect stale edit state.
	c.EndDrag()
	c.CommitInlineEdit()
	el, _ = c.Element("e1")
	if el.Content != "typed mid-edit" {
		t.Errorf("stale edit state overwrote content: %q", el.Content)
	}
}

func TestResizeDuringEditCommitsEdit(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))

	if err := c.StartInlineEdit("e1"); err != nil {
		t.Fatalf("StartInlineEdit failed: %v", err)
	}
	c.SetEditValue("kept")
	if err := c.StartResize("e1", 110, 30); err != nil {
		t.Fatalf("StartResize failed: %v", err)
	}
	el, _ := c.Element("e1")
	if el.Content != "kept" {
		t.Errorf("got content %q, want the committed edit", el.Content)
	}
}

func TestInlineEditRejectsNonTextTypes(t *testing.T) {
	c := newTestCanvas(t, 400, 300, model.Element{
		ID: "img1", Type: model.TypeImage, X: 0, Y: 0, Width: 100, Height: 100, Content: "/a.png",
	})
	if err := c.StartInlineEdit("img1"); err == nil {
		t.Error("expected error editing an image element")
	}
}

func TestDoubleClickEventEmitsOpenEventEditor(t *testing.T) {
	c := newTestCanvas(t, 400, 300, model.Element{
		ID: "ev1", Type: model.TypeEvent, X: 0, Y: 0, Width: 200, Height: 80,
		Content: model.EventPayload{Title: "Breakfast"}.Encode(),
	})

	var intents []Intent
	c.SetIntentSink(func(i Intent) { intents = append(intents, i) })

	if err := c.DoubleClick("ev1"); err != nil {
		t.Fatalf("DoubleClick failed: %v", err)
	}

	found := false
	for _, i := range intents {
		if oe, ok := i.(OpenEventEditor); ok && oe.ID == "ev1" {
			found = true
		}
	}
	if !found {
		t.Errorf("no OpenEventEditor intent emitted, got %#v", intents)
	}
}

func TestDoubleClickTextStartsEdit(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))
	if err := c.DoubleClick("e1"); err != nil {
		t.Fatalf("DoubleClick failed: %v", err)
	}
	c.SetEditValue("via dblclick")
	c.CommitInlineEdit()
	el, _ := c.Element("e1")
	if el.Content != "via dblclick" {
		t.Errorf("double-click did not enter edit mode: content %q", el.Content)
	}
}

func TestDeleteClearsSelection(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))

	if err := c.Select("e1"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := c.Delete("e1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if c.SelectedID() != "" {
		t.Errorf("selection not cleared: %q", c.SelectedID())
	}
	if _, err := c.Element("e1"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("element still present after delete: %v", err)
	}
}

func TestDeleteDuringDragDropsGesture(t *testing.T) {
	c := newTestCanvas(t, 400, 300,
		textElement("e1", 10, 10, 100, 20),
		textElement("e2", 200, 100, 50, 50),
	)

	if err := c.StartDrag("e1", 60, 20); err != nil {
		t.Fatalf("StartDrag failed: %v", err)
	}
	if err := c.Delete("e1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Further pointer movement must not disturb the survivor.
	c.PointerMove(250, 150)
	e2, _ := c.Element("e2")
	if e2.X != 200 || e2.Y != 100 {
		t.Errorf("e2 moved to (%v, %v) after deleting the dragged element", e2.X, e2.Y)
	}
}

func TestUpdateClampsAndValidates(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))

	x := 9999.0
	if err := c.Update("e1", model.ElementUpdate{X: &x}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	el, _ := c.Element("e1")
	if el.X != 300 {
		t.Errorf("got x=%v, want clamped 300", el.X)
	}

	bad := -5.0
	if err := c.Update("e1", model.ElementUpdate{Width: &bad}); err == nil {
		t.Error("expected error for non-positive width")
	}
	nan := math.NaN()
	if err := c.Update("e1", model.ElementUpdate{Y: &nan}); err == nil {
		t.Error("expected error for NaN y")
	}
}

func TestSetElementsValidation(t *testing.T) {
	c := newTestCanvas(t, 400, 300)

	err := c.SetElements([]model.Element{
		textElement("dup", 0, 0, 10, 10),
		textElement("dup", 0, 0, 10, 10),
	})
	if err == nil {
		t.Error("expected error for duplicate IDs")
	}

	err = c.SetElements([]model.Element{textElement("e1", 0, 0, 0, 10)})
	if err == nil {
		t.Error("expected error for zero width")
	}

	// Out-of-bounds positions from storage are re-clamped on load.
	if err := c.SetElements([]model.Element{textElement("e1", 900, 900, 100, 20)}); err != nil {
		t.Fatalf("SetElements failed: %v", err)
	}
	el, _ := c.Element("e1")
	if el.X != 300 || el.Y != 280 {
		t.Errorf("got position (%v, %v), want re-clamped (300, 280)", el.X, el.Y)
	}
}

func TestAddElementPaletteDefaults(t *testing.T) {
	c := newTestCanvas(t, 400, 300)

	txt := c.AddElement(model.TypeText)
	if txt.ID == "" {
		t.Error("added element has no ID")
	}
	if txt.Width != 160 || txt.Height != 40 || txt.Content != "New text" {
		t.Errorf("unexpected text defaults: %+v", txt)
	}

	ev := c.AddElement(model.TypeEvent)
	p, err := ev.DecodeEvent()
	if err != nil {
		t.Fatalf("new event element content does not decode: %v", err)
	}
	if p.Title != "New event" {
		t.Errorf("got event title %q", p.Title)
	}

	if len(c.Elements()) != 2 {
		t.Errorf("got %d elements, want 2", len(c.Elements()))
	}
}

func TestElementsReturnsCopy(t *testing.T) {
	c := newTestCanvas(t, 400, 300, textElement("e1", 10, 10, 100, 20))
	got := c.Elements()
	got[0].X = 777
	el, _ := c.Element("e1")
	if el.X != 10 {
		t.Error("Elements() exposed internal state")
	}
}
