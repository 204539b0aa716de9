package pagedoc

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"go-tv-builder/internal/model"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	elements := []model.Element{
		{ID: "e1", Type: model.TypeHeading, X: 10, Y: 10, Width: 240, Height: 48, Content: "Welcome"},
		{ID: "e2", Type: model.TypeText, X: 10, Y: 80, Width: 160, Height: 40, Content: "Enjoy your stay",
			Styles: map[string]string{"fontSize": "16px"}},
	}

	raw, err := Serialize(elements)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	src := Deserialize(raw)
	if src.Raw || src.Invalid {
		t.Fatalf("round trip lost the document: %+v", src)
	}
	if !reflect.DeepEqual(src.Elements, elements) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", src.Elements, elements)
	}
}

func TestSerializeNilWritesEmptyDocument(t *testing.T) {
	raw, err := Serialize(nil)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(raw, `"elements":[]`) {
		t.Errorf("empty document missing elements array: %s", raw)
	}
	if !strings.Contains(raw, `"layout":"tv"`) || !strings.Contains(raw, `"version":"1.0"`) {
		t.Errorf("empty document missing layout/version tags: %s", raw)
	}
}

func TestDeserializeBareArray(t *testing.T) {
	raw := `[{"id":"e1","type":"text","x":0,"y":0,"width":100,"height":20,"content":"hi"}]`
	src := Deserialize(raw)
	if src.Raw || src.Invalid {
		t.Fatalf("bare array not recognized: %+v", src)
	}
	if len(src.Elements) != 1 || src.Elements[0].ID != "e1" {
		t.Errorf("got elements %+v", src.Elements)
	}
}

func TestDeserializeRawHTMLPassthrough(t *testing.T) {
	raw := `<h1>Legacy page</h1><p>Hand-written markup.</p>`
	src := Deserialize(raw)
	if !src.Raw {
		t.Fatalf("non-JSON content not passed through: %+v", src)
	}
	if src.RawHTML != raw {
		t.Errorf("passthrough altered the markup: %q", src.RawHTML)
	}
}

func TestDeserializeUnknownObjectIsInvalid(t *testing.T) {
	src := Deserialize(`{"foo": "bar"}`)
	if !src.Invalid {
		t.Errorf("JSON object without elements not flagged invalid: %+v", src)
	}
	// Invalid, not raw: valid JSON never renders as literal HTML.
	if src.Raw {
		t.Error("valid JSON flagged as raw HTML")
	}
}

func TestRenderContentFallbackChain(t *testing.T) {
	doc, err := Serialize([]model.Element{
		{ID: "e1", Type: model.TypeText, Width: 100, Height: 20, Content: "hello"},
	})
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"document", doc, `<p style="">hello</p>`},
		{"raw html", "<h1>legacy</h1>", "<h1>legacy</h1>"},
		{"invalid object", `{"not": "a document"}`, InvalidContentHTML},
		{"json scalar", `42`, InvalidContentHTML},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderContent(tc.raw); got != tc.want {
				t.Errorf("RenderContent(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestRenderContentIsDeterministic(t *testing.T) {
	doc, err := Serialize([]model.Element{
		{ID: "e1", Type: model.TypeText, Width: 100, Height: 20, Content: "styled",
			Styles: map[string]string{"fontSize": "16px", "color": "red", "backgroundColor": "blue"}},
	})
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	first := RenderContent(doc)
	for i := 0; i < 20; i++ {
		if got := RenderContent(doc); got != first {
			t.Fatalf("render output unstable:\nfirst %q\ngot   %q", first, got)
		}
	}
}

func TestImportElementsRejectsNonDocuments(t *testing.T) {
	if _, err := ImportElements("<h1>html</h1>"); !errors.Is(err, model.ErrParse) {
		t.Errorf("raw HTML import: got %v, want ErrParse", err)
	}
	if _, err := ImportElements(`{"foo":1}`); !errors.Is(err, model.ErrParse) {
		t.Errorf("invalid object import: got %v, want ErrParse", err)
	}
	els, err := ImportElements(`[]`)
	if err != nil {
		t.Fatalf("empty array import failed: %v", err)
	}
	if len(els) != 0 {
		t.Errorf("got %d elements, want 0", len(els))
	}
}
