package library

import (
	"errors"
	"strings"
	"testing"

	"go-tv-builder/internal/model"
	"go-tv-builder/internal/tvconfig"
)

func TestNewSeedsBuiltins(t *testing.T) {
	lib := New(nil)
	if len(lib.List()) == 0 {
		t.Fatal("catalog is empty after New")
	}
	if _, err := lib.Get("hotel-hilton"); err != nil {
		t.Errorf("built-in hotel-hilton missing: %v", err)
	}
}

func TestAddSnapshotsConfig(t *testing.T) {
	lib := New(nil)
	data := tvconfig.Default()
	data.SetLogo("https://example.com/logo.png")

	added := lib.Add("My Template", data)

	if added.ID == "" {
		t.Error("added template has no ID")
	}
	if added.Name != "My Template" {
		t.Errorf("got name %q", added.Name)
	}
	if added.Thumbnail != data.BackgroundImage {
		t.Errorf("thumbnail %q, want background image %q", added.Thumbnail, data.BackgroundImage)
	}

	got, err := lib.Get(added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Data.Logo != "https://example.com/logo.png" {
		t.Errorf("snapshot lost the logo: %q", got.Data.Logo)
	}

	// Mutating the source after Add must not change the snapshot.
	data.SetLogo("mutated")
	got, _ = lib.Get(added.ID)
	if got.Data.Logo == "mutated" {
		t.Error("catalog entry shares state with the caller's config")
	}
}

func TestDuplicate(t *testing.T) {
	lib := New(nil)
	orig, err := lib.Get("hotel-hilton")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	dup, err := lib.Duplicate("hotel-hilton")
	if err != nil {
		t.Fatalf("Duplicate failed: %v", err)
	}

	if dup.ID == orig.ID || dup.ID == "" {
		t.Errorf("duplicate ID %q not fresh", dup.ID)
	}
	if dup.Name != orig.Name+" (Copy)" {
		t.Errorf("got name %q, want %q", dup.Name, orig.Name+" (Copy)")
	}
	if dup.Data.Logo != orig.Data.Logo {
		t.Error("duplicate did not copy the config data")
	}
	if len(lib.List()) != 3 {
		t.Errorf("got %d entries, want 3", len(lib.List()))
	}
}

func TestDuplicateMissing(t *testing.T) {
	lib := New(nil)
	if _, err := lib.Duplicate("ghost"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestRemoveProtectsLastEntry(t *testing.T) {
	lib := New(nil)

	// Shrink the catalog down to one entry.
	entries := lib.List()
	for _, e := range entries[1:] {
		if err := lib.Remove(e.ID); err != nil {
			t.Fatalf("Remove(%s) failed: %v", e.ID, err)
		}
	}
	if len(lib.List()) != 1 {
		t.Fatalf("got %d entries, want 1", len(lib.List()))
	}

	last := lib.List()[0]
	err := lib.Remove(last.ID)
	if !errors.Is(err, model.ErrLastEntry) {
		t.Errorf("got %v, want ErrLastEntry", err)
	}
	if len(lib.List()) != 1 {
		t.Error("last entry was removed despite the guard")
	}
}

func TestSelectNormalizes(t *testing.T) {
	lib := New(nil)
	added := lib.Add("raw", tvconfig.TemplateData{Logo: "/l.png"})

	data, err := lib.Select(added.ID)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if data.Cards.Welcome.Size != tvconfig.DefaultCardSize {
		t.Errorf("selected config not normalized: size %d", data.Cards.Welcome.Size)
	}
	if !data.Time.Enabled {
		t.Error("selected config has disabled clock after normalization")
	}
}

func TestWebLibraryFileGuards(t *testing.T) {
	lib := NewWebLibrary(nil)
	entries := lib.List()
	if len(entries) == 0 {
		t.Fatal("web catalog is empty after NewWebLibrary")
	}
	tmpl := entries[0]

	if err := lib.RemoveFile(tmpl.ID, tmpl.MainFile); err == nil {
		t.Error("main file deletion must be rejected")
	}

	// Delete everything except the main file; the final survivor is guarded.
	for _, f := range tmpl.Files {
		if f.Name == tmpl.MainFile {
			continue
		}
		current, _ := lib.Get(tmpl.ID)
		if len(current.Files) == 1 {
			break
		}
		if err := lib.RemoveFile(tmpl.ID, f.Name); err != nil {
			t.Fatalf("RemoveFile(%s) failed: %v", f.Name, err)
		}
	}

	current, _ := lib.Get(tmpl.ID)
	if len(current.Files) != 1 {
		t.Fatalf("got %d files, want 1", len(current.Files))
	}
	if err := lib.RemoveFile(tmpl.ID, current.Files[0].Name); !errors.Is(err, model.ErrLastEntry) {
		t.Errorf("got %v, want ErrLastEntry", err)
	}
}

func TestWebLibraryHTMLPages(t *testing.T) {
	lib := NewWebLibrary(nil)
	tmpl := lib.List()[0]

	pages, err := lib.HTMLPages(tmpl.ID)
	if err != nil {
		t.Fatalf("HTMLPages failed: %v", err)
	}
	if len(pages) == 0 {
		t.Fatal("built-in bundle has no HTML pages")
	}
	for _, p := range pages {
		if p.Type != model.FileHTML {
			t.Errorf("non-HTML file %q in page list", p.Name)
		}
	}
}

func TestWebLibraryExport(t *testing.T) {
	lib := NewWebLibrary(nil)
	tmpl := lib.List()[0]

	out, err := lib.ExportBundle(tmpl.ID)
	if err != nil {
		t.Fatalf("ExportBundle failed: %v", err)
	}
	for _, f := range tmpl.Files {
		if !strings.Contains(out, f.Path) {
			t.Errorf("export missing file path %q", f.Path)
		}
	}

	want := tmpl.ID + "-web-template.json"
	if got := tmpl.ExportFilename(); got != want {
		t.Errorf("got filename %q, want %q", got, want)
	}
}
