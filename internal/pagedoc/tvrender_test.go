package pagedoc

import (
	"strings"
	"testing"

	"go-tv-builder/internal/tvconfig"
)

func TestRenderTVIncludesAllSlots(t *testing.T) {
	got := RenderTV(tvconfig.Default())

	for _, key := range tvconfig.CardKeys() {
		if !strings.Contains(got, key+"-card") {
			t.Errorf("missing card slot %q", key)
		}
	}
	for _, key := range tvconfig.AppKeys() {
		if !strings.Contains(got, `app-icon `+key) {
			t.Errorf("missing app slot %q", key)
		}
	}
}

func TestRenderTVWidgetToggles(t *testing.T) {
	d := tvconfig.Default()
	d.SetWeatherEnabled(false)
	d.SetTimeEnabled(false)

	got := RenderTV(d)
	if strings.Contains(got, `class="weather"`) {
		t.Error("disabled weather widget rendered")
	}
	if strings.Contains(got, `class="time"`) {
		t.Error("disabled clock widget rendered")
	}

	d.SetWeatherEnabled(true)
	if err := d.SetTimeFormat(tvconfig.Format12h); err != nil {
		t.Fatalf("SetTimeFormat failed: %v", err)
	}
	d.SetTimeEnabled(true)
	got = RenderTV(d)
	if !strings.Contains(got, `data-format="12h"`) {
		t.Errorf("clock format not rendered: %q", got)
	}
	if !strings.Contains(got, d.Weather.Location) {
		t.Error("weather location not rendered")
	}
}

func TestRenderTVNormalizesFirst(t *testing.T) {
	var d tvconfig.TemplateData
	d.Cards.Welcome.Title = "Hi"

	got := RenderTV(d)
	// A zero config still renders valid card geometry via normalization.
	if !strings.Contains(got, "width:100%") {
		t.Errorf("card size not defaulted: %q", got)
	}
	if !strings.Contains(got, "text-align:center") {
		t.Errorf("card position not defaulted: %q", got)
	}
}
