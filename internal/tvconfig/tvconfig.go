// Package tvconfig holds the simulated TV home screen configuration: logo,
// background, the five fixed cards, the six fixed app icons, and the weather
// and clock widgets. The config is always a complete, valid value; it is
// mutated through partial updates or per-field setters and persisted as one
// opaque JSON blob.
package tvconfig

import (
	"encoding/json"
	"fmt"

	"go-tv-builder/internal/model"
)

// Position is the horizontal alignment of a card's text block.
type Position string

const (
	PositionLeft   Position = "left"
	PositionCenter Position = "center"
	PositionRight  Position = "right"
)

// TimeFormat is the clock widget's display format.
type TimeFormat string

const (
	Format12h TimeFormat = "12h"
	Format24h TimeFormat = "24h"
)

const (
	// Card size is a zoom percentage.
	MinCardSize     = 50
	MaxCardSize     = 150
	DefaultCardSize = 100
)

// Card is one of the five fixed home screen cards.
type Card struct {
	Image      string   `json:"image"`
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle,omitempty"`
	ButtonText string   `json:"buttonText,omitempty"`
	Size       int      `json:"size,omitempty"`
	Position   Position `json:"position,omitempty"`
}

// Cards holds the fixed card slots. The set of keys never changes.
type Cards struct {
	Welcome  Card `json:"welcome"`
	Flights  Card `json:"flights"`
	Hotel    Card `json:"hotel"`
	Menu     Card `json:"menu"`
	Discover Card `json:"discover"`
}

// App is one of the six fixed app icons.
type App struct {
	Image string `json:"image"`
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Apps holds the fixed app slots.
type Apps struct {
	StreamTV   App `json:"streamtv"`
	Netflix    App `json:"netflix"`
	PrimeVideo App `json:"primevideo"`
	Disney     App `json:"disney"`
	YouTube    App `json:"youtube"`
	WiFi       App `json:"wifi"`
}

// Weather configures the weather widget.
type Weather struct {
	Enabled     bool   `json:"enabled"`
	Location    string `json:"location"`
	Country     string `json:"country,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Temperature string `json:"temperature,omitempty"`
}

// TimeSettings configures the clock widget. An absent "enabled" key on import
// means enabled.
type TimeSettings struct {
	Enabled bool       `json:"enabled"`
	Format  TimeFormat `json:"format"`
}

// UnmarshalJSON defaults enabled to true when the key is absent and the
// format to 24h when empty.
func (t *TimeSettings) UnmarshalJSON(b []byte) error {
	var raw struct {
		Enabled *bool      `json:"enabled"`
		Format  TimeFormat `json:"format"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t.Enabled = raw.Enabled == nil || *raw.Enabled
	t.Format = raw.Format
	if t.Format == "" {
		t.Format = Format24h
	}
	return nil
}

// TemplateData is the full TV home screen configuration.
type TemplateData struct {
	Logo            string       `json:"logo"`
	BackgroundImage string       `json:"backgroundImage"`
	Cards           Cards        `json:"cards"`
	Apps            Apps         `json:"apps"`
	Weather         Weather      `json:"weather"`
	Time            TimeSettings `json:"time"`
}

// Partial is a top-level partial update. Only non-nil branches are applied,
// and each applied branch replaces the current one wholesale.
type Partial struct {
	Logo            *string       `json:"logo,omitempty"`
	BackgroundImage *string       `json:"backgroundImage,omitempty"`
	Cards           *Cards        `json:"cards,omitempty"`
	Apps            *Apps         `json:"apps,omitempty"`
	Weather         *Weather      `json:"weather,omitempty"`
	Time            *TimeSettings `json:"time,omitempty"`
}

// ApplyPartial returns current with every branch present in p replaced.
//
// This is a shallow merge: passing Weather{Icon: "x"} replaces the whole
// weather branch and drops its other fields. Callers changing one nested
// field must copy the current branch first, or use the typed setters / the
// MergeDeep path which do that for them.
func ApplyPartial(current TemplateData, p Partial) TemplateData {
	next := current
	if p.Logo != nil {
		next.Logo = *p.Logo
	}
	if p.BackgroundImage != nil {
		next.BackgroundImage = *p.BackgroundImage
	}
	if p.Cards != nil {
		next.Cards = *p.Cards
	}
	if p.Apps != nil {
		next.Apps = *p.Apps
	}
	if p.Weather != nil {
		next.Weather = *p.Weather
	}
	if p.Time != nil {
		next.Time = *p.Time
	}
	return next
}

// Normalize fills in optional fields: card sizes clamp to [50,150] with 100
// for unset, positions default to center, and a zero-value clock settings
// block becomes enabled/24h. Returns the normalized copy.
func Normalize(d TemplateData) TemplateData {
	for _, c := range d.Cards.each() {
		if c.Size == 0 {
			c.Size = DefaultCardSize
		}
		if c.Size < MinCardSize {
			c.Size = MinCardSize
		}
		if c.Size > MaxCardSize {
			c.Size = MaxCardSize
		}
		if c.Position == "" {
			c.Position = PositionCenter
		}
	}
	if d.Time == (TimeSettings{}) {
		d.Time = TimeSettings{Enabled: true, Format: Format24h}
	}
	if d.Time.Format == "" {
		d.Time.Format = Format24h
	}
	return d
}

func (c *Cards) each() []*Card {
	return []*Card{&c.Welcome, &c.Flights, &c.Hotel, &c.Menu, &c.Discover}
}

func (c *Cards) byKey(key string) (*Card, error) {
	switch key {
	case "welcome":
		return &c.Welcome, nil
	case "flights":
		return &c.Flights, nil
	case "hotel":
		return &c.Hotel, nil
	case "menu":
		return &c.Menu, nil
	case "discover":
		return &c.Discover, nil
	}
	return nil, fmt.Errorf("card %q: %w", key, model.ErrNotFound)
}

func (a *Apps) byKey(key string) (*App, error) {
	switch key {
	case "streamtv":
		return &a.StreamTV, nil
	case "netflix":
		return &a.Netflix, nil
	case "primevideo":
		return &a.PrimeVideo, nil
	case "disney":
		return &a.Disney, nil
	case "youtube":
		return &a.YouTube, nil
	case "wifi":
		return &a.WiFi, nil
	}
	return nil, fmt.Errorf("app %q: %w", key, model.ErrNotFound)
}

// CardKeys lists the fixed card slots in display order.
func CardKeys() []string { return []string{"welcome", "flights", "hotel", "menu", "discover"} }

// AppKeys lists the fixed app slots in display order.
func AppKeys() []string {
	return []string{"streamtv", "netflix", "primevideo", "disney", "youtube", "wifi"}
}

// ExportJSON renders the config as pretty-printed JSON, the format the
// editor's export button downloads.
func ExportJSON(d TemplateData) (string, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal template config: %w", err)
	}
	return string(b), nil
}

// ImportJSON parses a previously exported config and normalizes it.
func ImportJSON(raw string) (TemplateData, error) {
	var d TemplateData
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return TemplateData{}, fmt.Errorf("template config: %v: %w", err, model.ErrParse)
	}
	return Normalize(d), nil
}
