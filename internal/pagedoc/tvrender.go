package pagedoc

import (
	"fmt"
	"strings"

	"go-tv-builder/internal/tvconfig"
)

// RenderTV produces the simulated TV home screen as a static HTML fragment
// from a template configuration. It mirrors the markup of the built-in web
// template bundles so the live preview and the exported sites look alike.
func RenderTV(d tvconfig.TemplateData) string {
	d = tvconfig.Normalize(d)
	var b strings.Builder

	b.WriteString(`<div class="tv-interface" style="background-image:url('` + d.BackgroundImage + `')">`)

	b.WriteString(`<header class="header"><div class="logo-section">`)
	fmt.Fprintf(&b, `<img class="logo" src="%s" alt="logo" />`, d.Logo)
	b.WriteString(`</div><div class="time-weather">`)
	if d.Time.Enabled {
		fmt.Fprintf(&b, `<div class="time" data-format="%s"></div>`, d.Time.Format)
	}
	if d.Weather.Enabled {
		fmt.Fprintf(&b, `<div class="weather"><span class="weather-icon">%s</span><span class="temperature">%s</span><span class="location">%s</span></div>`,
			d.Weather.Icon, d.Weather.Temperature, d.Weather.Location)
	}
	b.WriteString(`</div></header>`)

	b.WriteString(`<main class="main-content"><div class="cards">`)
	cards := map[string]tvconfig.Card{
		"welcome":  d.Cards.Welcome,
		"flights":  d.Cards.Flights,
		"hotel":    d.Cards.Hotel,
		"menu":     d.Cards.Menu,
		"discover": d.Cards.Discover,
	}
	for _, key := range tvconfig.CardKeys() {
		writeTVCard(&b, key, cards[key])
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="apps-section">`)
	apps := map[string]tvconfig.App{
		"streamtv":   d.Apps.StreamTV,
		"netflix":    d.Apps.Netflix,
		"primevideo": d.Apps.PrimeVideo,
		"disney":     d.Apps.Disney,
		"youtube":    d.Apps.YouTube,
		"wifi":       d.Apps.WiFi,
	}
	for _, key := range tvconfig.AppKeys() {
		app := apps[key]
		fmt.Fprintf(&b, `<div class="app-icon %s"`, key)
		if app.URL != "" {
			fmt.Fprintf(&b, ` data-url="%s"`, app.URL)
		}
		b.WriteString(`>`)
		if app.Image != "" {
			fmt.Fprintf(&b, `<img src="%s" alt="%s" />`, app.Image, app.Name)
		}
		fmt.Fprintf(&b, `<span class="app-name">%s</span></div>`, app.Name)
	}
	b.WriteString(`</div></main></div>`)

	return b.String()
}

func writeTVCard(b *strings.Builder, key string, c tvconfig.Card) {
	fmt.Fprintf(b, `<div class="card %s-card" style="background-image:url('%s');width:%d%%;text-align:%s">`,
		key, c.Image, c.Size, c.Position)
	b.WriteString(`<div class="card-overlay">`)
	fmt.Fprintf(b, `<h3>%s</h3>`, c.Title)
	if c.Subtitle != "" {
		fmt.Fprintf(b, `<p>%s</p>`, c.Subtitle)
	}
	if c.ButtonText != "" {
		fmt.Fprintf(b, `<button class="cta-button">%s</button>`, c.ButtonText)
	}
	b.WriteString(`</div></div>`)
}
