package pagedoc

import (
	"fmt"
	"sort"
	"strings"

	"go-tv-builder/internal/model"
)

// Content is operator-authored and trusted; it is emitted into the markup
// without HTML escaping. This pipeline must not be fed untrusted authors
// without adding an escaping pass.

// RenderHTML converts an element list to a static HTML fragment. Elements
// are emitted in list order (first = earliest in document order) and simply
// concatenated. The output is deterministic for a fixed input.
func RenderHTML(elements []model.Element) string {
	var b strings.Builder
	for _, el := range elements {
		writeElement(&b, el)
	}
	return b.String()
}

func writeElement(b *strings.Builder, el model.Element) {
	style := StyleString(el.Styles)
	switch el.Type {
	case model.TypeText:
		fmt.Fprintf(b, `<p style="%s">%s</p>`, style, el.Content)
	case model.TypeHeading:
		fmt.Fprintf(b, `<h1 style="%s">%s</h1>`, style, el.Content)
	case model.TypeButton:
		fmt.Fprintf(b, `<button style="%s">%s</button>`, style, el.Content)
	case model.TypeImage:
		fmt.Fprintf(b, `<img src="%s" style="%s" />`, el.Content, style)
	case model.TypeVideo:
		fmt.Fprintf(b, `<div style="%s">[Video: %s]</div>`, style, el.Content)
	case model.TypeList:
		fmt.Fprintf(b, `<ul style="%s"><li>%s</li></ul>`, style, el.Content)
	case model.TypeEvent:
		writeEvent(b, el, style)
	default:
		// container, link and unknown types render as a plain div.
		fmt.Fprintf(b, `<div style="%s">%s</div>`, style, el.Content)
	}
}

// writeEvent decodes the structured payload once and renders the event
// widget; content that fails to decode gets a visible error badge instead of
// leaking raw JSON into the page.
func writeEvent(b *strings.Builder, el model.Element, style string) {
	p, err := el.DecodeEvent()
	if err != nil {
		fmt.Fprintf(b, `<div style="%s" class="event event-invalid">⚠️ Invalid event</div>`, style)
		return
	}
	title := p.Title
	if title == "" {
		title = "Untitled event"
	}
	desc := p.Description
	if desc == "" {
		desc = "No description"
	}
	fmt.Fprintf(b, `<div style="%s" class="event"><div class="event-title">%s</div><div class="event-description">%s</div></div>`,
		style, title, desc)
}

// StyleString converts a style map like {"fontSize": "16px"} into an inline
// style attribute value like "font-size:16px". Keys are sorted so output is
// stable; an empty or nil map yields "".
func StyleString(styles map[string]string) string {
	if len(styles) == 0 {
		return ""
	}
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, toKebabCase(k)+":"+styles[k])
	}
	return strings.Join(pairs, ";")
}

func toKebabCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
