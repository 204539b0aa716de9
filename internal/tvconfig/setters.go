package tvconfig

import (
	"fmt"

	"dario.cat/mergo"
)

// Typed per-field setters. These exist so callers changing a single nested
// field do not have to hand-copy the surrounding branch; each setter edits
// the one field in place and leaves its siblings alone.

// SetLogo replaces the logo URL.
func (d *TemplateData) SetLogo(url string) { d.Logo = url }

// SetBackgroundImage replaces the background image URL.
func (d *TemplateData) SetBackgroundImage(url string) { d.BackgroundImage = url }

// SetCardTitle sets the title of the card slot named by key.
func (d *TemplateData) SetCardTitle(key, title string) error {
	c, err := d.Cards.byKey(key)
	if err != nil {
		return err
	}
	c.Title = title
	return nil
}

// SetCardSubtitle sets the subtitle of the card slot named by key.
func (d *TemplateData) SetCardSubtitle(key, subtitle string) error {
	c, err := d.Cards.byKey(key)
	if err != nil {
		return err
	}
	c.Subtitle = subtitle
	return nil
}

// SetCardButtonText sets the button label of the card slot named by key.
func (d *TemplateData) SetCardButtonText(key, text string) error {
	c, err := d.Cards.byKey(key)
	if err != nil {
		return err
	}
	c.ButtonText = text
	return nil
}

// SetCardImage sets the image URL of the card slot named by key.
func (d *TemplateData) SetCardImage(key, url string) error {
	c, err := d.Cards.byKey(key)
	if err != nil {
		return err
	}
	c.Image = url
	return nil
}

// SetCardSize sets the zoom percentage of the card slot named by key,
// clamped to [50, 150].
func (d *TemplateData) SetCardSize(key string, size int) error {
	c, err := d.Cards.byKey(key)
	if err != nil {
		return err
	}
	if size < MinCardSize {
		size = MinCardSize
	}
	if size > MaxCardSize {
		size = MaxCardSize
	}
	c.Size = size
	return nil
}

// SetCardPosition sets the text alignment of the card slot named by key.
func (d *TemplateData) SetCardPosition(key string, pos Position) error {
	switch pos {
	case PositionLeft, PositionCenter, PositionRight:
	default:
		return fmt.Errorf("invalid card position %q", pos)
	}
	c, err := d.Cards.byKey(key)
	if err != nil {
		return err
	}
	c.Position = pos
	return nil
}

// SetAppName sets the display name of the app slot named by key.
func (d *TemplateData) SetAppName(key, name string) error {
	a, err := d.Apps.byKey(key)
	if err != nil {
		return err
	}
	a.Name = name
	return nil
}

// SetAppImage sets the icon image URL of the app slot named by key.
func (d *TemplateData) SetAppImage(key, url string) error {
	a, err := d.Apps.byKey(key)
	if err != nil {
		return err
	}
	a.Image = url
	return nil
}

// SetAppURL sets the launch URL of the app slot named by key.
func (d *TemplateData) SetAppURL(key, url string) error {
	a, err := d.Apps.byKey(key)
	if err != nil {
		return err
	}
	a.URL = url
	return nil
}

// SetWeatherEnabled toggles the weather widget.
func (d *TemplateData) SetWeatherEnabled(enabled bool) { d.Weather.Enabled = enabled }

// SetWeatherLocation sets the weather widget's location label.
func (d *TemplateData) SetWeatherLocation(location string) { d.Weather.Location = location }

// SetWeatherCountry sets the weather widget's country code.
func (d *TemplateData) SetWeatherCountry(country string) { d.Weather.Country = country }

// SetWeatherIcon sets the weather widget's icon glyph.
func (d *TemplateData) SetWeatherIcon(icon string) { d.Weather.Icon = icon }

// SetWeatherTemperature sets the weather widget's temperature label.
func (d *TemplateData) SetWeatherTemperature(temp string) { d.Weather.Temperature = temp }

// SetTimeEnabled toggles the clock widget.
func (d *TemplateData) SetTimeEnabled(enabled bool) { d.Time.Enabled = enabled }

// SetTimeFormat sets the clock display format.
func (d *TemplateData) SetTimeFormat(format TimeFormat) error {
	switch format {
	case Format12h, Format24h:
	default:
		return fmt.Errorf("invalid time format %q", format)
	}
	d.Time.Format = format
	return nil
}

// MergeDeep overlays non-zero fields of overlay onto current and returns the
// result. Unlike ApplyPartial, nested siblings survive: merging
// {weather: {icon: "x"}} keeps the current location and temperature.
// Zero values ("" strings, false booleans, 0 sizes) in the overlay do not
// override; use the setters or ApplyPartial to clear a field.
func MergeDeep(current, overlay TemplateData) (TemplateData, error) {
	next := current
	if err := mergo.Merge(&next, overlay, mergo.WithOverride); err != nil {
		return TemplateData{}, fmt.Errorf("failed to merge template config: %w", err)
	}
	return next, nil
}
