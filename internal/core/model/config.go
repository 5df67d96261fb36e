package model

import (
	"fmt"
	"image/color"
)

// DisplayMode selects which clock face is rendered.
type DisplayMode int

const (
	ModeSimple DisplayMode = iota
	ModeNice
	ModeDigital
)

// String returns the settings-file name of the mode.
func (mode DisplayMode) String() string {
	switch mode {
	case ModeSimple:
		return "simple"
	case ModeNice:
		return "nice"
	case ModeDigital:
		return "digital"
	default:
		return fmt.Sprintf("mode(%d)", int(mode))
	}
}

// Valid reports whether the mode is one of the three known faces.
func (mode DisplayMode) Valid() bool {
	return mode >= ModeSimple && mode <= ModeDigital
}

// ParseDisplayMode converts a settings-file name back to a mode.
// Unknown names fall back to the simple face.
func ParseDisplayMode(name string) DisplayMode {
	switch name {
	case "nice":
		return ModeNice
	case "digital":
		return ModeDigital
	default:
		return ModeSimple
	}
}

// Palette maps semantic roles to colors so render output can be checked
// without a display. The time-unit colors are the color code the kids see
// on every face of the app and must not drift.
type Palette struct {
	Hours      color.NRGBA
	Minutes    color.NRGBA
	Seconds    color.NRGBA
	Days       color.NRGBA
	Months     color.NRGBA
	Years      color.NRGBA
	Background color.NRGBA
	Foreground color.NRGBA
	Inactive   color.NRGBA
}

// DefaultPalette returns the XO screen color code.
func DefaultPalette() Palette {
	return Palette{
		Hours:      color.NRGBA{R: 0x00, G: 0x5F, B: 0xE4, A: 0xFF}, // medium blue
		Minutes:    color.NRGBA{R: 0x00, G: 0xB2, B: 0x0D, A: 0xFF}, // medium green
		Seconds:    color.NRGBA{R: 0xE6, G: 0x00, B: 0x0A, A: 0xFF}, // medium red
		Days:       color.NRGBA{R: 0xB2, G: 0x00, B: 0x08, A: 0xFF},
		Months:     color.NRGBA{R: 0x5E, G: 0x00, B: 0x8C, A: 0xFF},
		Years:      color.NRGBA{R: 0x9A, G: 0x52, B: 0x00, A: 0xFF},
		Background: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Foreground: color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
		Inactive:   color.NRGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF},
	}
}

// Settings defines the persisted user preferences.
type Settings struct {
	Mode      DisplayMode
	WriteTime bool
	WriteDate bool
	SpeakTime bool
}

// DefaultSettings returns the first-run preferences: the simple face with
// every extra display turned off.
func DefaultSettings() Settings {
	return Settings{Mode: ModeSimple}
}
