package shell

import (
	"fmt"
	"image/color"
	"strings"
)

// Layout selects how the identity label is placed under the logo.
type Layout int

const (
	// LayoutCentered draws a bold label centered in the label area.
	LayoutCentered Layout = iota
	// LayoutHeading draws a plain single-line label at the top left of the
	// label area.
	LayoutHeading
)

// Default label-area heights, in display units, for each layout.
const (
	CenteredMargin = 36
	HeadingMargin  = 30
)

func (l Layout) String() string {
	switch l {
	case LayoutCentered:
		return "centered"
	case LayoutHeading:
		return "heading"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// DefaultMargin returns the label-area height used when Config.LabelMargin
// is zero.
func (l Layout) DefaultMargin() int {
	if l == LayoutHeading {
		return HeadingMargin
	}
	return CenteredMargin
}

// ParseLayout converts a layout name into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "centered", "center":
		return LayoutCentered, nil
	case "heading":
		return LayoutHeading, nil
	default:
		return 0, fmt.Errorf("unknown layout %q (want centered or heading)", s)
	}
}

// Config holds the presentation settings of the window.
type Config struct {
	// Title is the window title.
	Title string

	// Layout places the identity label.
	Layout Layout

	// LabelMargin is the height added below the logo for the label. Zero
	// selects Layout.DefaultMargin.
	LabelMargin int

	// Background fills the whole window.
	Background color.NRGBA

	// Foreground is the label color.
	Foreground color.NRGBA

	// LabelColumns caps the heading label at this many monospace cells.
	// Zero disables truncation.
	LabelColumns int

	// AlwaysOnTop asks the binding to keep the window above others.
	AlwaysOnTop bool
}

// DefaultConfig returns a light gray window with black text that stays on
// top, titled "About System".
func DefaultConfig() Config {
	return Config{
		Title:       "About System",
		Layout:      LayoutCentered,
		Background:  color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
		Foreground:  color.NRGBA{A: 0xff},
		AlwaysOnTop: true,
	}
}

// Margin returns the effective label-area height.
func (c Config) Margin() int {
	if c.LabelMargin > 0 {
		return c.LabelMargin
	}
	return c.Layout.DefaultMargin()
}

// Validate rejects settings no binding can honour.
func (c Config) Validate() error {
	if c.LabelMargin < 0 {
		return fmt.Errorf("label margin %d is negative", c.LabelMargin)
	}
	if c.LabelColumns < 0 {
		return fmt.Errorf("label columns %d is negative", c.LabelColumns)
	}
	if c.Layout != LayoutCentered && c.Layout != LayoutHeading {
		return fmt.Errorf("invalid layout %v", c.Layout)
	}
	return nil
}
