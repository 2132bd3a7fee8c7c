// Package gioview binds the About System shell to the Gio toolkit.
package gioview

import (
	"errors"
	"fmt"

	"gioui.org/font/opentype"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"aboutsys/shell"
)

// labelTextSize is the size of the identity label.
const labelTextSize = unit.Sp(12)

// monoAdvance is the horizontal advance of one monospace cell in ems.
const monoAdvance = 0.6

// NewTheme returns a material theme whose only face is the given font and
// whose palette follows cfg.
func NewTheme(fontTTF []byte, cfg shell.Config) (*material.Theme, error) {
	faces, err := opentype.ParseCollection(fontTTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if len(faces) == 0 {
		return nil, errors.New("parse font: no faces")
	}

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(faces))
	th.Face = faces[0].Font.Typeface
	th.Palette.Bg = cfg.Background
	th.Palette.Fg = cfg.Foreground
	th.TextSize = labelTextSize
	return th, nil
}

// LabelColumns returns how many monospace cells of the label fit in a
// window widthDp wide, assuming one sp per dp.
func LabelColumns(widthDp int) int {
	cell := float32(labelTextSize) * monoAdvance
	if widthDp <= 0 {
		return 0
	}
	return int(float32(widthDp) / cell)
}
