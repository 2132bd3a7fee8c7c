// Package assets holds the resources compiled into the aboutsys binary:
// the logo shown at the top of the window and the monospace font used
// for the identity label.
package assets

import (
	_ "embed"
	"errors"

	"golang.org/x/image/font/gofont/gomono"
)

//go:embed logo.png
var logoPNG []byte

// Resources is the set of read-only inputs the logo loader and the window
// binding consume. Tests substitute their own bytes.
type Resources struct {
	// Logo is a PNG-encoded image.
	Logo []byte

	// Font is a TrueType or OpenType font, installed as the only face.
	Font []byte
}

// Default returns the resources embedded at build time.
//
// Returns:
//   - Resources with the bundled logo.png and the Go Mono font
func Default() Resources {
	return Resources{
		Logo: logoPNG,
		Font: gomono.TTF,
	}
}

// Validate reports whether both buffers are present.
func (r Resources) Validate() error {
	var errs []error
	if len(r.Logo) == 0 {
		errs = append(errs, errors.New("assets: logo is empty"))
	}
	if len(r.Font) == 0 {
		errs = append(errs, errors.New("assets: font is empty"))
	}
	return errors.Join(errs...)
}
