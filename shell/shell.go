// Package shell implements the toolkit-independent part of the About System
// window: sizing, the one-time texture upload, per-frame painting and the
// Escape-to-close rule. A toolkit binding supplies a Backend for each frame
// and translates its input events into KeyEvents.
package shell

import (
	"fmt"
	"image"
	"image/color"

	"aboutsys/logo"
	"aboutsys/sysinfo"
)

// Texture is an image uploaded to the rendering backend.
type Texture interface {
	Size() image.Point
}

// Backend is the set of drawing capabilities a binding exposes during a
// frame.
type Backend interface {
	// UploadTexture hands the pixel buffer to the renderer.
	UploadTexture(img *image.RGBA) Texture

	// DrawTexture draws t at its native size, anchored to the top of the
	// content area.
	DrawTexture(t Texture)

	// DrawText draws the label in the area below the last texture.
	DrawText(s string, layout Layout)

	// RequestClose asks the host runtime to terminate the window.
	RequestClose()
}

// WindowSpec is everything a binding needs to create the window.
type WindowSpec struct {
	Title       string
	Size        image.Point
	MinSize     image.Point
	MaxSize     image.Point
	Centered    bool
	AlwaysOnTop bool
	Background  color.NRGBA
	Foreground  color.NRGBA
}

// State is the lifecycle state of a Shell.
type State int

const (
	Uninitialized State = iota
	TextureLoaded
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case TextureLoaded:
		return "texture-loaded"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// WindowSize returns the window dimensions for a logo of the given size:
// the logo width, and the logo height plus the label margin.
func WindowSize(logoSize image.Point, cfg Config) image.Point {
	return image.Pt(logoSize.X, logoSize.Y+cfg.Margin())
}

// Shell owns the immutable logo and identity string together with the
// lazily created texture.
type Shell struct {
	cfg      Config
	logo     *logo.Image
	identity string
	texture  Texture
	state    State
}

// New returns a Shell in the Uninitialized state.
func New(img *logo.Image, identity string, cfg Config) *Shell {
	return &Shell{
		cfg:      cfg,
		logo:     img,
		identity: identity,
	}
}

// Spec describes the fixed-size, centered window for this shell.
func (s *Shell) Spec() WindowSpec {
	size := WindowSize(s.logo.Size(), s.cfg)
	return WindowSpec{
		Title:       s.cfg.Title,
		Size:        size,
		MinSize:     size,
		MaxSize:     size,
		Centered:    true,
		AlwaysOnTop: s.cfg.AlwaysOnTop,
		Background:  s.cfg.Background,
		Foreground:  s.cfg.Foreground,
	}
}

// Config returns the shell's presentation settings.
func (s *Shell) Config() Config { return s.cfg }

// State returns the current lifecycle state.
func (s *Shell) State() State { return s.state }

// Label returns the identity string as it is drawn for the configured
// layout.
func (s *Shell) Label() string {
	if s.cfg.Layout == LayoutHeading {
		return sysinfo.FitColumns(s.identity, s.cfg.LabelColumns)
	}
	return s.identity
}

// Texture returns the logo texture, uploading it through b on the first
// call only.
func (s *Shell) Texture(b Backend) Texture {
	if s.texture == nil {
		s.texture = b.UploadTexture(s.logo.RGBA)
		if s.state == Uninitialized {
			s.state = TextureLoaded
		}
	}
	return s.texture
}

// Frame handles one frame: it closes the window when events contain an
// Escape release and otherwise paints the logo and the label.
func (s *Shell) Frame(b Backend, events []KeyEvent) State {
	if s.state == Terminated {
		return s.state
	}
	if EscapeReleased(events) {
		b.RequestClose()
		s.state = Terminated
		return s.state
	}

	b.DrawTexture(s.Texture(b))
	b.DrawText(s.Label(), s.cfg.Layout)
	s.state = Running
	return s.state
}

// Close records an external close request.
func (s *Shell) Close() {
	s.state = Terminated
}
