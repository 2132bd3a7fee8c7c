package gioview

import (
	"image"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"

	"aboutsys/shell"
)

// Options converts a window spec into Gio window options. Setting the
// minimum and maximum to the same size makes the window non-resizable.
func Options(spec shell.WindowSpec) []app.Option {
	dp := func(p image.Point) (unit.Dp, unit.Dp) {
		return unit.Dp(p.X), unit.Dp(p.Y)
	}
	w, h := dp(spec.Size)
	minW, minH := dp(spec.MinSize)
	maxW, maxH := dp(spec.MaxSize)
	return []app.Option{
		app.Title(spec.Title),
		app.Size(w, h),
		app.MinSize(minW, minH),
		app.MaxSize(maxW, maxH),
	}
}

// Run drives w until it is destroyed, delegating every frame to sh.
//
// Parameters:
//   - w: A window already configured with Options(sh.Spec())
//   - sh: The shell holding the logo and identity label
//   - th: The theme from NewTheme
//   - log: Logger for lifecycle transitions
//
// Returns:
//   - The error carried by the window's DestroyEvent, nil on a normal close
func Run(w *app.Window, sh *shell.Shell, th *material.Theme, log *logrus.Entry) error {
	spec := sh.Spec()
	if spec.AlwaysOnTop {
		log.Debug("always-on-top is not supported by Gio windows; ignoring")
	}

	var ops op.Ops
	centered := false
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			sh.Close()
			log.WithField("state", sh.State()).Debug("window destroyed")
			return e.Err
		case app.FrameEvent:
			if spec.Centered && !centered {
				w.Perform(system.ActionCenter)
				centered = true
			}

			gtx := app.NewContext(&ops, e)
			events := escapeEvents(gtx)
			paint.Fill(gtx.Ops, spec.Background)

			before := sh.State()
			p := &painter{gtx: gtx, th: th, win: w}
			if state := sh.Frame(p, events); state != before {
				log.WithField("state", state).Debug("shell state changed")
			}
			e.Frame(gtx.Ops)
		}
	}
}

// escapeEvents drains the Escape key events queued since the last frame.
func escapeEvents(gtx layout.Context) []shell.KeyEvent {
	var events []shell.KeyEvent
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			return events
		}
		if ke, ok := ev.(key.Event); ok {
			if se, ok := toKeyEvent(ke); ok {
				events = append(events, se)
			}
		}
	}
}

func toKeyEvent(e key.Event) (shell.KeyEvent, bool) {
	if e.Name != key.NameEscape {
		return shell.KeyEvent{}, false
	}
	return shell.KeyEvent{Key: shell.KeyEscape, Pressed: e.State == key.Press}, true
}

type texture struct {
	op paint.ImageOp
}

func (t *texture) Size() image.Point { return t.op.Size() }

// painter implements shell.Backend for a single frame. Content is stacked
// top to bottom; y is the offset of the next item.
type painter struct {
	gtx layout.Context
	th  *material.Theme
	win *app.Window
	y   int
}

func (p *painter) UploadTexture(img *image.RGBA) shell.Texture {
	return &texture{op: paint.NewImageOp(img)}
}

func (p *painter) DrawTexture(t shell.Texture) {
	tex, ok := t.(*texture)
	if !ok {
		return
	}
	gtx := p.gtx
	defer op.Offset(image.Pt(0, p.y)).Push(gtx.Ops).Pop()

	gtx.Constraints.Min = image.Point{}
	dims := widget.Image{Src: tex.op, Fit: widget.Unscaled, Position: layout.N}.Layout(gtx)
	p.y += dims.Size.Y
}

func (p *painter) DrawText(s string, l shell.Layout) {
	gtx := p.gtx
	defer op.Offset(image.Pt(0, p.y)).Push(gtx.Ops).Pop()

	gtx.Constraints.Min = image.Point{}
	gtx.Constraints.Max.Y = max(gtx.Constraints.Max.Y-p.y, 0)

	lbl := material.Label(p.th, labelTextSize, s)
	switch l {
	case shell.LayoutHeading:
		lbl.MaxLines = 1
		lbl.Layout(gtx)
	default:
		lbl.Font.Weight = font.Bold
		lbl.Alignment = text.Middle
		layout.Center.Layout(gtx, lbl.Layout)
	}
}

func (p *painter) RequestClose() {
	p.win.Perform(system.ActionClose)
}
