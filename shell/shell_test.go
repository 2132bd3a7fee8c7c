package shell

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aboutsys/logo"
)

type fakeTexture struct {
	size image.Point
}

func (t *fakeTexture) Size() image.Point { return t.size }

type fakeBackend struct {
	uploads  int
	drawn    []Texture
	labels   []string
	layouts  []Layout
	closeReq int
}

func (b *fakeBackend) UploadTexture(img *image.RGBA) Texture {
	b.uploads++
	return &fakeTexture{size: img.Rect.Size()}
}

func (b *fakeBackend) DrawTexture(t Texture) { b.drawn = append(b.drawn, t) }

func (b *fakeBackend) DrawText(s string, l Layout) {
	b.labels = append(b.labels, s)
	b.layouts = append(b.layouts, l)
}

func (b *fakeBackend) RequestClose() { b.closeReq++ }

func testLogo(w, h int) *logo.Image {
	return &logo.Image{RGBA: image.NewRGBA(image.Rect(0, 0, w, h))}
}

const identity = "Linux host1 5.10 #1 SMP x86_64"

func TestWindowSize(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want image.Point
	}{
		{"centered", Config{Layout: LayoutCentered}, image.Pt(96, 96+36)},
		{"heading", Config{Layout: LayoutHeading}, image.Pt(96, 96+30)},
		{"explicit margin", Config{Layout: LayoutHeading, LabelMargin: 50}, image.Pt(96, 146)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowSize(image.Pt(96, 96), tt.cfg))
		})
	}

	for _, sz := range []image.Point{{1, 1}, {320, 200}, {800, 64}} {
		got := WindowSize(sz, Config{Layout: LayoutCentered})
		assert.Equal(t, sz.X, got.X)
		assert.Equal(t, sz.Y+CenteredMargin, got.Y)
	}
}

func TestSpec(t *testing.T) {
	cfg := DefaultConfig()
	spec := New(testLogo(120, 80), identity, cfg).Spec()

	assert.Equal(t, "About System", spec.Title)
	assert.Equal(t, image.Pt(120, 116), spec.Size)
	assert.Equal(t, spec.Size, spec.MinSize)
	assert.Equal(t, spec.Size, spec.MaxSize)
	assert.True(t, spec.Centered)
	assert.True(t, spec.AlwaysOnTop)
	assert.Equal(t, cfg.Background, spec.Background)
}

func TestTextureUploadedOnce(t *testing.T) {
	sh := New(testLogo(10, 10), identity, DefaultConfig())
	b := &fakeBackend{}
	assert.Equal(t, Uninitialized, sh.State())

	const frames = 5
	for i := 0; i < frames; i++ {
		require.Equal(t, Running, sh.Frame(b, nil))
	}

	assert.Equal(t, 1, b.uploads)
	require.Len(t, b.drawn, frames)
	for _, tex := range b.drawn[1:] {
		assert.Same(t, b.drawn[0], tex)
	}
	assert.Same(t, b.drawn[0], sh.Texture(b))
	assert.Equal(t, 1, b.uploads)
}

func TestTextureState(t *testing.T) {
	sh := New(testLogo(4, 4), identity, DefaultConfig())
	b := &fakeBackend{}

	tex := sh.Texture(b)
	assert.Equal(t, TextureLoaded, sh.State())
	assert.Equal(t, image.Pt(4, 4), tex.Size())
}

func TestFrameEscape(t *testing.T) {
	press := KeyEvent{Key: KeyEscape, Pressed: true}
	release := KeyEvent{Key: KeyEscape, Pressed: false}
	other := KeyEvent{Key: "A", Pressed: false}

	tests := []struct {
		name   string
		events []KeyEvent
		want   State
	}{
		{"no events", nil, Running},
		{"press only", []KeyEvent{press}, Running},
		{"other key released", []KeyEvent{other}, Running},
		{"release", []KeyEvent{release}, Terminated},
		{"press then release", []KeyEvent{press, release}, Terminated},
		{"release then press", []KeyEvent{release, press}, Terminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := New(testLogo(8, 8), identity, DefaultConfig())
			b := &fakeBackend{}

			assert.Equal(t, tt.want, sh.Frame(b, tt.events))
			if tt.want == Terminated {
				assert.Equal(t, 1, b.closeReq)
				assert.Empty(t, b.labels)
			} else {
				assert.Zero(t, b.closeReq)
				assert.Equal(t, []string{identity}, b.labels)
			}
		})
	}
}

func TestFrameAfterTerminated(t *testing.T) {
	sh := New(testLogo(8, 8), identity, DefaultConfig())
	b := &fakeBackend{}

	sh.Close()
	assert.Equal(t, Terminated, sh.Frame(b, nil))
	assert.Equal(t, Terminated, sh.Frame(b, []KeyEvent{{Key: KeyEscape}}))
	assert.Zero(t, b.uploads)
	assert.Zero(t, b.closeReq)
	assert.Empty(t, b.drawn)
}

func TestLabel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LabelColumns = 12

	assert.Equal(t, identity, New(testLogo(1, 1), identity, cfg).Label())

	cfg.Layout = LayoutHeading
	sh := New(testLogo(1, 1), identity, cfg)
	assert.Equal(t, "Linux host1…", sh.Label())

	b := &fakeBackend{}
	sh.Frame(b, nil)
	assert.Equal(t, []Layout{LayoutHeading}, b.layouts)
}

func TestEscapeReleased(t *testing.T) {
	assert.False(t, EscapeReleased(nil))
	assert.False(t, EscapeReleased([]KeyEvent{{Key: KeyEscape, Pressed: true}}))
	assert.True(t, EscapeReleased([]KeyEvent{{Key: KeyEscape, Pressed: true}, {Key: KeyEscape}}))
}
