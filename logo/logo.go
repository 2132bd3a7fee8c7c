// Package logo decodes the bundled PNG into a premultiplied RGBA buffer
// that rendering backends can upload without further conversion.
package logo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// Image is a decoded logo. The pixel buffer is 8-bit RGBA with
// premultiplied alpha, rows packed with no padding.
type Image struct {
	RGBA *image.RGBA
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.RGBA.Rect.Dx() }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.RGBA.Rect.Dy() }

// Size returns the image dimensions.
func (im *Image) Size() image.Point { return im.RGBA.Rect.Size() }

// DecodeError reports that the logo bytes are not a usable PNG.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "decode logo: " + e.Reason
	}
	return fmt.Sprintf("decode logo: %s: %v", e.Reason, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Load decodes PNG data into an Image.
//
// Parameters:
//   - data: PNG-encoded bytes, normally assets.Resources.Logo
//
// Returns:
//   - The decoded image in premultiplied RGBA
//   - *DecodeError if the bytes are not a PNG or the pixel buffer does not
//     match the dimensions declared in the header
func Load(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Reason: "empty input"}
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Reason: "read header", Err: err}
	}

	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Reason: "decode pixels", Err: err}
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)

	if err := checkLayout(dst, cfg.Width, cfg.Height); err != nil {
		return nil, &DecodeError{Reason: "pixel layout", Err: err}
	}
	return &Image{RGBA: dst}, nil
}

// checkLayout verifies the buffer can be read as width×height packed RGBA.
func checkLayout(img *image.RGBA, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("declared size %dx%d", width, height)
	}
	if got := img.Rect.Size(); got.X != width || got.Y != height {
		return fmt.Errorf("decoded %dx%d, declared %dx%d", got.X, got.Y, width, height)
	}
	if img.Stride != 4*width {
		return fmt.Errorf("stride %d, want %d", img.Stride, 4*width)
	}
	if len(img.Pix) != 4*width*height {
		return errors.New("pixel buffer length does not match dimensions")
	}
	return nil
}
