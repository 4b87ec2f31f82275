package qoi

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/deepteams/qoi/internal/codec"
)

// Options configures encoding. A nil *Options selects the defaults.
type Options struct {
	// Colorspace is recorded in the header: ColorspaceSRGB (default) or
	// ColorspaceLinear.
	Colorspace uint8
}

// Encode writes m to w in the QOI format. Fully opaque images are packed
// to 3-channel input before encoding; everything else encodes as RGBA.
func Encode(w io.Writer, m image.Image, opts *Options) error {
	var colorspace uint8 = ColorspaceSRGB
	if opts != nil {
		colorspace = opts.Colorspace
	}

	src := toNRGBA(m)
	b := src.Bounds()
	width, height := uint32(b.Dx()), uint32(b.Dy())

	pix := src.Pix
	var channels uint8 = 4
	if src.Opaque() {
		channels = 3
		pix = packRGB(src)
	}

	data, err := EncodeBytes(pix, width, height, channels, colorspace)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("qoi: writing data: %w", err)
	}
	return nil
}

// EncodeBytes encodes tightly packed pixel data into a complete QOI
// stream: header, chunks, and end marker. channels declares the input
// layout, 3-byte RGB or 4-byte RGBA tuples.
func EncodeBytes(pix []byte, width, height uint32, channels, colorspace uint8) ([]byte, error) {
	enc, h, err := codec.NewEncoder(pix, width, height, channels, colorspace, windowSize)
	if err != nil {
		return nil, err
	}

	// QOI rarely expands input; half the pixel data is a comfortable
	// starting capacity.
	out := make([]byte, 0, codec.HeaderSize+len(pix)/2+codec.EndMarkerSize)
	header := h.Bytes()
	out = append(out, header[:]...)
	for {
		chunks, done := enc.Next()
		out = append(out, chunks...)
		if done {
			break
		}
	}
	marker := codec.EndMarker()
	return append(out, marker[:]...), nil
}

// toNRGBA returns m as a zero-origin *image.NRGBA, converting only when
// necessary.
func toNRGBA(m image.Image) *image.NRGBA {
	if src, ok := m.(*image.NRGBA); ok && src.Rect.Min == (image.Point{}) {
		return src
	}
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	return dst
}

// packRGB drops the constant alpha channel from an opaque NRGBA image,
// honoring the row stride.
func packRGB(src *image.NRGBA) []byte {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			out = append(out, row[x], row[x+1], row[x+2])
		}
	}
	return out
}
