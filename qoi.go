package qoi

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/deepteams/qoi/internal/codec"
)

func init() {
	image.RegisterFormat("qoi", "qoif", Decode, DecodeConfig)
}

// Header describes a QOI image: dimensions, channel count, and colorspace.
type Header = codec.Header

// Colorspace values for [Header] and [Options]. They are informative
// metadata only; the codec never converts between colorspaces.
const (
	ColorspaceSRGB   = codec.ColorspaceSRGB
	ColorspaceLinear = codec.ColorspaceLinear
)

// Errors returned by the front door on top of the codec's own taxonomy.
var (
	// ErrTruncated means the stream ended before the final pixel and end
	// marker were seen.
	ErrTruncated = errors.New("qoi: truncated stream")
	// ErrTooLarge means the header declares an image whose decoded size
	// does not fit in memory on this platform.
	ErrTooLarge = errors.New("qoi: image too large")
)

// windowSize is the capacity of the byte windows the front door drives
// the streaming codec with. Any valid size decodes identically; this one
// keeps feed overhead negligible.
const windowSize = 4096

// readAll reads all data from r. If r implements Len() int (e.g.
// *bytes.Reader), a single exact-sized allocation is used instead of
// the repeated doublings that io.ReadAll performs.
func readAll(r io.Reader) ([]byte, error) {
	if lr, ok := r.(interface{ Len() int }); ok {
		n := lr.Len()
		if n > 0 {
			data := make([]byte, n)
			_, err := io.ReadFull(r, data)
			return data, err
		}
	}
	return io.ReadAll(r)
}

// Decode reads a QOI image from r and returns it as an *image.NRGBA.
// The declared channel count does not change decoding: alpha stays 255
// unless a QOI_OP_RGBA chunk sets another value.
func Decode(r io.Reader) (image.Image, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("qoi: reading data: %w", err)
	}
	pix, h, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: int(h.Width) * 4,
		Rect:   image.Rect(0, 0, int(h.Width), int(h.Height)),
	}, nil
}

// DecodeBytes decodes a complete QOI stream into tightly packed RGBA
// bytes, 4 per pixel regardless of the declared channel count.
func DecodeBytes(data []byte) ([]byte, Header, error) {
	if len(data) < codec.HeaderSize {
		return nil, Header{}, &codec.BadHeaderSizeError{Size: len(data)}
	}
	dec, h, err := codec.NewDecoder(data[:codec.HeaderSize], windowSize)
	if err != nil {
		return nil, Header{}, err
	}
	count := h.PixelCount()
	if count > uint64(math.MaxInt/4) {
		return nil, h, ErrTooLarge
	}
	pix := make([]byte, 0, int(count)*4)
	body := data[codec.HeaderSize:]
	for {
		n := min(len(body), windowSize)
		if n == 0 {
			return nil, h, ErrTruncated
		}
		res, err := dec.Feed(body[:n])
		if err != nil {
			return nil, h, err
		}
		body = body[n:]
		pix = append(pix, res.Pixels...)
		for res.Status == codec.StatusOutputFull {
			if res, err = dec.Continue(); err != nil {
				return nil, h, err
			}
			pix = append(pix, res.Pixels...)
		}
		if res.Status == codec.StatusDone {
			return pix, h, nil
		}
	}
}

// DecodeConfig returns the color model and dimensions of a QOI image
// without decoding any pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var buf [codec.HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return image.Config{}, fmt.Errorf("qoi: reading header: %w", err)
	}
	h, err := codec.ParseHeader(buf[:])
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}
