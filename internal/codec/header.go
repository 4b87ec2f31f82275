package codec

import "encoding/binary"

// Header is the fixed 14-byte QOI image header. Width and height are
// stored big-endian; channels and colorspace occupy one byte each.
//
// The dimension and channel fields are informative: the decoder derives
// everything it needs from the width·height product, and the encoder
// interprets its input by the channels value it was constructed with.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

// ParseHeader extracts and validates a header from exactly HeaderSize
// bytes. Validation order is fixed: magic, dimensions, channels,
// colorspace.
func ParseHeader(p []byte) (Header, error) {
	if len(p) != HeaderSize {
		return Header{}, &BadHeaderSizeError{Size: len(p)}
	}
	if [4]byte(p[0:4]) != magic {
		return Header{}, &InvalidMagicError{Magic: [4]byte(p[0:4])}
	}
	h := Header{
		Width:      binary.BigEndian.Uint32(p[4:8]),
		Height:     binary.BigEndian.Uint32(p[8:12]),
		Channels:   p[12],
		Colorspace: p[13],
	}
	if h.Width == 0 || h.Height == 0 {
		return Header{}, &InvalidDimensionsError{Width: h.Width, Height: h.Height}
	}
	if h.Channels != 3 && h.Channels != 4 {
		return Header{}, &InvalidChannelsError{Channels: h.Channels}
	}
	if h.Colorspace != ColorspaceSRGB && h.Colorspace != ColorspaceLinear {
		return Header{}, &InvalidColorspaceError{Colorspace: h.Colorspace}
	}
	return h, nil
}

// Bytes serializes the header into its 14-byte wire form.
func (h Header) Bytes() [HeaderSize]byte {
	var out [HeaderSize]byte
	copy(out[0:4], magic[:])
	binary.BigEndian.PutUint32(out[4:8], h.Width)
	binary.BigEndian.PutUint32(out[8:12], h.Height)
	out[12] = h.Channels
	out[13] = h.Colorspace
	return out
}

// PixelCount returns width·height. The product of two uint32 values always
// fits in a uint64.
func (h Header) PixelCount() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}
