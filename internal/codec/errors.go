package codec

import "fmt"

// The codec reports failures through a closed set of error types, each
// carrying the observed values needed to reproduce the fault. Errors are
// terminal: an instance that returned one must be discarded.

// BadBufferSizeError reports a decoder window capacity that is below
// MinDecodeBuffer or not divisible by 4.
type BadBufferSizeError struct {
	Size int
}

func (e *BadBufferSizeError) Error() string {
	return fmt.Sprintf("qoi: buffer size must be at least %d bytes and divisible by 4, got %d", MinDecodeBuffer, e.Size)
}

// BadHeaderSizeError reports a header slice that is not exactly
// HeaderSize bytes.
type BadHeaderSizeError struct {
	Size int
}

func (e *BadHeaderSizeError) Error() string {
	return fmt.Sprintf("qoi: header must be %d bytes, got %d", HeaderSize, e.Size)
}

// InvalidMagicError reports header magic bytes that are not "qoif".
type InvalidMagicError struct {
	Magic [4]byte
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("qoi: invalid magic bytes %d, %d, %d, %d", e.Magic[0], e.Magic[1], e.Magic[2], e.Magic[3])
}

// InvalidDimensionsError reports a zero width or height.
type InvalidDimensionsError struct {
	Width, Height uint32
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("qoi: width and height cannot be 0, got %dx%d", e.Width, e.Height)
}

// InvalidChannelsError reports a channels value outside {3, 4}.
type InvalidChannelsError struct {
	Channels uint8
}

func (e *InvalidChannelsError) Error() string {
	return fmt.Sprintf("qoi: invalid channels value %d", e.Channels)
}

// InvalidColorspaceError reports a colorspace value outside {0, 1}.
type InvalidColorspaceError struct {
	Colorspace uint8
}

func (e *InvalidColorspaceError) Error() string {
	return fmt.Sprintf("qoi: invalid colorspace value %d", e.Colorspace)
}

// BadInputSizeError reports a decoder feed that is empty or longer than
// the window capacity.
type BadInputSizeError struct {
	Size, Max int
}

func (e *BadInputSizeError) Error() string {
	return fmt.Sprintf("qoi: input cannot be empty or exceed the window capacity (%d), got %d bytes", e.Max, e.Size)
}

// BadEndMarkerSizeError reports trailing data longer than the 8-byte end
// marker after the final pixel.
type BadEndMarkerSizeError struct {
	Size int
}

func (e *BadEndMarkerSizeError) Error() string {
	return fmt.Sprintf("qoi: wrong amount of bytes for end marker, got %d", e.Size)
}

// BadEndMarkerBytesError reports final trailing bytes that do not match
// the end marker.
type BadEndMarkerBytesError struct {
	Marker [EndMarkerSize]byte
}

func (e *BadEndMarkerBytesError) Error() string {
	m := e.Marker
	return fmt.Sprintf("qoi: wrong bytes for end marker: %d, %d, %d, %d, %d, %d, %d, %d",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7])
}

// PixelDataSizeError reports encoder input whose length is not divisible
// by the declared channel count.
type PixelDataSizeError struct {
	Size     int
	Channels uint8
}

func (e *PixelDataSizeError) Error() string {
	return fmt.Sprintf("qoi: input of %d bytes cannot represent %d byte pixels", e.Size, e.Channels)
}

// GeometryMismatchError reports declared dimensions that disagree with the
// supplied pixel count.
type GeometryMismatchError struct {
	Width, Height uint32
	Pixels        uint64
}

func (e *GeometryMismatchError) Error() string {
	return fmt.Sprintf("qoi: declared %dx%d but input contains %d pixels", e.Width, e.Height, e.Pixels)
}

// OutputBufferTooSmallError reports an encoder chunk window below
// MinEncodeBuffer bytes.
type OutputBufferTooSmallError struct {
	Size int
}

func (e *OutputBufferTooSmallError) Error() string {
	return fmt.Sprintf("qoi: encoder output buffer must be at least %d bytes, got %d", MinEncodeBuffer, e.Size)
}
