package qoi

import "github.com/deepteams/qoi/internal/codec"

// The codec reports malformed streams and misuse through a closed set of
// typed errors, each carrying the observed values. They are aliased here
// so callers can match them with errors.As without reaching into
// internal packages.
type (
	// BadBufferSizeError reports an invalid decoder window capacity.
	BadBufferSizeError = codec.BadBufferSizeError
	// BadHeaderSizeError reports a header slice that is not 14 bytes.
	BadHeaderSizeError = codec.BadHeaderSizeError
	// InvalidMagicError reports header magic bytes that are not "qoif".
	InvalidMagicError = codec.InvalidMagicError
	// InvalidDimensionsError reports a zero width or height.
	InvalidDimensionsError = codec.InvalidDimensionsError
	// InvalidChannelsError reports a channels value outside {3, 4}.
	InvalidChannelsError = codec.InvalidChannelsError
	// InvalidColorspaceError reports a colorspace value outside {0, 1}.
	InvalidColorspaceError = codec.InvalidColorspaceError
	// BadInputSizeError reports an empty or oversized decoder feed.
	BadInputSizeError = codec.BadInputSizeError
	// BadEndMarkerSizeError reports surplus trailing data after the
	// final pixel.
	BadEndMarkerSizeError = codec.BadEndMarkerSizeError
	// BadEndMarkerBytesError reports a corrupt end marker.
	BadEndMarkerBytesError = codec.BadEndMarkerBytesError
	// PixelDataSizeError reports encoder input not divisible by the
	// declared channel count.
	PixelDataSizeError = codec.PixelDataSizeError
	// GeometryMismatchError reports declared dimensions that disagree
	// with the supplied pixel count.
	GeometryMismatchError = codec.GeometryMismatchError
	// OutputBufferTooSmallError reports an encoder chunk window smaller
	// than the largest chunk.
	OutputBufferTooSmallError = codec.OutputBufferTooSmallError
)
