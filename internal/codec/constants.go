package codec

// Sizes fixed by the QOI bitstream layout.
const (
	// HeaderSize is the serialized length of a QOI header.
	HeaderSize = 14
	// EndMarkerSize is the length of the stream end marker.
	EndMarkerSize = 8
	// MinDecodeBuffer is the smallest pixel window a Decoder accepts.
	MinDecodeBuffer = 16
	// MinEncodeBuffer is the smallest chunk window an Encoder accepts.
	// It equals the largest single chunk (QOI_OP_RGBA).
	MinEncodeBuffer = 5
	// MaxRunLength is the longest run a single QOI_OP_RUN chunk can carry.
	MaxRunLength = 62
)

// Colorspace values stored in byte 13 of the header. They are purely
// informative; no conversion is applied by the codec.
const (
	ColorspaceSRGB   uint8 = 0 // sRGB with linear alpha
	ColorspaceLinear uint8 = 1 // all channels linear
)

// Chunk tags. The two-bit ops occupy the top two bits of their tag byte;
// QOI_OP_RGB and QOI_OP_RGBA claim the top two values of the run range.
const (
	opIndex byte = 0x00 // 00iiiiii
	opDiff  byte = 0x40 // 01rrggbb
	opLuma  byte = 0x80 // 10gggggg RRRRBBBB
	opRun   byte = 0xc0 // 11nnnnnn
	opRGB   byte = 0xfe // 11111110 R G B
	opRGBA  byte = 0xff // 11111111 R G B A

	tagMask2 byte = 0xc0 // selects the two-bit op
	val6Mask byte = 0x3f // low six bits of a two-bit op
)

// magic is the header signature "qoif".
var magic = [4]byte{'q', 'o', 'i', 'f'}

// endMarker terminates every well-formed QOI stream.
var endMarker = [EndMarkerSize]byte{0, 0, 0, 0, 0, 0, 0, 1}

// EndMarker returns the 8-byte stream end marker. The encoder does not
// emit it; callers append it after the final drain.
func EndMarker() [EndMarkerSize]byte { return endMarker }
