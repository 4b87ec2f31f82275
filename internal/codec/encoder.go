package codec

// Encoder is the streaming QOI encoder. It walks a packed RGB or RGBA
// pixel slice and produces QOI chunks in caller-sized drains, suspending
// whenever the chunk window cannot hold the next chunk. All state is fixed
// size; nothing is allocated after construction.
//
// The encoder emits chunks only. The caller writes the 14-byte header
// before the first drain and the 8-byte end marker after the last, which
// keeps every drain uniform.
//
// An Encoder must not be driven from two goroutines at once.
type Encoder struct {
	pix       []byte
	cursor    int
	out       outputWindow
	seen      [64]Pixel // dictionary addressed by Pixel.HashIndex
	prev      Pixel
	remaining uint64 // pixels still to consume
	channels  int    // 3 or 4; authoritative for the input layout
}

// NewEncoder validates the declared geometry against the pixel slice and
// returns an encoder plus the header describing the stream. channels is
// authoritative for interpreting pix: 3-byte RGB or 4-byte RGBA tuples.
// bufSize is the chunk window capacity and must be at least
// MinEncodeBuffer, the size of the largest single chunk.
func NewEncoder(pix []byte, width, height uint32, channels, colorspace uint8, bufSize int) (*Encoder, Header, error) {
	if width == 0 || height == 0 {
		return nil, Header{}, &InvalidDimensionsError{Width: width, Height: height}
	}
	if channels != 3 && channels != 4 {
		return nil, Header{}, &InvalidChannelsError{Channels: channels}
	}
	if colorspace != ColorspaceSRGB && colorspace != ColorspaceLinear {
		return nil, Header{}, &InvalidColorspaceError{Colorspace: colorspace}
	}
	if bufSize < MinEncodeBuffer {
		return nil, Header{}, &OutputBufferTooSmallError{Size: bufSize}
	}
	if len(pix)%int(channels) != 0 {
		return nil, Header{}, &PixelDataSizeError{Size: len(pix), Channels: channels}
	}
	h := Header{Width: width, Height: height, Channels: channels, Colorspace: colorspace}
	count := uint64(len(pix) / int(channels))
	if count != h.PixelCount() {
		return nil, Header{}, &GeometryMismatchError{Width: width, Height: height, Pixels: count}
	}
	e := &Encoder{
		pix:       pix,
		out:       newOutputWindow(bufSize),
		prev:      defaultPixel,
		remaining: count,
		channels:  int(channels),
	}
	return e, h, nil
}

// Next drives encoding to the next suspension point and drains the chunk
// window. The returned slice aliases the window and is only valid until
// the next call; done reports that every pixel has been consumed.
func (e *Encoder) Next() (chunks []byte, done bool) {
	for e.remaining > 0 && e.out.space > 0 {
		p := e.readPixel()
		if !e.encode(p) {
			// The chunk did not fit. Put the pixel back so the next call
			// re-reads it against a drained window.
			e.rewind()
			break
		}
	}
	return e.out.drain(), e.remaining == 0
}

// readPixel consumes one pixel from the input. 3-channel input inherits
// the previous pixel's alpha, which stays 255 for the whole stream.
func (e *Encoder) readPixel() Pixel {
	p := Pixel{
		R: e.pix[e.cursor],
		G: e.pix[e.cursor+1],
		B: e.pix[e.cursor+2],
		A: e.prev.A,
	}
	if e.channels == 4 {
		p.A = e.pix[e.cursor+3]
	}
	e.cursor += e.channels
	return p
}

func (e *Encoder) rewind() {
	e.cursor -= e.channels
}

// encode classifies one pixel and emits its chunk, reporting false without
// consuming output when the window lacks room. Single-byte chunks always
// fit: the loop in Next only runs with free space, and the window minimum
// guarantees a drained window holds any chunk.
func (e *Encoder) encode(p Pixel) bool {
	h := p.HashIndex()
	switch {
	case p == e.prev:
		// A repeat opens a run. This is also the path a leading
		// (0, 0, 0, 255) pixel takes: its dictionary slot still holds the
		// zero pixel, so it cannot be an index chunk and falls through to
		// a one-element run.
		n := e.extendRun()
		e.out.appendByte(opRun | byte(n-1))
		e.remaining -= uint64(n - 1)
	case e.seen[h] == p:
		e.out.appendByte(byte(h))
	case p.A == e.prev.A:
		if b, ok := p.Diff(e.prev); ok {
			e.out.appendByte(b)
		} else if b0, b1, ok := p.Luma(e.prev); ok {
			if e.out.space < 2 {
				return false
			}
			e.out.appendBytes(b0, b1)
		} else {
			if e.out.space < 4 {
				return false
			}
			e.out.appendBytes(opRGB, p.R, p.G, p.B)
		}
	default:
		if e.out.space < 5 {
			return false
		}
		e.out.appendBytes(opRGBA, p.R, p.G, p.B, p.A)
	}
	e.seen[h] = p
	e.prev = p
	e.remaining--
	return true
}

// extendRun counts how many pixels the current run covers, including the
// one already read. It consumes repeats up to the run-length limit and
// puts the first non-matching pixel back.
func (e *Encoder) extendRun() int {
	n := 1
	for n < MaxRunLength && e.cursor+e.channels <= len(e.pix) {
		if e.readPixel() != e.prev {
			e.rewind()
			break
		}
		n++
	}
	return n
}
