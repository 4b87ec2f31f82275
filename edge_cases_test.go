package qoi

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"sync"
	"testing"
)

// --- Helpers ---

func makeNRGBA(w, h int, fill color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		off := y * img.Stride
		for x := 0; x < w; x++ {
			img.Pix[off] = fill.R
			img.Pix[off+1] = fill.G
			img.Pix[off+2] = fill.B
			img.Pix[off+3] = fill.A
			off += 4
		}
	}
	return img
}

func makeGradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := uint8(x * 255 / max(w-1, 1))
			g := uint8(y * 255 / max(h-1, 1))
			b := uint8((x + y) * 127 / max(w+h-2, 1))
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func makeNoise(w, h int, seed int64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rng := rand.New(rand.NewSource(seed))
	for i := range img.Pix {
		img.Pix[i] = byte(rng.Intn(256))
	}
	return img
}

func encodeAndDecode(t *testing.T, img image.Image, opts *Options) image.Image {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, img, opts); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return decoded
}

func sameNRGBA(got image.Image, want *image.NRGBA) error {
	if got.Bounds() != want.Bounds() {
		return fmt.Errorf("bounds = %v, want %v", got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got.At(x, y) != want.At(x, y) {
				return fmt.Errorf("pixel (%d, %d) = %v, want %v", x, y, got.At(x, y), want.At(x, y))
			}
		}
	}
	return nil
}

// --- Tests ---

func TestRoundTrip1x1(t *testing.T) {
	for _, fill := range []color.NRGBA{{0, 0, 0, 255}, {1, 2, 3, 4}} {
		img := makeNRGBA(1, 1, fill)
		if err := sameNRGBA(encodeAndDecode(t, img, nil), img); err != nil {
			t.Errorf("1x1 %v: %v", fill, err)
		}
	}
}

func TestRoundTripExtremeAspect(t *testing.T) {
	wide := makeGradient(512, 1)
	if err := sameNRGBA(encodeAndDecode(t, wide, nil), wide); err != nil {
		t.Errorf("512x1: %v", err)
	}
	tall := makeGradient(1, 512)
	if err := sameNRGBA(encodeAndDecode(t, tall, nil), tall); err != nil {
		t.Errorf("1x512: %v", err)
	}
}

func TestRoundTripNoise(t *testing.T) {
	// Noise defeats every compressed chunk kind, forcing the RGB/RGBA
	// paths and their suspension points.
	img := makeNoise(53, 31, 7)
	if err := sameNRGBA(encodeAndDecode(t, img, nil), img); err != nil {
		t.Error(err)
	}
}

// Adjacent pixels engineered to hit each chunk transition: run→diff,
// diff→index, index→luma, luma→rgb, rgb→rgba, rgba→run and run→index.
func TestRoundTripChunkAdjacencies(t *testing.T) {
	pixels := []color.NRGBA{
		{0, 0, 0, 255}, {0, 0, 0, 255}, // run
		{1, 1, 1, 255},                   // diff
		{0, 0, 0, 255},                   // index (written by the run)
		{9, 12, 9, 255},                  // luma
		{200, 9, 77, 255},                // rgb
		{200, 9, 77, 30},                 // rgba
		{200, 9, 77, 30}, {200, 9, 77, 30}, // run after rgba
		{1, 1, 1, 255}, // index (alpha returns; slot written by the diff)
	}
	img := image.NewNRGBA(image.Rect(0, 0, len(pixels), 1))
	for x, p := range pixels {
		img.SetNRGBA(x, 0, p)
	}
	if err := sameNRGBA(encodeAndDecode(t, img, nil), img); err != nil {
		t.Error(err)
	}
}

func TestRoundTripSubImage(t *testing.T) {
	// Non-zero bounds must encode from the sub-image origin.
	base := makeGradient(20, 20)
	sub := base.SubImage(image.Rect(5, 5, 15, 12)).(*image.NRGBA)
	decoded := encodeAndDecode(t, sub, nil)
	if decoded.Bounds().Dx() != 10 || decoded.Bounds().Dy() != 7 {
		t.Fatalf("bounds = %v, want 10x7", decoded.Bounds())
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 10; x++ {
			if decoded.At(x, y) != base.At(x+5, y+5) {
				t.Fatalf("pixel (%d, %d) differs from the sub-image source", x, y)
			}
		}
	}
}

// Independent codec instances must not share state.
func TestConcurrentInstances(t *testing.T) {
	var encoded [8][]byte
	images := make([]*image.NRGBA, 8)
	for i := range images {
		images[i] = makeNoise(40, 25, int64(i))
		var buf bytes.Buffer
		if err := Encode(&buf, images[i], nil); err != nil {
			t.Fatalf("Encode %d: %v", i, err)
		}
		encoded[i] = buf.Bytes()
	}

	var wg sync.WaitGroup
	for i := range encoded {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for iter := 0; iter < 4; iter++ {
				img, err := Decode(bytes.NewReader(encoded[i]))
				if err != nil {
					t.Errorf("concurrent Decode %d: %v", i, err)
					return
				}
				if err := sameNRGBA(img, images[i]); err != nil {
					t.Errorf("concurrent Decode %d: %v", i, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestDecodeGarbage(t *testing.T) {
	inputs := [][]byte{
		{},
		{'q', 'o', 'i', 'f'},
		bytes.Repeat([]byte{0xff}, 64),
		append([]byte("qoif"), bytes.Repeat([]byte{1}, 40)...),
	}
	for i, data := range inputs {
		if _, _, err := DecodeBytes(data); err == nil {
			t.Errorf("garbage input %d decoded without error", i)
		}
	}
}
