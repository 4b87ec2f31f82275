// Command gqoi encodes and decodes QOI images from the command line.
//
// Usage:
//
//	gqoi enc [options] <input>       PNG/JPEG → QOI (use "-" for stdin)
//	gqoi dec [options] <input.qoi>   QOI → PNG/JPEG (use "-" for stdin, -o - for stdout)
//	gqoi info <input.qoi>            Display QOI header fields
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepteams/qoi"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "enc":
		err = runEnc(os.Args[2:])
	case "dec":
		err = runDec(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "gqoi: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "gqoi: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  gqoi enc [options] <input>       Encode PNG/JPEG to QOI
  gqoi dec [options] <input.qoi>   Decode QOI to PNG or JPEG
  gqoi info <input.qoi>            Display QOI header fields

Use "-" as input to read from stdin, "-o -" to write to stdout.

Run "gqoi <command> -h" for command-specific options.
`)
}

// openInput returns an io.ReadCloser for the given path.
// If path is "-", stdin is returned (caller should not close).
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// openOutput returns an io.WriteCloser for the given path.
// If path is "-", stdout is returned (caller should not close).
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// --- enc ---

func runEnc(args []string) error {
	fs := flag.NewFlagSet("enc", flag.ContinueOnError)
	linear := fs.Bool("linear", false, "record the linear colorspace flag instead of sRGB")
	output := fs.String("o", "", `output path (default: <input>.qoi, "-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("enc: missing input file\nUsage: gqoi enc [options] <input>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	opts := &qoi.Options{Colorspace: qoi.ColorspaceSRGB}
	if *linear {
		opts.Colorspace = qoi.ColorspaceLinear
	}

	outPath := *output
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".qoi"
	}
	out, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return qoi.Encode(out, img, opts)
}

// --- dec ---

func runDec(args []string) error {
	fs := flag.NewFlagSet("dec", flag.ContinueOnError)
	format := fs.String("f", "png", "output format: png or jpeg")
	quality := fs.Int("q", 90, "JPEG quality 1-100")
	output := fs.String("o", "", `output path (default: <input>.<format>, "-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("dec: missing input file\nUsage: gqoi dec [options] <input.qoi>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := qoi.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	outPath := *output
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + *format
	}
	out, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	switch *format {
	case "png":
		return png.Encode(out, img)
	case "jpeg", "jpg":
		return jpeg.Encode(out, img, &jpeg.Options{Quality: *quality})
	default:
		return fmt.Errorf("dec: unknown format %q", *format)
	}
}

// --- info ---

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("info: missing input file\nUsage: gqoi info <input.qoi>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	pix, h, err := qoi.DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	colorspace := "sRGB with linear alpha"
	if h.Colorspace == qoi.ColorspaceLinear {
		colorspace = "all channels linear"
	}
	fmt.Printf("File:       %s\n", inputPath)
	fmt.Printf("Dimensions: %dx%d\n", h.Width, h.Height)
	fmt.Printf("Channels:   %d\n", h.Channels)
	fmt.Printf("Colorspace: %s\n", colorspace)
	fmt.Printf("Encoded:    %d bytes\n", len(data))
	fmt.Printf("Decoded:    %d bytes (%.2fx)\n", len(pix), float64(len(pix))/float64(len(data)))
	return nil
}
