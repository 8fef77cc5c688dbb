// Package swatch renders palettes to swatch-card images.
package swatch

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/security"
)

// Format is an image encoding.
type Format string

// Supported formats.
const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// Options controls swatch layout.
type Options struct {
	// BandWidth is the width of each colour band in pixels.
	BandWidth int
	// Height is the image height in pixels.
	Height int
	// Labels draws each colour's hex code near the bottom of its band.
	Labels bool
}

// DefaultOptions returns the layout used by the CLI.
func DefaultOptions() Options {
	return Options{BandWidth: 120, Height: 200, Labels: true}
}

// Render draws one vertical band per colour. Labels use whichever of black or
// white text has the better contrast against the band.
func Render(colours []string, opts Options) (*image.RGBA, error) {
	if len(colours) == 0 {
		return nil, fmt.Errorf("cannot render an empty palette")
	}
	if opts.BandWidth <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d", opts.BandWidth, opts.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.BandWidth*len(colours), opts.Height))

	for i, hex := range colours {
		rgb, err := colour.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i+1, err)
		}

		band := image.Rect(i*opts.BandWidth, 0, (i+1)*opts.BandWidth, opts.Height)
		draw.Draw(img, band, image.NewUniform(rgb.Color()), image.Point{}, draw.Src)

		if opts.Labels {
			drawLabel(img, band, rgb)
		}
	}

	return img, nil
}

func drawLabel(img draw.Image, band image.Rectangle, rgb colour.RGB) {
	label := rgb.Hex()
	text, _ := colour.HexToRGB(colour.BestTextColour(label).Colour)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(text.Color()),
		Face: basicfont.Face7x13,
	}

	width := d.MeasureString(label).Ceil()
	x := band.Min.X + (band.Dx()-width)/2
	y := band.Max.Y - basicfont.Face7x13.Height
	d.Dot = fixed.P(x, y)
	d.DrawString(label)
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format: %s (valid: png, bmp)", format)
	}
}

// FormatFromPath picks the encoder from a file extension.
func FormatFromPath(path string) (Format, error) {
	if err := security.ValidateOutputPath(path, ".png", ".bmp"); err != nil {
		return "", err
	}
	return Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")), nil
}

// WriteFile renders colours and writes the image to path, choosing the format
// from the extension.
func WriteFile(path string, colours []string, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	img, err := Render(colours, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 - output path chosen by the user and validated above
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	encodeErr := Encode(f, img, format)
	closeErr := f.Close()
	if encodeErr != nil {
		return fmt.Errorf("failed to encode image: %w", encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close image file: %w", closeErr)
	}
	return nil
}
