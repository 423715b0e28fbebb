// Package images - Raster and plane definitions for the analysis pipeline.
//
// A Raster is the 3-channel source image the pipeline is fed with. Every
// stage of the pipeline reads a Raster or a Plane and returns a freshly
// allocated Plane; nothing is modified in place after it has been returned.
package images

import "github.com/pkg/errors"

const (
	// WorkingSize is the edge length, in pixels, of the square raster the
	// pipeline works on. Ingestion resizes every input to this size.
	WorkingSize = 512
	// Channels is the number of interleaved samples per raster pixel (R, G, B).
	Channels = 3
)

// Channel identifies one of the three colour channels of a Raster.
type Channel int

const (
	// Red is the first interleaved sample.
	Red Channel = iota
	// Green is the second interleaved sample.
	Green
	// Blue is the third interleaved sample.
	Blue
)

// String returns the short name of the channel.
func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Raster is a fixed-size RGB pixel buffer with 8-bit samples.
type Raster struct {
	// Pix holds the samples in row-major order, Channels bytes per pixel.
	Pix []uint8 `json:"pix" yaml:"pix"`
	// Width is the number of columns.
	Width int `json:"width" yaml:"width"`
	// Height is the number of rows.
	Height int `json:"height" yaml:"height"`
}

// NewRaster allocates a zeroed raster.
//
// Arguments:
//   - width: The number of columns, must be positive.
//   - height: The number of rows, must be positive.
//
// Returns:
//   - *Raster: The allocated raster.
//   - error: ErrInvalidDimensions if either dimension is not positive.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "raster %dx%d", width, height)
	}
	return &Raster{
		Pix:    make([]uint8, width*height*Channels),
		Width:  width,
		Height: height,
	}, nil
}

// PixOffset returns the index of the red sample of pixel (x, y) in Pix.
func (r *Raster) PixOffset(x, y int) int {
	return (y*r.Width + x) * Channels
}

// RGBAt returns the three samples of pixel (x, y).
func (r *Raster) RGBAt(x, y int) (uint8, uint8, uint8) {
	i := r.PixOffset(x, y)
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

// SetRGB writes the three samples of pixel (x, y). It is meant for the code
// that builds a raster; a raster handed to the pipeline is never written.
func (r *Raster) SetRGB(x, y int, red, green, blue uint8) {
	i := r.PixOffset(x, y)
	r.Pix[i] = red
	r.Pix[i+1] = green
	r.Pix[i+2] = blue
}

// Validate reports whether the raster is well formed.
func (r *Raster) Validate() error {
	if r == nil {
		return errors.Wrap(ErrInvalidDimensions, "nil raster")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "raster %dx%d", r.Width, r.Height)
	}
	if len(r.Pix) != r.Width*r.Height*Channels {
		return errors.Wrapf(ErrInvalidDimensions, "raster %dx%d holds %d samples", r.Width, r.Height, len(r.Pix))
	}
	return nil
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.Pix))
	copy(pix, r.Pix)
	return &Raster{Pix: pix, Width: r.Width, Height: r.Height}
}
