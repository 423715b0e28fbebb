package images

import "github.com/pkg/errors"

// Plane is a single-channel buffer of 8-bit samples. Grayscale, binary and
// isolated channel data are all Planes.
type Plane struct {
	// Pix holds one sample per pixel in row-major order.
	Pix []uint8 `json:"pix" yaml:"pix"`
	// Width is the number of columns.
	Width int `json:"width" yaml:"width"`
	// Height is the number of rows.
	Height int `json:"height" yaml:"height"`
}

// NewPlane allocates a zeroed plane.
//
// Arguments:
//   - width: The number of columns, must be positive.
//   - height: The number of rows, must be positive.
//
// Returns:
//   - *Plane: The allocated plane.
//   - error: ErrInvalidDimensions if either dimension is not positive.
func NewPlane(width, height int) (*Plane, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "plane %dx%d", width, height)
	}
	return &Plane{Pix: make([]uint8, width*height), Width: width, Height: height}, nil
}

// UniformPlane allocates a plane with every sample set to v.
func UniformPlane(width, height int, v uint8) (*Plane, error) {
	p, err := NewPlane(width, height)
	if err != nil {
		return nil, err
	}
	for i := range p.Pix {
		p.Pix[i] = v
	}
	return p, nil
}

// PlaneFromRows builds a plane from a slice of equally long rows.
//
// Example:
//
//	p, err := PlaneFromRows([][]uint8{{255, 0}, {0, 0}})
func PlaneFromRows(rows [][]uint8) (*Plane, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "no rows")
	}
	p, err := NewPlane(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != p.Width {
			return nil, errors.Wrapf(ErrInvalidDimensions, "row %d has %d samples, want %d", y, len(row), p.Width)
		}
		copy(p.Pix[y*p.Width:], row)
	}
	return p, nil
}

// At returns the sample in column x, row y.
func (p *Plane) At(x, y int) uint8 {
	return p.Pix[y*p.Width+x]
}

// Set writes the sample in column x, row y.
func (p *Plane) Set(x, y int, v uint8) {
	p.Pix[y*p.Width+x] = v
}

// Rows returns a copy of the plane as a slice of rows.
func (p *Plane) Rows() [][]uint8 {
	rows := make([][]uint8, p.Height)
	for y := range rows {
		rows[y] = make([]uint8, p.Width)
		copy(rows[y], p.Pix[y*p.Width:(y+1)*p.Width])
	}
	return rows
}

// SameSize reports whether both planes have identical dimensions.
func (p *Plane) SameSize(o *Plane) bool {
	return p.Width == o.Width && p.Height == o.Height
}

// Equal reports whether both planes have identical dimensions and samples.
func (p *Plane) Equal(o *Plane) bool {
	if !p.SameSize(o) || len(p.Pix) != len(o.Pix) {
		return false
	}
	for i := range p.Pix {
		if p.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// Validate reports whether the plane is well formed.
func (p *Plane) Validate() error {
	if p == nil {
		return errors.Wrap(ErrInvalidDimensions, "nil plane")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "plane %dx%d", p.Width, p.Height)
	}
	if len(p.Pix) != p.Width*p.Height {
		return errors.Wrapf(ErrInvalidDimensions, "plane %dx%d holds %d samples", p.Width, p.Height, len(p.Pix))
	}
	return nil
}

// Clone returns a deep copy of the plane.
func (p *Plane) Clone() *Plane {
	pix := make([]uint8, len(p.Pix))
	copy(pix, p.Pix)
	return &Plane{Pix: pix, Width: p.Width, Height: p.Height}
}

// GradientPlane holds signed discrete differences in [-255, 255].
type GradientPlane struct {
	Pix    []int16
	Width  int
	Height int
}

// At returns the sample in column x, row y.
func (g *GradientPlane) At(x, y int) int16 {
	return g.Pix[y*g.Width+x]
}

// MagnitudePlane holds gradient magnitudes.
type MagnitudePlane struct {
	Pix    []float32
	Width  int
	Height int
}

// At returns the sample in column x, row y.
func (m *MagnitudePlane) At(x, y int) float32 {
	return m.Pix[y*m.Width+x]
}

// Histogram holds the frequency of every 8-bit intensity; the index is the
// intensity value.
type Histogram [256]int

// Total returns the sum of all counts.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// Max returns the largest count and the first intensity holding it.
func (h *Histogram) Max() (value int, count int) {
	for v, c := range h {
		if c > count {
			value, count = v, c
		}
	}
	return value, count
}
