package kernels

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-vision/images"
)

// DownsampleByTwo halves a plane in both axes by averaging 2×2 blocks:
//
//	out(x, y) = (p(2x, 2y) + p(2x+1, 2y) + p(2x, 2y+1) + p(2x+1, 2y+1)) / 4
//
// with integer truncation. The output is (W/2)×(H/2) using floor division, so
// an odd trailing row or column is dropped rather than padded. This is
// intended: the working size of 512 stays even through every level the
// pipeline builds.
//
// Returns images.ErrInvalidDimensions when the plane is less than two pixels
// wide or tall, since the result would be empty.
func DownsampleByTwo(p *images.Plane) (*images.Plane, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "downsample")
	}
	w, h := p.Width/2, p.Height/2
	out, err := images.NewPlane(w, h)
	if err != nil {
		return nil, errors.Wrapf(err, "downsample %dx%d", p.Width, p.Height)
	}

	for y := 0; y < h; y++ {
		top := 2 * y * p.Width
		bottom := top + p.Width
		for x := 0; x < w; x++ {
			c := 2 * x
			sum := uint16(p.Pix[top+c]) + uint16(p.Pix[top+c+1]) +
				uint16(p.Pix[bottom+c]) + uint16(p.Pix[bottom+c+1])
			out.Pix[y*w+x] = uint8(sum / 4)
		}
	}
	return out, nil
}

// Pyramid is a sequence of planes where level 0 is the base plane and every
// following level is the previous one downsampled by two.
type Pyramid []*images.Plane

// Base returns level 0.
func (p Pyramid) Base() *images.Plane {
	return p[0]
}

// Derived returns every level after the base, finest first.
func (p Pyramid) Derived() []*images.Plane {
	return p[1:]
}

// Depth returns the number of derived levels.
func (p Pyramid) Depth() int {
	return len(p) - 1
}

// BuildPyramid downsamples base depth times. Each level is computed from the
// level directly above it, never from the base, so truncation compounds from
// level to level the same way on every run.
//
// Arguments:
//   - base: The level 0 plane. It is copied, not retained.
//   - depth: The number of levels to derive; 3 yields the 1/2, 1/4 and 1/8 planes.
//
// Returns:
//   - Pyramid: depth+1 levels.
//   - error: If depth is negative or a level becomes too small to halve.
func BuildPyramid(base *images.Plane, depth int) (Pyramid, error) {
	if depth < 0 {
		return nil, errors.Errorf("pyramid depth must not be negative, got %d", depth)
	}
	if err := base.Validate(); err != nil {
		return nil, errors.Wrap(err, "pyramid base")
	}

	levels := make(Pyramid, 0, depth+1)
	levels = append(levels, base.Clone())
	for k := 1; k <= depth; k++ {
		next, err := DownsampleByTwo(levels[k-1])
		if err != nil {
			return nil, errors.Wrapf(err, "pyramid level %d", k)
		}
		levels = append(levels, next)
	}
	return levels, nil
}
