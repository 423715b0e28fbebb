package kernels

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-vision/images"
)

// Gray reduces three channel planes to one grayscale plane using the
// unweighted mean of the samples, truncated: out = (R + G + B) / 3.
//
// This is not a perceptual luma. The formula is kept as is so that outputs
// stay comparable with earlier runs.
//
// Arguments:
//   - r, g, b: The channel planes; all three must share the same dimensions.
//
// Returns:
//   - *images.Plane: The grayscale plane.
//   - error: images.ErrDimensionMismatch if the planes differ in size, or
//     images.ErrInvalidDimensions if a plane is malformed.
func Gray(r, g, b *images.Plane) (*images.Plane, error) {
	for _, p := range []*images.Plane{r, g, b} {
		if err := p.Validate(); err != nil {
			return nil, errors.Wrap(err, "gray")
		}
	}
	if !r.SameSize(g) || !r.SameSize(b) {
		return nil, errors.Wrapf(images.ErrDimensionMismatch, "gray: R %dx%d, G %dx%d, B %dx%d",
			r.Width, r.Height, g.Width, g.Height, b.Width, b.Height)
	}

	out := &images.Plane{Pix: make([]uint8, len(r.Pix)), Width: r.Width, Height: r.Height}
	for i := range out.Pix {
		// The sum is at most 765, so it is widened before adding.
		sum := uint16(r.Pix[i]) + uint16(g.Pix[i]) + uint16(b.Pix[i])
		out.Pix[i] = uint8(sum / 3)
	}
	return out, nil
}
