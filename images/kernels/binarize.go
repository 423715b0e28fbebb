package kernels

import "github.com/nvr-ai/go-vision/images"

// Foreground and Background are the two sample values of a binary plane.
const (
	Foreground uint8 = 255
	Background uint8 = 0
)

// Binarize maps every sample at or above threshold to Foreground and every
// other sample to Background. The comparison is inclusive.
//
// Any threshold is accepted: anything at or below 0 yields an all-foreground
// plane and anything above 255 an all-background plane.
func Binarize(p *images.Plane, threshold int) *images.Plane {
	out := &images.Plane{Pix: make([]uint8, len(p.Pix)), Width: p.Width, Height: p.Height}
	for i, v := range p.Pix {
		if int(v) >= threshold {
			out.Pix[i] = Foreground
		}
	}
	return out
}
