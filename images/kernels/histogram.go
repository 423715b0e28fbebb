package kernels

import "github.com/nvr-ai/go-vision/images"

// ComputeHistogram counts how often each intensity occurs in p. The counts
// sum to p.Width*p.Height.
func ComputeHistogram(p *images.Plane) images.Histogram {
	var h images.Histogram
	for _, v := range p.Pix {
		h[v]++
	}
	return h
}

// ComputeHistograms runs ComputeHistogram over several planes, keyed by name.
func ComputeHistograms(planes map[string]*images.Plane) map[string]images.Histogram {
	out := make(map[string]images.Histogram, len(planes))
	for name, p := range planes {
		out[name] = ComputeHistogram(p)
	}
	return out
}
