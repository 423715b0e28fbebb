// Package kernels implements the per-pixel stages of the analysis pipeline:
// channel splitting, luminance reduction, histogram accumulation,
// binarization, edge detection and pyramid downsampling.
//
// Every function reads its inputs without modifying them and returns newly
// allocated outputs, so independent stages can run concurrently on the same
// input without locking.
package kernels

import "github.com/nvr-ai/go-vision/images"

// SplitChannels extracts the red, green and blue planes of a raster. Each
// plane has the raster's dimensions.
func SplitChannels(r *images.Raster) (red, green, blue *images.Plane) {
	n := r.Width * r.Height
	red = &images.Plane{Pix: make([]uint8, n), Width: r.Width, Height: r.Height}
	green = &images.Plane{Pix: make([]uint8, n), Width: r.Width, Height: r.Height}
	blue = &images.Plane{Pix: make([]uint8, n), Width: r.Width, Height: r.Height}

	for i := 0; i < n; i++ {
		o := i * images.Channels
		red.Pix[i] = r.Pix[o]
		green.Pix[i] = r.Pix[o+1]
		blue.Pix[i] = r.Pix[o+2]
	}
	return red, green, blue
}

// ExtractChannel returns a single channel of a raster as a plane.
func ExtractChannel(r *images.Raster, ch images.Channel) *images.Plane {
	n := r.Width * r.Height
	out := &images.Plane{Pix: make([]uint8, n), Width: r.Width, Height: r.Height}
	for i := 0; i < n; i++ {
		out.Pix[i] = r.Pix[i*images.Channels+int(ch)]
	}
	return out
}

// IsolateChannel returns a colour raster that keeps only one channel of r:
// the red channel image has red samples on the red channel and zeros on
// green and blue, and likewise for the other two.
func IsolateChannel(r *images.Raster, ch images.Channel) *images.Raster {
	out := &images.Raster{Pix: make([]uint8, len(r.Pix)), Width: r.Width, Height: r.Height}
	for i := int(ch); i < len(r.Pix); i += images.Channels {
		out.Pix[i] = r.Pix[i]
	}
	return out
}
