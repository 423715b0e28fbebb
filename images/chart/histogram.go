// Package chart renders intensity histograms as bar chart images.
package chart

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/nvr-ai/go-vision/images"
)

// Options controls the chart layout. Zero values take the defaults below.
type Options struct {
	Width      int         // Total image width in pixels (default 640).
	Height     int         // Total image height in pixels (default 400).
	Bar        color.Color // Bar colour (default steel blue).
	Background color.Color // Background colour (default white).
	Axis       color.Color // Axis and label colour (default black).
}

const (
	marginLeft   = 56
	marginRight  = 12
	marginTop    = 24
	marginBottom = 32
)

var (
	defaultBar        = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	defaultBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	defaultAxis       = color.RGBA{A: 255}
)

func (o Options) withDefaults() Options {
	if o.Width <= marginLeft+marginRight {
		o.Width = 640
	}
	if o.Height <= marginTop+marginBottom {
		o.Height = 400
	}
	if o.Bar == nil {
		o.Bar = defaultBar
	}
	if o.Background == nil {
		o.Background = defaultBackground
	}
	if o.Axis == nil {
		o.Axis = defaultAxis
	}
	return o
}

// PlotArea returns the rectangle the bars are drawn into for the given options.
func PlotArea(opts Options) image.Rectangle {
	opts = opts.withDefaults()
	return image.Rect(marginLeft, marginTop, opts.Width-marginRight, opts.Height-marginBottom)
}

// RenderHistogram draws a bar chart of h with one bar per intensity, scaled
// so the tallest bar fills the plot height. The title is drawn above the
// plot, "Brightness value" along the x axis and the peak count on the y axis.
//
// Arguments:
//   - h: The histogram to draw.
//   - title: Text drawn above the plot, e.g. "Histogram: AG".
//   - opts: Layout options; the zero value gives a 640x400 chart.
//
// Returns:
//   - *image.RGBA: The rendered chart.
func RenderHistogram(h images.Histogram, title string, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	plot := PlotArea(opts)
	bar := image.NewUniform(opts.Bar)
	_, peak := h.Max()

	if peak > 0 {
		for v, count := range h {
			if count == 0 {
				continue
			}
			x0 := plot.Min.X + v*plot.Dx()/len(h)
			x1 := plot.Min.X + (v+1)*plot.Dx()/len(h)
			if x1 == x0 {
				x1 = x0 + 1
			}
			barHeight := count * plot.Dy() / peak
			if barHeight == 0 {
				barHeight = 1
			}
			draw.Draw(img, image.Rect(x0, plot.Max.Y-barHeight, x1, plot.Max.Y), bar, image.Point{}, draw.Src)
		}
	}

	axis := image.NewUniform(opts.Axis)
	// x axis below the bars, y axis left of them.
	draw.Draw(img, image.Rect(plot.Min.X-1, plot.Max.Y, plot.Max.X, plot.Max.Y+1), axis, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(plot.Min.X-1, plot.Min.Y, plot.Min.X, plot.Max.Y+1), axis, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawText(img, axis, face, title, (opts.Width-textWidth(face, title))/2, marginTop-8)
	drawText(img, axis, face, "0", plot.Min.X, plot.Max.Y+14)
	drawText(img, axis, face, "255", plot.Max.X-textWidth(face, "255"), plot.Max.Y+14)
	label := "Brightness value"
	drawText(img, axis, face, label, plot.Min.X+(plot.Dx()-textWidth(face, label))/2, plot.Max.Y+28)
	peakLabel := strconv.Itoa(peak)
	drawText(img, axis, face, peakLabel, plot.Min.X-4-textWidth(face, peakLabel), plot.Min.Y+10)
	drawText(img, axis, face, "0", plot.Min.X-4-textWidth(face, "0"), plot.Max.Y)

	return img
}

func drawText(dst draw.Image, src image.Image, face font.Face, s string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}
