package chart

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvr-ai/go-vision/images"
)

func TestRenderHistogramDefaults(t *testing.T) {
	var h images.Histogram
	img := RenderHistogram(h, "Histogram: AG", Options{})
	assert.Equal(t, image.Rect(0, 0, 640, 400), img.Bounds())
}

func TestRenderHistogramBars(t *testing.T) {
	var h images.Histogram
	h[0] = 10
	h[128] = 5

	opts := Options{Width: 256 + marginLeft + marginRight, Height: 200}
	img := RenderHistogram(h, "", opts)
	plot := PlotArea(opts)
	assert.Equal(t, 256, plot.Dx(), "one column per intensity")

	barAt := func(v, fromBottom int) color.RGBA {
		return img.RGBAAt(plot.Min.X+v, plot.Max.Y-1-fromBottom)
	}

	// The peak bar spans the full plot height.
	assert.Equal(t, defaultBar, barAt(0, 0))
	assert.Equal(t, defaultBar, barAt(0, plot.Dy()-1))

	// Half the count, half the height.
	assert.Equal(t, defaultBar, barAt(128, plot.Dy()/2-1))
	assert.Equal(t, defaultBackground, barAt(128, plot.Dy()/2+1))

	// Empty intensities draw nothing.
	assert.Equal(t, defaultBackground, barAt(64, 0))
}

func TestRenderHistogramSmallCountsStayVisible(t *testing.T) {
	var h images.Histogram
	h[10] = 100000
	h[200] = 1

	opts := Options{Width: 256 + marginLeft + marginRight, Height: 120}
	img := RenderHistogram(h, "", opts)
	plot := PlotArea(opts)
	assert.Equal(t, defaultBar, img.RGBAAt(plot.Min.X+200, plot.Max.Y-1))
}

func TestRenderHistogramCustomColours(t *testing.T) {
	var h images.Histogram
	h[5] = 1
	bar := color.RGBA{R: 200, A: 255}
	bg := color.RGBA{G: 10, A: 255}

	opts := Options{Width: 256 + marginLeft + marginRight, Height: 100, Bar: bar, Background: bg}
	img := RenderHistogram(h, "", opts)
	plot := PlotArea(opts)

	assert.Equal(t, bar, img.RGBAAt(plot.Min.X+5, plot.Max.Y-1))
	assert.Equal(t, bg, img.RGBAAt(plot.Min.X+6, plot.Min.Y+1))
	assert.Equal(t, bg, img.RGBAAt(opts.Width-1, opts.Height-1))
}
