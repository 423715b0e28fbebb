// Package display shows planes, rasters and charts in OpenCV windows.
//
// Note: gocv needs OpenCV at build time and a windowing system at run time.
// Every Mat created here is closed before the call returns.
package display

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-vision/images"
)

// Viewer opens one window per image and waits for a key before moving on.
type Viewer struct {
	// WaitMillis is how long each window waits for a key; 0 waits forever.
	WaitMillis int
}

// NewViewer creates a viewer.
func NewViewer(waitMillis int) *Viewer {
	return &Viewer{WaitMillis: waitMillis}
}

// PlaneToMat copies a plane into a single-channel 8-bit Mat. The caller must
// Close the Mat.
func PlaneToMat(p *images.Plane) (gocv.Mat, error) {
	if err := p.Validate(); err != nil {
		return gocv.NewMat(), err
	}
	mat, err := gocv.NewMatFromBytes(p.Height, p.Width, gocv.MatTypeCV8UC1, p.Pix)
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "failed to create mat from plane")
	}
	return mat, nil
}

// RasterToMat copies a raster into a three-channel 8-bit Mat in OpenCV's BGR
// order. The caller must Close the Mat.
func RasterToMat(r *images.Raster) (gocv.Mat, error) {
	if err := r.Validate(); err != nil {
		return gocv.NewMat(), err
	}
	rgb, err := gocv.NewMatFromBytes(r.Height, r.Width, gocv.MatTypeCV8UC3, r.Pix)
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "failed to create mat from raster")
	}
	defer rgb.Close()

	bgr := gocv.NewMat()
	gocv.CvtColor(rgb, &bgr, gocv.ColorRGBToBGR)
	return bgr, nil
}

// ShowPlane displays a plane as a grayscale image.
func (v *Viewer) ShowPlane(title string, p *images.Plane) error {
	mat, err := PlaneToMat(p)
	if err != nil {
		return errors.Wrapf(err, "show %s", title)
	}
	defer mat.Close()
	v.show(title, mat)
	return nil
}

// ShowRaster displays a raster in colour.
func (v *Viewer) ShowRaster(title string, r *images.Raster) error {
	mat, err := RasterToMat(r)
	if err != nil {
		return errors.Wrapf(err, "show %s", title)
	}
	defer mat.Close()
	v.show(title, mat)
	return nil
}

// ShowImage displays any Go image, such as a rendered histogram chart.
func (v *Viewer) ShowImage(title string, img image.Image) error {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return errors.Wrapf(err, "show %s", title)
	}
	defer mat.Close()
	v.show(title, mat)
	return nil
}

func (v *Viewer) show(title string, mat gocv.Mat) {
	window := gocv.NewWindow(title)
	defer window.Close()
	window.IMShow(mat)
	window.WaitKey(v.WaitMillis)
}
