package pipeline

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-vision/images"
	"github.com/nvr-ai/go-vision/images/chart"
	"github.com/nvr-ai/go-vision/images/codec"
)

// ExportOptions controls where and how a Result is written.
type ExportOptions struct {
	Dir     string
	Format  images.ImageFormat
	Quality int
	// Histograms writes one bar chart per histogram as hist_<name>.png.
	Histograms bool
	Chart      chart.Options
	Logger     *slog.Logger
}

// Export writes every artifact of r, and optionally the histogram charts,
// into opts.Dir. It returns the written paths in order.
func Export(r *Result, opts ExportOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Format.Extension() == "" {
		return nil, errors.Errorf("unsupported image format: %q", opts.Format)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", opts.Dir)
	}

	var written []string
	for _, a := range r.Artifacts() {
		path := filepath.Join(opts.Dir, a.Name+opts.Format.Extension())
		var err error
		if a.Plane != nil {
			err = codec.SavePlane(path, a.Plane, opts.Quality)
		} else {
			err = codec.SaveRaster(path, a.Raster, opts.Quality)
		}
		if err != nil {
			return written, errors.Wrapf(err, "failed to export %s", a.Name)
		}
		written = append(written, path)
		logSaved(logger, path)
	}

	if !opts.Histograms {
		return written, nil
	}
	for _, name := range HistogramOrder {
		h := r.Histograms[name]
		img := chart.RenderHistogram(h, "Histogram: "+name, opts.Chart)
		// Charts are always PNG: flat colours and text do not survive JPEG well.
		path := filepath.Join(opts.Dir, "hist_"+name+".png")
		if err := codec.SaveImage(path, img, opts.Quality); err != nil {
			return written, errors.Wrapf(err, "failed to export histogram %s", name)
		}
		written = append(written, path)
		logSaved(logger, path)
	}
	return written, nil
}

func logSaved(logger *slog.Logger, path string) {
	attrs := []any{"path", path}
	if fi, err := os.Stat(path); err == nil {
		attrs = append(attrs, "size", humanize.Bytes(uint64(fi.Size())))
	}
	logger.Info("saved", attrs...)
}
