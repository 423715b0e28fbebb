// Package pipeline runs the full analysis of one working raster:
//
//	Raster ─▶ SplitChannels ─▶ R, G, B ─┬─▶ colour isolations
//	                                    ├─▶ histograms RC, GC, BC
//	                                    └─▶ Gray ─┬─▶ histogram AG
//	                                              ├─▶ Binarize ─▶ AB
//	                                              ├─▶ DetectEdges ─▶ AE
//	                                              └─▶ BuildPyramid ─▶ AG2, AG4, AG8
//
// Branches never share output buffers, so they can be fanned out across
// goroutines. The result is identical either way.
package pipeline

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nvr-ai/go-vision/images"
	"github.com/nvr-ai/go-vision/images/kernels"
	"github.com/nvr-ai/go-vision/profiler"
)

// Output names, as written to disk.
const (
	NameInput  = "A_input_512"
	NameRed    = "RC"
	NameGreen  = "GC"
	NameBlue   = "BC"
	NameGray   = "AG"
	NameBinary = "AB"
	NameEdges  = "AE"
)

// HistogramOrder lists the histogram keys of a Result in display order.
var HistogramOrder = []string{NameRed, NameGreen, NameBlue, NameGray}

// Thresholds are the two caller-supplied parameters of a run. There are no
// defaults; every run states both explicitly.
type Thresholds struct {
	// Binarize is compared inclusively: gray >= Binarize is foreground.
	Binarize int
	// Edge is compared strictly: magnitude > Edge is an edge.
	Edge int
}

// Options tune how a run executes. The zero value runs sequentially with a
// pyramid depth of zero and no profiling or logging.
type Options struct {
	PyramidDepth int
	Parallel     bool
	Profiler     *profiler.Profiler
	Logger       *slog.Logger
}

// Result holds every output of a run. All planes are freshly allocated and
// owned by the caller.
type Result struct {
	Thresholds Thresholds
	Input      *images.Raster

	Red, Green, Blue *images.Plane
	// RedImage, GreenImage and BlueImage keep one channel and zero the others.
	RedImage, GreenImage, BlueImage *images.Raster

	Gray       *images.Plane
	Histograms map[string]images.Histogram
	Binary     *images.Plane
	Edges      *images.Plane
	Pyramid    kernels.Pyramid
}

type task struct {
	name string
	fn   func() error
}

type runner struct {
	parallel bool
	prof     *profiler.Profiler
	logger   *slog.Logger
}

// Run analyses a working raster.
//
// Arguments:
//   - ctx: Checked between stages; a cancelled context stops the run.
//   - raster: A WorkingSize×WorkingSize raster. It is read, never modified.
//   - thresholds: The binarization and edge thresholds.
//   - opts: Execution options.
//
// Returns:
//   - *Result: Every output plane, histogram and pyramid level.
//   - error: images.ErrInvalidDimensions for a malformed or wrongly sized
//     raster, a pyramid error, or the context's error.
func Run(ctx context.Context, raster *images.Raster, thresholds Thresholds, opts Options) (*Result, error) {
	if err := raster.Validate(); err != nil {
		return nil, errors.Wrap(err, "pipeline input")
	}
	if raster.Width != images.WorkingSize || raster.Height != images.WorkingSize {
		return nil, errors.Wrapf(images.ErrInvalidDimensions, "pipeline input is %dx%d, want %dx%d",
			raster.Width, raster.Height, images.WorkingSize, images.WorkingSize)
	}
	if opts.PyramidDepth < 0 {
		return nil, errors.Errorf("pyramid depth must not be negative, got %d", opts.PyramidDepth)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &runner{parallel: opts.Parallel, prof: opts.Profiler, logger: logger}
	res := &Result{Thresholds: thresholds, Input: raster}

	logger.Debug("pipeline started",
		"binarize_threshold", thresholds.Binarize,
		"edge_threshold", thresholds.Edge,
		"pyramid_depth", opts.PyramidDepth,
		"parallel", opts.Parallel,
	)

	if err := r.run(ctx, []task{{"split", func() error {
		res.Red, res.Green, res.Blue = kernels.SplitChannels(raster)
		return nil
	}}}); err != nil {
		return nil, err
	}

	var histR, histG, histB, histGray images.Histogram
	err := r.run(ctx, []task{
		{"gray", func() (err error) {
			res.Gray, err = kernels.Gray(res.Red, res.Green, res.Blue)
			return err
		}},
		{"isolate_r", func() error { res.RedImage = kernels.IsolateChannel(raster, images.Red); return nil }},
		{"isolate_g", func() error { res.GreenImage = kernels.IsolateChannel(raster, images.Green); return nil }},
		{"isolate_b", func() error { res.BlueImage = kernels.IsolateChannel(raster, images.Blue); return nil }},
		{"histogram_rc", func() error { histR = kernels.ComputeHistogram(res.Red); return nil }},
		{"histogram_gc", func() error { histG = kernels.ComputeHistogram(res.Green); return nil }},
		{"histogram_bc", func() error { histB = kernels.ComputeHistogram(res.Blue); return nil }},
	})
	if err != nil {
		return nil, err
	}

	err = r.run(ctx, []task{
		{"histogram_ag", func() error { histGray = kernels.ComputeHistogram(res.Gray); return nil }},
		{"binarize", func() error { res.Binary = kernels.Binarize(res.Gray, thresholds.Binarize); return nil }},
		{"edges", func() error { res.Edges = kernels.DetectEdges(res.Gray, thresholds.Edge); return nil }},
		{"pyramid", func() (err error) {
			res.Pyramid, err = kernels.BuildPyramid(res.Gray, opts.PyramidDepth)
			return err
		}},
	})
	if err != nil {
		return nil, err
	}

	res.Histograms = map[string]images.Histogram{
		NameRed:   histR,
		NameGreen: histG,
		NameBlue:  histB,
		NameGray:  histGray,
	}

	logger.Debug("pipeline finished",
		"gray", images.Checksum(res.Gray),
		"binary", images.Checksum(res.Binary),
		"edges", images.Checksum(res.Edges),
	)
	return res, nil
}

// run executes tasks in order, or concurrently when the runner is parallel.
// The first error wins; in parallel mode it cancels the remaining tasks
// before they start.
func (r *runner) run(ctx context.Context, tasks []task) error {
	if !r.parallel {
		for _, t := range tasks {
			if err := r.exec(ctx, t); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		g.Go(func() error {
			return r.exec(gctx, t)
		})
	}
	return g.Wait()
}

func (r *runner) exec(ctx context.Context, t task) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "stage %s", t.name)
	}
	stop := r.prof.StartOperation(t.name)
	err := t.fn()
	stop()
	if err != nil {
		return errors.Wrapf(err, "stage %s", t.name)
	}
	r.logger.Debug("stage done", "stage", t.name)
	return nil
}

// PyramidName returns the output name of pyramid level k (k >= 1): AG2, AG4,
// AG8 and so on.
func PyramidName(k int) string {
	return NameGray + strconv.Itoa(1<<uint(k))
}

// Artifact is one exportable image of a Result. Exactly one of Plane and
// Raster is set.
type Artifact struct {
	Name   string
	Plane  *images.Plane
	Raster *images.Raster
}

// Artifacts lists the images of the result in the order they are produced:
// input, the three colour isolations, gray, binary, edges, then the pyramid
// levels.
func (r *Result) Artifacts() []Artifact {
	out := []Artifact{
		{Name: NameInput, Raster: r.Input},
		{Name: NameRed + "_color", Raster: r.RedImage},
		{Name: NameGreen + "_color", Raster: r.GreenImage},
		{Name: NameBlue + "_color", Raster: r.BlueImage},
		{Name: NameGray, Plane: r.Gray},
		{Name: NameBinary, Plane: r.Binary},
		{Name: NameEdges, Plane: r.Edges},
	}
	for k, level := range r.Pyramid.Derived() {
		out = append(out, Artifact{Name: PyramidName(k + 1), Plane: level})
	}
	return out
}
