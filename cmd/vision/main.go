// Command vision runs the raster analysis pipeline on an image, or on every
// image of a directory, and writes the results next to each other:
//
//	vision -image photo.jpg -tb 100 -te 15 -out results
//
// Thresholds not given as flags are read from the config file, and failing
// that, prompted for on stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-vision/config"
	"github.com/nvr-ai/go-vision/display"
	"github.com/nvr-ai/go-vision/images"
	"github.com/nvr-ai/go-vision/images/chart"
	"github.com/nvr-ai/go-vision/images/codec"
	"github.com/nvr-ai/go-vision/pipeline"
	"github.com/nvr-ai/go-vision/profiler"
	"github.com/nvr-ai/go-vision/util"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "vision: %v\n", err)
		os.Exit(1)
	}
}

// flags holds the parsed command line. Thresholds are pointers so that an
// unset flag can be told apart from an explicit zero.
type flags struct {
	configPath string
	imagePath  string
	dirPath    string
	outDir     string
	format     string
	depth      int
	parallel   bool
	show       bool
	noHist     bool
	profile    bool
	binarize   *int
	edge       *int
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	fs := flag.NewFlagSet("vision", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &flags{}
	var tb, te int
	fs.StringVar(&f.configPath, "config", "", "Path to a TOML config file")
	fs.StringVar(&f.imagePath, "image", "", "Path to image file (.jpg, .jpeg, .png, .bmp, .webp)")
	fs.StringVar(&f.dirPath, "dir", "", "Process every image in this directory")
	fs.StringVar(&f.outDir, "out", "", "Output directory (overrides config)")
	fs.StringVar(&f.format, "format", "", "Output format: jpg, png, webp or bmp (overrides config)")
	fs.IntVar(&f.depth, "depth", -1, "Pyramid depth (overrides config)")
	fs.BoolVar(&f.parallel, "parallel", false, "Run independent stages concurrently")
	fs.BoolVar(&f.show, "show", false, "Show every result in a window")
	fs.BoolVar(&f.noHist, "no-hist", false, "Do not write histogram charts")
	fs.BoolVar(&f.profile, "profile", false, "Log per-stage timings")
	fs.IntVar(&tb, "tb", 0, "Binarization threshold TB (inclusive, e.g. 100)")
	fs.IntVar(&te, "te", 0, "Edge detection threshold TE (strict, e.g. 15)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "tb":
			f.binarize = &tb
		case "te":
			f.edge = &te
		}
	})

	if f.imagePath != "" && f.dirPath != "" {
		return nil, errors.New("cannot specify both -image and -dir")
	}
	if f.imagePath == "" && f.dirPath == "" {
		return nil, errors.New("one of -image or -dir is required")
	}
	return f, nil
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if f.outDir != "" {
		cfg.Output.Dir = f.outDir
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.depth >= 0 {
		cfg.Pipeline.PyramidDepth = f.depth
	}
	if f.parallel {
		cfg.Pipeline.Parallel = true
	}
	if f.show {
		cfg.Display.Enabled = true
	}
	if f.noHist {
		cfg.Output.Histograms = false
	}
	if f.binarize != nil {
		cfg.Pipeline.BinarizeThreshold = f.binarize
	}
	if f.edge != nil {
		cfg.Pipeline.EdgeThreshold = f.edge
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	logger, closer, err := cfg.Logging.NewLogger(stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	var inputs []util.ImageFile
	if f.imagePath != "" {
		if err := util.ValidateImageFile(f.imagePath); err != nil {
			return err
		}
		inputs = []util.ImageFile{{Path: f.imagePath}}
	} else {
		if inputs, err = util.LoadDirectoryImageFiles(f.dirPath); err != nil {
			return err
		}
		if len(inputs) == 0 {
			return errors.Errorf("no images found in %s", f.dirPath)
		}
	}

	thresholds, err := resolveThresholds(cfg.Pipeline, stdin, stdout)
	if err != nil {
		return err
	}

	var prof *profiler.Profiler
	if f.profile {
		prof = profiler.New(profiler.ProfilingOptions{})
	}
	var viewer *display.Viewer
	if cfg.Display.Enabled {
		viewer = display.NewViewer(cfg.Display.WaitMillis)
	}

	for _, in := range inputs {
		outDir := cfg.Output.Dir
		if in.Name != "" {
			// Batch runs keep each input's results apart.
			outDir = filepath.Join(outDir, in.Name)
		}
		if err := processImage(ctx, in.Path, outDir, thresholds, cfg, prof, viewer, logger); err != nil {
			return err
		}
	}

	prof.LogReport(logger)
	return nil
}

func processImage(ctx context.Context, path, outDir string, thresholds pipeline.Thresholds, cfg *config.Config,
	prof *profiler.Profiler, viewer *display.Viewer, logger *slog.Logger,
) error {
	logger = logger.With("input", path)

	stop := prof.StartOperation("load")
	raster, err := codec.LoadRaster(path, images.WorkingSize)
	stop()
	if err != nil {
		return err
	}

	res, err := pipeline.Run(ctx, raster, thresholds, pipeline.Options{
		PyramidDepth: cfg.Pipeline.PyramidDepth,
		Parallel:     cfg.Pipeline.Parallel,
		Profiler:     prof,
		Logger:       logger,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to process %s", path)
	}

	chartOpts := chart.Options{Width: cfg.Output.ChartWidth, Height: cfg.Output.ChartHeight}
	stop = prof.StartOperation("export")
	written, err := pipeline.Export(res, pipeline.ExportOptions{
		Dir:        outDir,
		Format:     cfg.OutputFormat(),
		Quality:    cfg.Output.Quality,
		Histograms: cfg.Output.Histograms,
		Chart:      chartOpts,
		Logger:     logger,
	})
	stop()
	if err != nil {
		return err
	}
	logger.Info("processed", "outputs", len(written), "dir", outDir)

	if viewer != nil {
		return showResult(viewer, res, chartOpts)
	}
	return nil
}

// showResult displays the artifacts in production order, then the charts.
func showResult(v *display.Viewer, res *pipeline.Result, opts chart.Options) error {
	for _, a := range res.Artifacts() {
		var err error
		if a.Plane != nil {
			err = v.ShowPlane(a.Name, a.Plane)
		} else {
			err = v.ShowRaster(a.Name, a.Raster)
		}
		if err != nil {
			return err
		}
	}
	for _, name := range pipeline.HistogramOrder {
		title := "Histogram: " + name
		if err := v.ShowImage(title, chart.RenderHistogram(res.Histograms[name], title, opts)); err != nil {
			return err
		}
	}
	return nil
}
