package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-vision/config"
	"github.com/nvr-ai/go-vision/pipeline"
)

// resolveThresholds takes each threshold from the config, which already
// carries any flag override, and prompts for the ones still missing.
func resolveThresholds(cfg config.PipelineConfig, in io.Reader, out io.Writer) (pipeline.Thresholds, error) {
	var th pipeline.Thresholds
	scanner := bufio.NewScanner(in)

	if cfg.BinarizeThreshold != nil {
		th.Binarize = *cfg.BinarizeThreshold
	} else {
		v, err := promptInt(scanner, out, "Enter threshold TB for binarization (e.g. 100): ")
		if err != nil {
			return th, errors.Wrap(err, "binarization threshold")
		}
		th.Binarize = v
	}

	if cfg.EdgeThreshold != nil {
		th.Edge = *cfg.EdgeThreshold
	} else {
		v, err := promptInt(scanner, out, "Enter threshold TE for edge detection (e.g. 15): ")
		if err != nil {
			return th, errors.Wrap(err, "edge threshold")
		}
		th.Edge = v
	}
	return th, nil
}

// promptInt asks until it reads an integer. It fails only when input ends.
func promptInt(scanner *bufio.Scanner, out io.Writer, prompt string) (int, error) {
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, errors.Wrap(err, "failed to read input")
			}
			return 0, errors.New("no value given")
		}
		v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(out, "Not an integer: %q\n", scanner.Text())
	}
}
