package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/circuit"
	"github.com/katalvlaran/pipeloop/config"
	"github.com/katalvlaran/pipeloop/containment"
	"github.com/katalvlaran/pipeloop/loader"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// stdinName selects standard input as a source.
const stdinName = "-"

// Report is the analysis of one input.
type Report struct {
	Input     string   `yaml:"input"`
	Length    int      `yaml:"length"`
	AntiPoint float64  `yaml:"anti_point"`
	Trapped   int      `yaml:"trapped"`
	Escaped   int      `yaml:"escaped"`
	Map       []string `yaml:"map,omitempty"`
	Warnings  []string `yaml:"warnings,omitempty"`
}

// analyzeAll runs every input concurrently, one goroutine each, and returns
// the reports in input order. The first failure cancels the rest and no
// reports are returned.
func analyzeAll(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reports := make([]Report, len(cfg.Inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, input := range cfg.Inputs {
		eg.Go(func() error {
			r, err := analyzeInput(egCtx, input, cfg, logger.With(zap.String("input", input)))
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// analyzeInput loads one field, traces its loop and classifies the rest.
func analyzeInput(ctx context.Context, input string, cfg *config.Config, logger *zap.Logger) (Report, error) {
	rep := Report{Input: input}

	g, err := load(input, logger)
	if err != nil {
		return rep, err
	}
	start, err := g.FindStart()
	if err != nil {
		return rep, err
	}
	logger.Debug("start found", zap.Stringer("pos", start))

	var traceOpts []circuit.Option
	traceOpts = append(traceOpts, circuit.WithLogger(logger))
	if cfg.Reverse {
		traceOpts = append(traceOpts, circuit.WithReversed())
	}
	loop, err := circuit.Trace(g, start, traceOpts...)
	if err != nil {
		return rep, err
	}
	rep.Length = loop.Len()

	rep.AntiPoint, err = loop.AntiPoint()
	if errors.Is(err, circuit.ErrMalformedLoop) {
		logger.Warn("odd loop length", zap.Int("length", loop.Len()), zap.Error(err))
		rep.Warnings = append(rep.Warnings, err.Error())
	}

	c, err := containment.New(g, loop,
		containment.WithContext(ctx),
		containment.WithLogger(logger))
	if err != nil {
		return rep, err
	}
	res, err := c.Run()
	if err != nil {
		return rep, err
	}
	rep.Trapped, rep.Escaped = res.Trapped, res.Escaped
	if cfg.Mode == config.ModeMap {
		rep.Map = c.Overlay()
	}

	logger.Debug("classified",
		zap.Int("trapped", res.Trapped),
		zap.Int("escaped", res.Escaped),
		zap.Int("attempts", c.Attempts()))
	return rep, nil
}

func load(input string, logger *zap.Logger) (*pipegrid.Grid, error) {
	if input == stdinName {
		return loader.Read(os.Stdin, loader.WithLogger(logger))
	}
	return loader.Load(input, loader.WithLogger(logger))
}
