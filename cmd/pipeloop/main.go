// Command pipeloop measures the closed pipe loop in one or more text fields
// and counts the ground cells it encloses.
//
//	pipeloop -i field.txt
//	pipeloop --mode map --format yaml a.txt b.txt
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pipeloop/config"
)

// rootOptions collects flag values and the state built from them.
type rootOptions struct {
	configPath string
	inputs     []string
	mode       string
	format     string
	debug      bool
	reverse    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{})
}

// newRootCmdWith builds the command around o. A logger already set on o is
// used as is.
func newRootCmdWith(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeloop [files...]",
		Short: "Find the anti-point of a pipe loop and the ground it encloses",
		Long: `pipeloop reads a field of pipes ('-', '|', 'L', 'J', '7', 'F'), ground ('.')
and a single start marker ('S'). Lines that are not part of the field are skipped.

For each field it traces the loop through the start, reports how many steps
away its farthest cell is, and counts the ground cells the loop encloses.
Ground squeezed between two parallel pipes is not enclosed.

Inputs may be given with -i (repeatable) or as arguments; '-' reads stdin.
Several inputs are analysed concurrently and reported in argument order.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd, args)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	cmd.Flags().StringArrayVarP(&o.inputs, "input", "i", nil, "input file to analyse (repeatable, '-' for stdin)")
	cmd.Flags().StringVar(&o.mode, "mode", config.ModeCounter, "mode of operation: counter or map")
	cmd.Flags().StringVar(&o.format, "format", config.FormatText, "output format: text or yaml")
	cmd.Flags().BoolVar(&o.reverse, "reverse", false, "trace the loop in the opposite sense")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "YAML configuration file")
	return cmd
}

// setup loads configuration, applies flags over it and builds the logger.
func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = o.mode
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("reverse") {
		cfg.Reverse = o.reverse
	}
	if flags.Changed("debug") {
		cfg.Logging.Debug = o.debug
	}
	if inputs := append(append([]string{}, o.inputs...), args...); len(inputs) > 0 {
		cfg.Inputs = inputs
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("no input given: use --input or pass files as arguments")
	}
	o.cfg = cfg

	if o.logger != nil {
		return nil
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = cfg.Logging.Encoding
	if cfg.Logging.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	o.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	o.logger.Debug("analysing", zap.Strings("inputs", o.cfg.Inputs), zap.String("mode", o.cfg.Mode))
	reports, err := analyzeAll(cmd.Context(), o.cfg, o.logger)
	if err != nil {
		return err
	}
	return writeReports(cmd.OutOrStdout(), reports, o.cfg)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pipeloop:", err)
		os.Exit(1)
	}
}
