package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/config"
)

// writeReports prints reports in the configured format.
func writeReports(w io.Writer, reports []Report, cfg *config.Config) error {
	if cfg.Format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	}

	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n", r.Input)
		}
		fmt.Fprintf(w, "%s steps to reach the anti-point of the loop\n", strconv.FormatFloat(r.AntiPoint, 'f', -1, 64))
		fmt.Fprintf(w, "%d trapped nodes and %d discovered\n", r.Trapped, r.Escaped)
		for _, line := range r.Map {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}
