// Package loader turns text input into a pipegrid.Grid.
//
// Every line is matched against LinePattern; the matched prefix becomes a
// grid row and lines that do not match (blank lines, comments, headers)
// are skipped. Matching is case-insensitive and rows are upper-cased.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// LinePattern selects grid rows: a leading run of pipe-alphabet characters.
const LinePattern = `(?i)^[-.|JLF7S]+`

var lineRegex = regexp.MustCompile(LinePattern)

// Option configures a load.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger logs skipped lines at debug level. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Filter keeps the matching prefix of every line that matches LinePattern.
func Filter(lines []string, opts ...Option) []string {
	o := buildOptions(opts)
	rows := make([]string, 0, len(lines))
	for i, line := range lines {
		m := lineRegex.FindString(line)
		if m == "" {
			o.logger.Debug("skipping line", zap.Int("line", i+1), zap.String("text", line))
			continue
		}
		rows = append(rows, strings.ToUpper(m))
	}
	return rows
}

// Parse filters lines and builds the grid from the surviving rows.
func Parse(lines []string, opts ...Option) (*pipegrid.Grid, error) {
	return pipegrid.FromLines(Filter(lines, opts...))
}

// Read scans r line by line and builds the grid.
func Read(r io.Reader, opts ...Option) (*pipegrid.Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Parse(lines, opts...)
}

// Load reads the grid from the file at path.
func Load(path string, opts ...Option) (*pipegrid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return g, nil
}
