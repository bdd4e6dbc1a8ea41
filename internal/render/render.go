package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/djedi/ddf/internal/diskfree"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable      Format = "table"
	FormatJSON       Format = "json"
	FormatPrometheus Format = "prometheus"
)

var Formats = []Format{FormatTable, FormatJSON, FormatPrometheus}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if slices.Contains(Formats, f) {
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q, expected one of %v", s, Formats)
}

// DefaultBarWidth is used when the terminal width is unknown.
const DefaultBarWidth = 20

type Options struct {
	Format     Format
	Thresholds Thresholds
	// Color enables ANSI colors in the table.
	Color bool
	// BarWidth is the number of cells of the usage bar; 0 hides the bar.
	BarWidth  int
	Inodes    bool
	PrintType bool
	Drive     bool
}

// Renderer writes a finished listing. It never reorders or filters records.
type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatTable
	}
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds
	}
	return &Renderer{opts: opts}
}

func (r *Renderer) Render(w io.Writer, records []diskfree.Filesystem) error {
	switch r.opts.Format {
	case FormatTable:
		return r.renderTable(w, records)
	case FormatJSON:
		return renderJSON(w, records)
	case FormatPrometheus:
		return renderPrometheus(w, records)
	default:
		return fmt.Errorf("unknown output format %q", r.opts.Format)
	}
}
