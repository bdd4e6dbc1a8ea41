package options

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"

	"github.com/djedi/ddf/internal/render"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	// AutoBarWidth sizes the usage bar from the terminal width.
	AutoBarWidth = -1
)

var (
	ColorModes       = []string{ColorAuto, ColorAlways, ColorNever}
	CompletionShells = []string{"bash", "zsh", "fish", "powershell"}
)

// Config holds the command line options of ddf
type Config struct {
	ConfigPath   string   `json:"configPath"`
	Completion   string   `json:"completion,omitempty"`
	ExcludeTypes []string `json:"excludeTypes,omitempty"`
	Local        bool     `json:"local"`
	Inodes       bool     `json:"inodes"`
	PrintType    bool     `json:"printType"`
	Drive        bool     `json:"drive"`
	Output       string   `json:"output"`
	Sort         string   `json:"sort"`
	Reverse      bool     `json:"reverse"`
	Color        string   `json:"color"`
	BarWidth     int      `json:"barWidth"`
	Jobs         int      `json:"jobs"`
}

// NewConfig Create New Config
func NewConfig() *Config {
	return &Config{
		Output:   string(render.FormatTable),
		Sort:     string(render.SortNone),
		Color:    ColorAuto,
		BarWidth: AutoBarWidth,
		Jobs:     1,
	}
}

// AddFlags Add Flags
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "Settings file (default <user config dir>/ddf/settings.toml)")
	fs.StringVar(&c.Completion, "completion", c.Completion, fmt.Sprintf("Print a shell completion script and exit, one of %v", CompletionShells))
	fs.StringSliceVarP(&c.ExcludeTypes, "exclude-type", "x", c.ExcludeTypes, "Hide filesystems of this type, may be repeated")
	fs.BoolVarP(&c.Local, "local", "l", c.Local, "Hide network filesystems")
	fs.BoolVarP(&c.Inodes, "inodes", "i", c.Inodes, "List inode usage instead of block usage")
	fs.BoolVarP(&c.PrintType, "print-type", "T", c.PrintType, "Print the filesystem type")
	fs.BoolVar(&c.Drive, "drive", c.Drive, "Print the drive backing each filesystem")
	fs.StringVarP(&c.Output, "output", "o", c.Output, fmt.Sprintf("Output format, one of %v", render.Formats))
	fs.StringVar(&c.Sort, "sort", c.Sort, fmt.Sprintf("Sort by column, one of %v", render.SortKeys))
	fs.BoolVar(&c.Reverse, "reverse", c.Reverse, "Reverse the sort order")
	fs.StringVar(&c.Color, "color", c.Color, fmt.Sprintf("Colorize the output, one of %v", ColorModes))
	fs.IntVar(&c.BarWidth, "bar-width", c.BarWidth, "Width of the usage bar, 0 hides it, -1 fits it to the terminal")
	fs.IntVarP(&c.Jobs, "jobs", "j", c.Jobs, "Number of filesystems queried concurrently")
}

// Validate checks the values that flags cannot restrict by type.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Output); err != nil {
		return err
	}
	if _, err := render.ParseSortKey(c.Sort); err != nil {
		return err
	}
	if !slices.Contains(ColorModes, c.Color) {
		return fmt.Errorf("unknown color mode %q, expected one of %v", c.Color, ColorModes)
	}
	if c.Completion != "" && !slices.Contains(CompletionShells, c.Completion) {
		return fmt.Errorf("unsupported shell %q, expected one of %v", c.Completion, CompletionShells)
	}
	if c.BarWidth < AutoBarWidth {
		return fmt.Errorf("invalid bar width %d", c.BarWidth)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("invalid number of jobs %d, must be at least 1", c.Jobs)
	}
	return nil
}
