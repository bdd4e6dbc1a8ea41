package cmds

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/djedi/ddf/cmds/options"
	"github.com/djedi/ddf/internal/diskfree"
	"github.com/djedi/ddf/internal/render"
	"github.com/djedi/ddf/internal/settings"
	devicemanager "github.com/djedi/ddf/pkg/device-manager"
	"github.com/djedi/ddf/pkg/filesystem"
	filesystemstats "github.com/djedi/ddf/pkg/filesystem-stats"
	"github.com/djedi/ddf/pkg/hwinfo"
	"github.com/djedi/ddf/pkg/logger"
	"github.com/djedi/ddf/pkg/metrics"
	mountmanager "github.com/djedi/ddf/pkg/mount-manager"
)

// ErrPathsNotFound is returned after the listing was printed when at least
// one requested path did not resolve to a filesystem. Each path has already
// been reported on stderr.
var ErrPathsNotFound = errors.New("some requested paths were not found")

// dependencies are the system facing parts of the command.
type dependencies struct {
	lister       mountmanager.Lister
	reader       filesystemstats.Reader
	fs           filesystem.FileSystem
	settingsFs   afero.Fs
	hardware     hwinfo.HardwareInfo
	colorAuto    func() bool
	barWidthAuto func() int
}

func defaultDependencies() dependencies {
	return dependencies{
		lister:       mountmanager.NewLister(),
		reader:       filesystemstats.NewReader(),
		fs:           filesystem.NewFileSystem(),
		settingsFs:   afero.NewOsFs(),
		hardware:     hwinfo.NewHardwareInfo(),
		colorAuto:    func() bool { return render.ColorEnabled(os.Stdout) },
		barWidthAuto: func() int { return render.AutoBarWidth(os.Stdout) },
	}
}

// NewRootCmd func
func NewRootCmd(version string, cfg *options.Config) *cobra.Command {
	return newRootCmd(version, cfg, defaultDependencies())
}

func newRootCmd(version string, cfg *options.Config, deps dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ddf [flags] [FILE|DEVICE|MOUNTPOINT...]",
		Short: "Show disk usage of mounted filesystems",
		Long: `ddf lists mounted filesystems with their size, usage and a usage bar.

With arguments, only the filesystems holding the given files, mounted from the
given devices or mounted on the given directories are shown, regardless of the
exclusion rules. Devices are matched only for absolute names such as /dev/sda1
and for remote sources such as host:/export; a bare name like "tmpfs" is a path
relative to the working directory.`,
		Version:           version,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, cfg, deps, args)
		},
	}
	cfg.AddFlags(rootCmd.Flags())
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	// ref: https://github.com/kubernetes/kubernetes/issues/17162#issuecomment-225596212
	_ = flag.CommandLine.Parse([]string{})

	_ = rootCmd.RegisterFlagCompletionFunc("output", fixedCompletion(render.Formats))
	_ = rootCmd.RegisterFlagCompletionFunc("sort", fixedCompletion(render.SortKeys))
	_ = rootCmd.RegisterFlagCompletionFunc("color", fixedCompletion(options.ColorModes))
	_ = rootCmd.RegisterFlagCompletionFunc("completion", fixedCompletion(options.CompletionShells))

	return rootCmd
}

func fixedCompletion[T ~string](values []T) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, len(values))
		for _, v := range values {
			out = append(out, string(v))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
}

func run(ctx context.Context, cmd *cobra.Command, cfg *options.Config, deps dependencies, args []string) error {
	log, ctx, done := logger.GetLogger(ctx).WithMethod(ctx, "ddf")
	defer done()
	log.V(5).Info("Options", "config", metrics.SerializeRequest(cfg))

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Completion != "" {
		return genCompletion(cmd.Root(), cfg.Completion, cmd.OutOrStdout())
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = settings.DefaultPath()
	}
	s, err := settings.Load(deps.settingsFs, configPath)
	if err != nil {
		return err
	}

	rules := s.Rules()
	for _, fsType := range cfg.ExcludeTypes {
		rules = append(rules, diskfree.ExcludeFsType(fsType))
	}
	log.V(4).Info("Exclusion rules", "rules", fmt.Sprint(rules))

	opts := diskfree.Options{LocalOnly: cfg.Local, Workers: cfg.Jobs}
	if cfg.Drive {
		index, err := hwinfo.NewDriveIndex(deps.hardware)
		if err != nil {
			log.Error(err, "Drive details unavailable")
		} else {
			opts.Annotator = diskfree.NewDriveAnnotator(devicemanager.NewDeviceUtils(deps.fs), index)
		}
	}

	records, err := diskfree.Collect(ctx, deps.lister, deps.reader, deps.fs, args, rules, opts)
	var notFound *multierror.Error
	if err != nil && !errors.As(err, &notFound) {
		return err
	}

	// Validate accepted both values.
	format, _ := render.ParseFormat(cfg.Output)
	sortKey, _ := render.ParseSortKey(cfg.Sort)

	barWidth := cfg.BarWidth
	if barWidth == options.AutoBarWidth {
		barWidth = deps.barWidthAuto()
	}

	renderer := render.New(render.Options{
		Format:     format,
		Thresholds: s.Thresholds(),
		Color:      colorEnabled(cfg.Color, deps.colorAuto),
		BarWidth:   barWidth,
		Inodes:     cfg.Inodes,
		PrintType:  cfg.PrintType,
		Drive:      cfg.Drive,
	})
	if err := renderer.Render(cmd.OutOrStdout(), render.Sort(records, sortKey, cfg.Reverse)); err != nil {
		return err
	}

	if notFound != nil {
		for _, e := range notFound.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "ddf: %v\n", e)
		}
		return ErrPathsNotFound
	}
	return nil
}

func colorEnabled(mode string, auto func() bool) bool {
	switch mode {
	case options.ColorAlways:
		return true
	case options.ColorNever:
		return false
	default:
		return auto()
	}
}
