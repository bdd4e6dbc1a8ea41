package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/djedi/ddf/internal/diskfree"
	"github.com/djedi/ddf/internal/render"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. DDF_THRESHOLD_HIGH.
	EnvPrefix = "DDF"

	FileName = "settings.toml"
	appDir   = "ddf"

	keyExclude         = "exclude"
	keyThresholdMedium = "threshold.medium"
	keyThresholdHigh   = "threshold.high"
)

// ConfigParseError reports a settings file, or override, that cannot be used.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("invalid configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// ExcludeEntry is one element of the exclude array. An entry may carry both
// keys, each becoming its own rule.
type ExcludeEntry struct {
	MountDirStartsWith *string `mapstructure:"mount_dir_starts_with"`
	FsType             *string `mapstructure:"fstype"`
}

type Settings struct {
	// Path is the file the settings were read from, empty when none existed.
	Path    string
	Exclude []ExcludeEntry
	Medium  float64
	High    float64
}

// DefaultPath returns <user config dir>/ddf/settings.toml, or an empty
// string when the platform has no user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		klog.V(4).Infof("No user config directory: %v", err)
		return ""
	}
	return filepath.Join(dir, appDir, FileName)
}

// Load reads the settings file at path from fsys. A missing file yields the
// defaults. Environment variables prefixed with DDF_ override file values.
func Load(fsys afero.Fs, path string) (*Settings, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigType("toml")
	v.SetDefault(keyThresholdMedium, render.DefaultThresholds.Medium)
	v.SetDefault(keyThresholdHigh, render.DefaultThresholds.High)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	s := &Settings{}
	if path != "" {
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return nil, &ConfigParseError{Path: path, Err: err}
		}
		if exists {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, &ConfigParseError{Path: path, Err: err}
			}
			s.Path = path
			klog.V(2).Infof("Loaded settings from %s", path)
		} else {
			klog.V(4).Infof("Settings file %s does not exist, using defaults", path)
		}
	}

	if err := v.UnmarshalKey(keyExclude, &s.Exclude); err != nil {
		return nil, &ConfigParseError{Path: s.Path, Err: fmt.Errorf("exclude: %w", err)}
	}

	var err error
	if s.Medium, err = getFloat(v, keyThresholdMedium); err != nil {
		return nil, &ConfigParseError{Path: s.Path, Err: err}
	}
	if s.High, err = getFloat(v, keyThresholdHigh); err != nil {
		return nil, &ConfigParseError{Path: s.Path, Err: err}
	}

	if err := s.validate(); err != nil {
		return nil, &ConfigParseError{Path: s.Path, Err: err}
	}
	return s, nil
}

func getFloat(v *viper.Viper, key string) (float64, error) {
	raw := v.GetString(key)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, raw)
	}
	return f, nil
}

func (s *Settings) validate() error {
	var errs *multierror.Error
	for i, e := range s.Exclude {
		if e.MountDirStartsWith == nil && e.FsType == nil {
			errs = multierror.Append(errs, fmt.Errorf("exclude[%d]: expected mount_dir_starts_with or fstype", i))
		}
	}
	if s.Medium < 0 || s.Medium > 1 {
		errs = multierror.Append(errs, fmt.Errorf("%s: %v is outside [0, 1]", keyThresholdMedium, s.Medium))
	}
	if s.High < 0 || s.High > 1 {
		errs = multierror.Append(errs, fmt.Errorf("%s: %v is outside [0, 1]", keyThresholdHigh, s.High))
	}
	if s.Medium >= s.High {
		errs = multierror.Append(errs, fmt.Errorf("%s (%v) must be lower than %s (%v)", keyThresholdMedium, s.Medium, keyThresholdHigh, s.High))
	}
	return errs.ErrorOrNil()
}

// Rules converts the exclude entries into exclusion rules, in file order.
func (s *Settings) Rules() []diskfree.ExclusionRule {
	rules := make([]diskfree.ExclusionRule, 0, len(s.Exclude))
	for _, e := range s.Exclude {
		if e.MountDirStartsWith != nil {
			rules = append(rules, diskfree.ExcludeMountPointPrefix(*e.MountDirStartsWith))
		}
		if e.FsType != nil {
			rules = append(rules, diskfree.ExcludeFsType(*e.FsType))
		}
	}
	return rules
}

func (s *Settings) Thresholds() render.Thresholds {
	return render.Thresholds{Medium: s.Medium, High: s.High}
}
