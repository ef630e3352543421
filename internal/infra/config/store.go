package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"dishmate/internal/domain/model"
)

const EnvPrefix = "DISHMATE"

// Profile holds household defaults that commands fall back to when a flag
// is not given.
type Profile struct {
	WaterHardness   model.WaterHardness   `yaml:"water_hardness" mapstructure:"water_hardness" json:"water_hardness"`
	City            string                `yaml:"city,omitempty" mapstructure:"city" json:"city,omitempty"`
	LoadsPerWeek    int                   `yaml:"loads_per_week" mapstructure:"loads_per_week" json:"loads_per_week"`
	DetergentFormat model.DetergentFormat `yaml:"detergent_format,omitempty" mapstructure:"detergent_format" json:"detergent_format,omitempty"`
	UsagePattern    model.UsagePattern    `yaml:"usage_pattern" mapstructure:"usage_pattern" json:"usage_pattern"`
}

func DefaultProfile() Profile {
	return Profile{
		WaterHardness: model.HardnessUnknown,
		LoadsPerWeek:  5,
		UsagePattern:  model.UsageRegular,
	}
}

// Validate checks every field and reports all problems at once.
func (p Profile) Validate() error {
	var errs []error
	if p.LoadsPerWeek < 0 {
		errs = append(errs, fmt.Errorf("profile.loads_per_week must be >= 0, got %d", p.LoadsPerWeek))
	}
	if p.WaterHardness != "" && !slices.Contains(model.HardnessLevels(), p.WaterHardness) {
		errs = append(errs, fmt.Errorf("profile.water_hardness %q is not one of %v", p.WaterHardness, model.HardnessLevels()))
	}
	if p.DetergentFormat != "" && !slices.Contains(model.DetergentFormats(), p.DetergentFormat) {
		errs = append(errs, fmt.Errorf("profile.detergent_format %q is not one of %v", p.DetergentFormat, model.DetergentFormats()))
	}
	if p.UsagePattern != "" && !slices.Contains(model.UsagePatterns(), p.UsagePattern) {
		errs = append(errs, fmt.Errorf("profile.usage_pattern %q is not one of %v", p.UsagePattern, model.UsagePatterns()))
	}
	return errors.Join(errs...)
}

type Store struct {
	path string
}

// NewStore returns a store for the profile under the user's config
// directory.
func NewStore() (Store, error) {
	path, err := profilePath()
	if err != nil {
		return Store{}, err
	}
	return Store{path: path}, nil
}

func NewStoreAt(path string) Store { return Store{path: path} }

func (s Store) Path() string { return s.path }

// Load reads the profile file, applying DISHMATE_* environment overrides on
// top. A missing file yields the defaults.
func (s Store) Load(ctx context.Context) (Profile, error) {
	_ = ctx
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultProfile()
	v.SetDefault("water_hardness", string(def.WaterHardness))
	v.SetDefault("city", def.City)
	v.SetDefault("loads_per_week", def.LoadsPerWeek)
	v.SetDefault("detergent_format", string(def.DetergentFormat))
	v.SetDefault("usage_pattern", string(def.UsagePattern))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Profile{}, fmt.Errorf("read profile %s: %w", s.path, err)
		}
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", s.path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Save writes the profile as YAML, creating the directory if needed.
func (s Store) Save(ctx context.Context, p Profile) error {
	_ = ctx
	if err := p.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

// Exists reports whether a profile file has been written.
func (s Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Dir is the dishmate directory under XDG_CONFIG_HOME, or ~/.config when
// that is unset.
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dishmate"), nil
}

func profilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profile.yaml"), nil
}
