// Package config loads pass-autotype settings from defaults, an optional
// config file, the environment and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mj1618/pass-autotype/internal/model"
	"github.com/mj1618/pass-autotype/internal/picker"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "pass-autotype"
	// EnvPrefix prefixes every environment override (PASS_AUTOTYPE_SLEEP, ...).
	EnvPrefix = "PASS_AUTOTYPE"
	// StoreDirEnv is pass(1)'s own store location variable.
	StoreDirEnv = "PASSWORD_STORE_DIR"
)

// Config holds every setting of an autotype run.
type Config struct {
	StoreDir      string        `mapstructure:"store_dir"      yaml:"store_dir"      json:"store_dir"`
	Sequence      string        `mapstructure:"sequence"       yaml:"sequence"       json:"sequence"`
	UserField     string        `mapstructure:"user_field"     yaml:"user_field"     json:"user_field"`
	Sleep         time.Duration `mapstructure:"sleep"          yaml:"sleep"          json:"sleep"`
	Backspace     bool          `mapstructure:"backspace"      yaml:"backspace"      json:"backspace"`
	TypeDelay     time.Duration `mapstructure:"type_delay"     yaml:"type_delay"     json:"type_delay"`
	Picker        string        `mapstructure:"picker"         yaml:"picker"         json:"picker"`
	PassCommand   string        `mapstructure:"pass_command"   yaml:"pass_command"   json:"pass_command"`
	ZenityCommand string        `mapstructure:"zenity_command" yaml:"zenity_command" json:"zenity_command"`
	DescriptorExt string        `mapstructure:"descriptor_ext" yaml:"descriptor_ext" json:"descriptor_ext"`
	CredentialExt string        `mapstructure:"credential_ext" yaml:"credential_ext" json:"credential_ext"`
}

// DefaultConfig returns the built-in settings. StoreDir is left empty and
// resolved to ~/.password-store by Load.
func DefaultConfig() Config {
	return Config{
		Sequence:      model.DefaultSequence,
		UserField:     "user",
		Sleep:         100 * time.Millisecond,
		Backspace:     true,
		TypeDelay:     20 * time.Millisecond,
		Picker:        "zenity",
		PassCommand:   "pass",
		ZenityCommand: "zenity",
		DescriptorExt: ".autotype",
		CredentialExt: ".gpg",
	}
}

// keys are the settings that can be overridden by a flag of the same name
// with dashes instead of underscores.
var keys = []string{
	"store_dir",
	"sequence",
	"user_field",
	"sleep",
	"backspace",
	"type_delay",
	"picker",
	"pass_command",
	"zenity_command",
	"descriptor_ext",
	"credential_ext",
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set.
	ConfigFile string
	// ConfigDir overrides the directory searched for config.yaml.
	ConfigDir string
	// Flags are bound by name: the flag "store-dir" sets "store_dir".
	Flags *pflag.FlagSet
}

// Dir returns the configuration directory: $XDG_CONFIG_HOME/pass-autotype,
// falling back to the OS user config directory.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("store_dir", "")
	v.SetDefault("sequence", defaults.Sequence)
	v.SetDefault("user_field", defaults.UserField)
	v.SetDefault("sleep", defaults.Sleep)
	v.SetDefault("backspace", defaults.Backspace)
	v.SetDefault("type_delay", defaults.TypeDelay)
	v.SetDefault("picker", defaults.Picker)
	v.SetDefault("pass_command", defaults.PassCommand)
	v.SetDefault("zenity_command", defaults.ZenityCommand)
	v.SetDefault("descriptor_ext", defaults.DescriptorExt)
	v.SetDefault("credential_ext", defaults.CredentialExt)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("store_dir", EnvPrefix+"_STORE_DIR", StoreDirEnv); err != nil {
		return nil, fmt.Errorf("bind %s: %w", StoreDirEnv, err)
	}

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for _, key := range keys {
			f := opts.Flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", f.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.StoreDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.StoreDir = filepath.Join(home, ".password-store")
	}
	cfg.StoreDir = expandHome(cfg.StoreDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, opts LoadOptions) error {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
		return nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return err
		}
		dir = d
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config in %s: %w", dir, err)
	}
	return nil
}

// Validate rejects settings the run cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Sleep < 0 {
		errs = append(errs, fmt.Errorf("sleep must not be negative, got %s", c.Sleep))
	}
	if c.TypeDelay < 0 {
		errs = append(errs, fmt.Errorf("type_delay must not be negative, got %s", c.TypeDelay))
	}
	if !slices.Contains(picker.Names, c.Picker) {
		errs = append(errs, fmt.Errorf("unknown picker %q (use %s)", c.Picker, strings.Join(picker.Names, " or ")))
	}
	if c.DescriptorExt == "" || c.CredentialExt == "" {
		errs = append(errs, errors.New("descriptor_ext and credential_ext must not be empty"))
	} else if c.DescriptorExt == c.CredentialExt {
		errs = append(errs, errors.New("descriptor_ext and credential_ext must differ"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
