package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/pass-autotype/internal/model"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and blanks every environment variable
// Load reads. Viper ignores empty variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range keys {
		t.Setenv(EnvPrefix+"_"+strings.ToUpper(key), "")
	}
	t.Setenv(StoreDirEnv, "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".password-store"), cfg.StoreDir)
	assert.Equal(t, model.DefaultSequence, cfg.Sequence)
	assert.Equal(t, "user", cfg.UserField)
	assert.Equal(t, 100*time.Millisecond, cfg.Sleep)
	assert.True(t, cfg.Backspace)
	assert.Equal(t, 20*time.Millisecond, cfg.TypeDelay)
	assert.Equal(t, "zenity", cfg.Picker)
	assert.Equal(t, "pass", cfg.PassCommand)
	assert.Equal(t, ".autotype", cfg.DescriptorExt)
	assert.Equal(t, ".gpg", cfg.CredentialExt)
}

func TestLoad_PasswordStoreDirEnv(t *testing.T) {
	isolate(t)
	t.Setenv(StoreDirEnv, "/srv/store")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/srv/store", cfg.StoreDir)
}

func TestLoad_ConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", AppName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"store_dir: ~/secrets\nsleep: 250ms\nbackspace: false\npicker: terminal\nsequence: \":password |Return\"\n"), 0o600))

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "secrets"), cfg.StoreDir)
	assert.Equal(t, 250*time.Millisecond, cfg.Sleep)
	assert.False(t, cfg.Backspace)
	assert.Equal(t, "terminal", cfg.Picker)
	assert.Equal(t, ":password |Return", cfg.Sequence)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sleep: 1s\ntype_delay: 5ms\nuser_field: login\n"), 0o600))
	t.Setenv("PASS_AUTOTYPE_TYPE_DELAY", "7ms")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Duration("sleep", 100*time.Millisecond, "")
	flags.Duration("type-delay", 20*time.Millisecond, "")
	flags.String("user-field", "user", "")
	require.NoError(t, flags.Parse([]string{"--sleep=2s"}))

	cfg, err := Load(LoadOptions{ConfigFile: path, Flags: flags})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Sleep, "flag beats config file")
	assert.Equal(t, 7*time.Millisecond, cfg.TypeDelay, "env beats config file")
	assert.Equal(t, "login", cfg.UserField, "config file beats unset flag default")
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	isolate(t)
	_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative sleep", func(c *Config) { c.Sleep = -time.Second }},
		{"negative delay", func(c *Config) { c.TypeDelay = -time.Millisecond }},
		{"unknown picker", func(c *Config) { c.Picker = "dmenu" }},
		{"empty extension", func(c *Config) { c.DescriptorExt = "" }},
		{"same extension", func(c *Config) { c.CredentialExt = c.DescriptorExt }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}
