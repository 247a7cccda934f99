package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/pass-autotype/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of c and its subcommands to its default so
// that tests sharing rootCmd do not leak flag values into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs rootCmd with args against an isolated config
// directory and returns what was printed.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	oldOut, oldFormat, oldPretty := output.Out, output.OutputFormat, output.PrettyOutput
	output.Out = &buf
	t.Cleanup(func() {
		output.Out, output.OutputFormat, output.PrettyOutput = oldOut, oldFormat, oldPretty
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// newStore creates a password store with a GitHub and a mail entry and
// points PASSWORD_STORE_DIR at it.
func newStore(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"github.gpg":         "x",
		"github.autotype":    "GitHub\nSign in\n",
		"mail/work.gpg":      "x",
		"mail/work.autotype": "Inbox\n:password |Return\n",
		"orphan.autotype":    "Orphan\n",
		"notes/plain.gpg":    "x",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PASSWORD_STORE_DIR", root)
	return root
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"list", "match", "window", "selftest"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name       string
		flagType   string
		persistent bool
	}{
		{"config", "string", true},
		{"format", "string", true},
		{"verbose", "bool", true},
		{"store-dir", "string", true},
		{"sequence", "string", true},
		{"sleep", "duration", false},
		{"backspace", "bool", false},
		{"type-delay", "duration", false},
		{"picker", "string", false},
		{"dry-run", "bool", false},
	}

	for _, tt := range tests {
		flags := rootCmd.Flags()
		if tt.persistent {
			flags = rootCmd.PersistentFlags()
		}
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	newStore(t)
	_, err := executeCommand(t, "list", "--format", "agent")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestRootCommand_RejectsInvalidConfig(t *testing.T) {
	newStore(t)
	_, err := executeCommand(t, "--picker", "rofi", "--dry-run")
	if err == nil || !strings.Contains(err.Error(), "unknown picker") {
		t.Fatalf("expected unknown picker error, got %v", err)
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	newStore(t)
	if _, err := executeCommand(t, "bogus"); err == nil {
		t.Fatal("expected error for unexpected argument")
	}
}
