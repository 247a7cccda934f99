package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pass-autotype/internal/config"
	"github.com/mj1618/pass-autotype/internal/output"
	"github.com/mj1618/pass-autotype/internal/version"
	"github.com/spf13/cobra"
)

var (
	// cfg and logger are set by the root command's PersistentPreRunE.
	cfg    *config.Config
	logger = log.New(os.Stderr)
)

var rootCmd = &cobra.Command{
	Use:   "pass-autotype",
	Short: "Type pass credentials into the focused window",
	Long: `Find the pass entry whose .autotype descriptor matches the title of the
focused window and type its autotype sequence into that window.

When several entries match, a picker asks which one to use.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAutotype,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/pass-autotype/config.yaml)")
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every step to stderr")
	rootCmd.PersistentFlags().String("store-dir", "", "Password store directory (default $PASSWORD_STORE_DIR or ~/.password-store)")

	defaults := config.DefaultConfig()
	rootCmd.PersistentFlags().String("sequence", defaults.Sequence, "Sequence for descriptors without a sequence line")
	rootCmd.Flags().Duration("sleep", defaults.Sleep, "Pause before the first keystroke")
	rootCmd.Flags().Bool("backspace", defaults.Backspace, "Press BackSpace before typing")
	rootCmd.Flags().Duration("type-delay", defaults.TypeDelay, "Pause between typed characters")
	rootCmd.Flags().String("picker", defaults.Picker, "Entry picker: zenity, terminal")
	rootCmd.Flags().Bool("dry-run", false, "Resolve the entry and report it without typing")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(verbose)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f

		configFile, _ := cmd.Flags().GetString("config")
		c, err := config.Load(config.LoadOptions{
			ConfigFile: configFile,
			Flags:      cmd.Flags(),
		})
		if err != nil {
			return err
		}
		cfg = c
		logger.Debug("config", "store", cfg.StoreDir, "picker", cfg.Picker, "sleep", cfg.Sleep, "type_delay", cfg.TypeDelay)
		return nil
	}
}

func runAutotype(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	runner, err := newRunner(cfg, provider, dryRun)
	if err != nil {
		return err
	}

	res, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(res)
}
