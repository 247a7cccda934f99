package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/pass-autotype/internal/output"
	"github.com/mj1618/pass-autotype/internal/platform"
	"github.com/mj1618/pass-autotype/internal/sequence"
	"github.com/spf13/cobra"
)

// selftestLines exercise spaces, shell metacharacters and non-ASCII input.
var selftestLines = []string{
	"Hello world!",
	"Abc&abc",
	"`r}Ltb}¸K4g'Bt*>{v5nk",
}

// SelftestResult is the output of the selftest command.
type SelftestResult struct {
	OK    bool     `yaml:"ok"    json:"ok"`
	Typed []string `yaml:"typed" json:"typed"`
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Type diagnostic strings into the focused window",
	Long: `Type a few fixed strings, each followed by Return, into the focused window
to check that the keystroke backend handles punctuation and non-ASCII text.
Focus a text editor before the --wait delay elapses.`,
	Args: cobra.NoArgs,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
	selftestCmd.Flags().Duration("wait", 2*time.Second, "Pause before typing")
}

func runSelftest(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	wait, _ := cmd.Flags().GetDuration("wait")
	if err := sequence.Sleep(cmd.Context(), wait); err != nil {
		return err
	}
	if err := typeLines(provider.Inputter, selftestLines, cfg.TypeDelay); err != nil {
		return err
	}
	return output.Print(SelftestResult{OK: true, Typed: selftestLines})
}

// typeLines types each line and presses Return after it.
func typeLines(in platform.Inputter, lines []string, delay time.Duration) error {
	for _, line := range lines {
		if err := in.TypeText(line, int(delay/time.Millisecond)); err != nil {
			return fmt.Errorf("type %q: %w", line, err)
		}
		if err := in.KeyCombo([]string{platform.KeyReturn}); err != nil {
			return fmt.Errorf("press %s: %w", platform.KeyReturn, err)
		}
	}
	return nil
}
