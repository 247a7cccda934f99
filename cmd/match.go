package cmd

import (
	"fmt"

	"github.com/mj1618/pass-autotype/internal/match"
	"github.com/mj1618/pass-autotype/internal/model"
	"github.com/mj1618/pass-autotype/internal/output"
	"github.com/spf13/cobra"
)

// MatchResult is the output of the match command.
type MatchResult struct {
	Title   string              `yaml:"title"            json:"title"`
	Window  *model.Window       `yaml:"window,omitempty" json:"window,omitempty"`
	Matched []*model.Descriptor `yaml:"matched"          json:"matched"`
}

var matchCmd = &cobra.Command{
	Use:   "match [title]",
	Short: "Show the descriptors matching a window title",
	Long: `Match the store's descriptors against a window title and print those that
match. Without a title the focused window is used. Nothing is decrypted or typed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	res := MatchResult{}
	if len(args) == 1 {
		res.Title = args[0]
	} else {
		provider, err := newProvider()
		if err != nil {
			return err
		}
		window, err := provider.WindowManager.ActiveWindow()
		if err != nil {
			return fmt.Errorf("query active window: %w", err)
		}
		res.Title = window.Title
		res.Window = &window
	}

	descriptors, err := newScanner(cfg).Scan()
	if err != nil {
		return err
	}
	res.Matched = match.Filter(descriptors, res.Title)
	if res.Matched == nil {
		res.Matched = []*model.Descriptor{}
	}
	return output.Print(res)
}
