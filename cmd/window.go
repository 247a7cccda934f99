package cmd

import (
	"fmt"

	"github.com/mj1618/pass-autotype/internal/output"
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Print the focused window",
	Long:  "Print the id and title of the window that currently has input focus.",
	Args:  cobra.NoArgs,
	RunE:  runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	window, err := provider.WindowManager.ActiveWindow()
	if err != nil {
		return fmt.Errorf("query active window: %w", err)
	}
	return output.Print(window)
}
