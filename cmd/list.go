package cmd

import (
	"sort"

	"github.com/mj1618/pass-autotype/internal/model"
	"github.com/mj1618/pass-autotype/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the autotype descriptors of the store",
	Long:  "Scan the password store and print every descriptor with its patterns and sequence. Nothing is decrypted.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runList(cmd *cobra.Command, args []string) error {
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		output.PrettyOutput = true
	}

	descriptors, err := newScanner(cfg).Scan()
	if err != nil {
		return err
	}
	return output.Print(sortedDescriptors(descriptors))
}

// sortedDescriptors flattens the scan result in path order.
func sortedDescriptors(descriptors map[string]*model.Descriptor) []*model.Descriptor {
	list := make([]*model.Descriptor, 0, len(descriptors))
	for _, desc := range descriptors {
		list = append(list, desc)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Path < list[j].Path })
	return list
}
