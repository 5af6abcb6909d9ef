// Handles the "objstore list" command

package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [PREFIX]",
	Short: "Print the keys starting with PREFIX, one per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		out := cmd.OutOrStdout()
		for key, err := range objManager.Store.List(context.Background(), prefix) {
			if err != nil {
				return errors.Wrap(err, "List failed")
			}
			fmt.Fprintln(out, key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
