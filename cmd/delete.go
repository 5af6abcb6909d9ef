// Handles the "objstore delete" command

package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var deleteCmdConfig conditionFlags

var deleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "Remove an object",
	Long: `Remove the object stored under KEY. Deleting a missing key succeeds
unless --if-match is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cond, err := deleteCmdConfig.condition()
		if err != nil {
			return err
		}
		if err := objManager.Store.Delete(context.Background(), args[0], cond); err != nil {
			return errors.Wrap(err, "Delete failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmdConfig.register(deleteCmd)
}
