// Handles the "objstore purge-temp" command

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/serverlessresearch/objstore/pkg/objstore/fsstore"
	"github.com/spf13/cobra"
)

var purgeCmdConfig struct {
	olderThan time.Duration
}

var purgeCmd = &cobra.Command{
	Use:   "purge-temp",
	Short: "Remove temporary files left by interrupted writes",
	Long: `Remove temporary files that a crashed or killed writer left behind in
a filesystem backend. Only files older than --older-than are touched, so
writes in progress are not disturbed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, ok := objManager.Store.(*fsstore.Store)
		if !ok {
			return errors.New("purge-temp needs the fs backend")
		}
		n, err := store.PurgeTemp(context.Background(), purgeCmdConfig.olderThan)
		if err != nil {
			return errors.Wrap(err, "Purge failed")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d temporary files\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().DurationVar(&purgeCmdConfig.olderThan, "older-than", time.Hour, "minimum age of files to remove")
}
