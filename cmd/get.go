// Handles the "objstore get" command

package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var getCmdConfig struct {
	etag bool
}

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Write an object's content to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		obj, found, err := objManager.Store.Get(context.Background(), key)
		if err != nil {
			return errors.Wrap(err, "Get failed")
		}
		if !found {
			return errors.Errorf("%s: not found", key)
		}
		if getCmdConfig.etag {
			fmt.Fprintln(cmd.ErrOrStderr(), obj.ETag)
		}
		_, err = cmd.OutOrStdout().Write(obj.Data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getCmdConfig.etag, "etag", false, "print the object's etag to stderr")
}
