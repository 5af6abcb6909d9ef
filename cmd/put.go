// Handles the "objstore put" command

package cmd

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var putCmdConfig conditionFlags

var putCmd = &cobra.Command{
	Use:   "put KEY [FILE|-]",
	Short: "Store an object and print its etag",
	Long: `Store the content of FILE, or of stdin when FILE is "-" or omitted,
under KEY. With --if-none-match or --if-match the write only happens if the
condition holds; otherwise the command fails and nothing is changed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cond, err := putCmdConfig.condition()
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 1 || args[1] == "-" {
			data, err = ioutil.ReadAll(cmd.InOrStdin())
		} else {
			data, err = ioutil.ReadFile(args[1])
		}
		if err != nil {
			return errors.Wrap(err, "Failed to read content")
		}

		etag, err := objManager.Store.Put(context.Background(), args[0], data, cond)
		if err != nil {
			return errors.Wrap(err, "Put failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), etag)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
	putCmdConfig.register(putCmd)
}
