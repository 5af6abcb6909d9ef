package cmd

import (
	"github.com/pkg/errors"
	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/spf13/cobra"
)

// Write condition flags shared by put and delete.
type conditionFlags struct {
	ifNoneMatch bool
	ifMatch     string
}

func (c *conditionFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&c.ifNoneMatch, "if-none-match", false, "only write if the key does not exist")
	cmd.Flags().StringVar(&c.ifMatch, "if-match", "", "only write if the current etag equals `ETAG`")
}

func (c *conditionFlags) condition() (objstore.IfMatch, error) {
	switch {
	case c.ifNoneMatch && c.ifMatch != "":
		return objstore.IfMatch{}, errors.New("--if-none-match and --if-match are mutually exclusive")
	case c.ifNoneMatch:
		return objstore.None(), nil
	case c.ifMatch != "":
		return objstore.Match(c.ifMatch), nil
	default:
		return objstore.Any(), nil
	}
}
