// Root of command-line argument parsing.
// This file was based off the standard cobra template, see
// https://github.com/spf13/cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/serverlessresearch/objstore/pkg/objmgr"
	"github.com/spf13/cobra"
)

var cfgFile string

var objManager *objmgr.Manager

// Command-line flags that override a configuration key when given.
var flagKeys = map[string]string{
	"backend":   "backend",
	"log-level": "log.level",
	"addr":      "serve.addr",
	"tls":       "serve.tls",
	"cert-file": "serve.cert-file",
	"key-file":  "serve.key-file",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "objstore",
	Short: "Key/value object store with conditional writes",
	Long: `Read, write and list objects in the configured backend (memory,
filesystem, S3 or a remote objstore server), or serve a backend over gRPC.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mgrArgs := map[string]interface{}{}
		if cfgFile != "" {
			mgrArgs["config-file"] = cfgFile
		}

		overrides := map[string]interface{}{}
		for flag, key := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
				overrides[key] = f.Value.String()
			}
		}
		mgrArgs["overrides"] = overrides

		var err error
		objManager, err = objmgr.NewManager(mgrArgs)
		if err != nil {
			return fmt.Errorf("Failed to initialize objstore manager: %v", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		objManager.Destroy()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if objManager == nil || objManager.Logger == nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			objManager.Logger.Error(err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configs/objstore.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "backend to use: memory, fs, s3 or grpc")
	rootCmd.PersistentFlags().String("log-level", "", "log level, e.g. debug or warn")
}
