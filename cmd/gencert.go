// Handles the "objstore gen-cert" command

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/serverlessresearch/objstore/pkg/objmgr"
	"github.com/spf13/cobra"
)

var genCertCmdConfig struct {
	host     string
	validFor time.Duration
	rsaBits  int
	outDir   string
}

var genCertCmd = &cobra.Command{
	Use:   "gen-cert",
	Short: "Generate a self-signed certificate for serve --tls",
	Long: `Write cert.pem and key.pem to --out-dir. Give cert.pem and key.pem to
"objstore serve --tls" and cert.pem to clients as grpc.ca-file.`,
	Args: cobra.NoArgs,
	// No store is needed to generate a certificate.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRun: func(cmd *cobra.Command, args []string) {},
	RunE: func(cmd *cobra.Command, args []string) error {
		certPath := filepath.Join(genCertCmdConfig.outDir, "cert.pem")
		keyPath := filepath.Join(genCertCmdConfig.outDir, "key.pem")
		err := objmgr.GenerateCertificate(objmgr.CertOptions{
			Hosts:    parseList(genCertCmdConfig.host),
			ValidFor: genCertCmdConfig.validFor,
			RSABits:  genCertCmdConfig.rsaBits,
		}, certPath, keyPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\nwrote %s\n", certPath, keyPath)
		return nil
	},
}

func parseList(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

func init() {
	rootCmd.AddCommand(genCertCmd)
	genCertCmd.Flags().StringVar(&genCertCmdConfig.host, "host", "", "comma-separated hostnames and IPs to generate a certificate for")
	genCertCmd.Flags().DurationVar(&genCertCmdConfig.validFor, "duration", 365*24*time.Hour, "duration that the certificate is valid for")
	genCertCmd.Flags().IntVar(&genCertCmdConfig.rsaBits, "rsa-bits", 2048, "size of RSA key to generate")
	genCertCmd.Flags().StringVar(&genCertCmdConfig.outDir, "out-dir", ".", "directory to write cert.pem and key.pem to")
}
