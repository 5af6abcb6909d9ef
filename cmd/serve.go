// Handles the "objstore serve" command

package cmd

import (
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the configured backend over gRPC",
	Long: `Serve the configured backend to objstore clients (backend "grpc") until
interrupted. In-flight calls are allowed to finish on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gs, err := objManager.NewServer()
		if err != nil {
			return err
		}

		addr := objManager.Cfg.GetString("serve.addr")
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return errors.Wrapf(err, "Failed to listen on %s", addr)
		}

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigs)

		objManager.Logger.WithField("addr", lis.Addr().String()).Info("Serving objstore")
		return serveUntilSignal(objManager.Logger, gs, lis, sigs)
	},
}

type stoppableServer interface {
	Serve(net.Listener) error
	GracefulStop()
}

// serveUntilSignal serves lis until the first signal on sigs. It returns
// only after the signal watcher has exited.
func serveUntilSignal(log logrus.FieldLogger, gs stoppableServer, lis net.Listener, sigs <-chan os.Signal) error {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case sig := <-sigs:
			log.WithField("signal", sig).Info("Shutting down")
			gs.GracefulStop()
		case <-done:
		}
	}()

	err := gs.Serve(lis)
	close(done)
	wg.Wait()
	return err
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "address to listen on (default from serve.addr)")
	serveCmd.Flags().Bool("tls", false, "serve TLS; needs --cert-file and --key-file")
	serveCmd.Flags().String("cert-file", "", "the TLS cert file")
	serveCmd.Flags().String("key-file", "", "the TLS key file")
}
