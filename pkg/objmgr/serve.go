package objmgr

import (
	"github.com/pkg/errors"
	"github.com/serverlessresearch/objstore/pkg/objstore/grpcstore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// NewServer returns a gRPC server exposing the manager's Store, configured
// from the serve.* keys. The caller owns listening and stopping.
func (self *Manager) NewServer() (*grpc.Server, error) {
	var opts []grpc.ServerOption
	if self.Cfg.GetBool("serve.tls") {
		certFile := self.Cfg.GetString("serve.cert-file")
		keyFile := self.Cfg.GetString("serve.key-file")
		if certFile == "" || keyFile == "" {
			return nil, errors.New("serve.tls requires serve.cert-file and serve.key-file")
		}
		creds, err := credentials.NewServerTLSFromFile(certFile, keyFile)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to generate credentials")
		}
		opts = append(opts, grpc.Creds(creds))
	}
	maxMsgSize := self.Cfg.GetInt("serve.max-msg-size")
	opts = append(opts, grpc.MaxRecvMsgSize(maxMsgSize), grpc.MaxSendMsgSize(maxMsgSize))

	gs := grpc.NewServer(opts...)
	grpcstore.NewServer(self.Store, self.Logger.WithField("module", "grpc")).Register(gs)
	return gs, nil
}
