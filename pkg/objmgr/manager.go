// Package objmgr builds a ready-to-use Store, and the logger around it,
// from layered configuration: defaults, an optional config file,
// OBJSTORE_* environment variables and caller overrides.
package objmgr

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/fsstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/grpcstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/memstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/s3store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

type Manager struct {
	Store  objstore.Store
	Logger logrus.FieldLogger
	Cfg    *viper.Viper

	conn *grpc.ClientConn
}

// NewManager recognizes the options "config-file" (string), "logger"
// (logrus.FieldLogger) and "overrides" (map[string]interface{} of config
// keys taking precedence over everything else).
func NewManager(userCfg map[string]interface{}) (*Manager, error) {
	var err error
	mgr := &Manager{}

	if cfgPathRaw, ok := userCfg["config-file"]; ok {
		if cfgPath, ok := cfgPathRaw.(string); ok {
			err = mgr.initConfig(&cfgPath)
		} else {
			return nil, errors.New("option 'config-file' must be of type string")
		}
	} else {
		err = mgr.initConfig(nil)
	}
	if err != nil {
		return nil, err
	}

	if overridesRaw, ok := userCfg["overrides"]; ok {
		overrides, ok := overridesRaw.(map[string]interface{})
		if !ok {
			return nil, errors.New("option 'overrides' must be of type map[string]interface{}")
		}
		for k, v := range overrides {
			mgr.Cfg.Set(k, v)
		}
	}

	if loggerRaw, ok := userCfg["logger"]; ok {
		if logger, ok := loggerRaw.(logrus.FieldLogger); ok {
			mgr.Logger = logger
		} else {
			return nil, errors.New("option 'logger' must satisfy logrus.FieldLogger")
		}
	} else {
		mgr.Logger, err = mgr.newLogger()
		if err != nil {
			return nil, err
		}
	}

	if err := mgr.initStore(); err != nil {
		return nil, err
	}
	return mgr, nil
}

// Destroy releases the connection held by a grpc backend.
func (self *Manager) Destroy() {
	if self.conn != nil {
		self.conn.Close()
		self.conn = nil
	}
}

func (self *Manager) initConfig(cfgPath *string) error {
	// Private viper context so as not to conflict with the importer's usage.
	self.Cfg = viper.New()

	self.Cfg.SetDefault("backend", "fs")
	self.Cfg.SetDefault("fs.root", "./data")
	self.Cfg.SetDefault("s3.force-path-style", false)
	self.Cfg.SetDefault("grpc.addr", "localhost:10000")
	self.Cfg.SetDefault("grpc.tls", false)
	self.Cfg.SetDefault("serve.addr", "localhost:10000")
	self.Cfg.SetDefault("serve.tls", false)
	self.Cfg.SetDefault("serve.max-msg-size", 1024*1024*1024)
	self.Cfg.SetDefault("log.level", "info")
	self.Cfg.SetDefault("log.format", "text")

	self.Cfg.SetEnvPrefix("objstore")
	self.Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	self.Cfg.AutomaticEnv()

	// Order of precedence: OBJSTORE_S3_REGION, AWS_DEFAULT_REGION, config, "us-west-2"
	self.Cfg.SetDefault("s3.region", "us-west-2")
	self.Cfg.BindEnv("s3.region", "OBJSTORE_S3_REGION", "AWS_DEFAULT_REGION")

	if cfgPath != nil {
		self.Cfg.SetConfigFile(*cfgPath)
		if err := self.Cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "Failed to load config")
		}
		return nil
	}

	// default search path is ./configs/objstore.* then ~/.objstore/objstore.*
	self.Cfg.SetConfigName("objstore")
	self.Cfg.AddConfigPath("./configs")
	if home, err := homedir.Dir(); err == nil {
		self.Cfg.AddConfigPath(filepath.Join(home, ".objstore"))
	}
	if err := self.Cfg.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "Failed to load config")
		}
	}
	return nil
}

func (self *Manager) newLogger() (logrus.FieldLogger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(self.Cfg.GetString("log.level"))
	if err != nil {
		return nil, errors.Wrap(err, "Invalid log.level")
	}
	logger.SetLevel(level)

	switch format := self.Cfg.GetString("log.format"); format {
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("Unrecognized log.format %q", format)
	}
	return logger, nil
}

func (self *Manager) initStore() error {
	backend := self.Cfg.GetString("backend")
	log := self.Logger.WithField("module", "store."+backend)

	var err error
	switch backend {
	case "memory":
		self.Store = memstore.New(memstore.WithLogger(log))
	case "fs":
		var root string
		root, err = homedir.Expand(self.Cfg.GetString("fs.root"))
		if err != nil {
			return errors.Wrap(err, "Failed to resolve fs.root")
		}
		self.Store, err = fsstore.New(root, fsstore.WithLogger(log))
	case "s3":
		self.Store, err = self.newS3Store(log)
	case "grpc":
		self.Store, err = self.newGRPCStore(log)
	default:
		return errors.New("Unrecognized backend: " + backend)
	}
	if err != nil {
		return errors.Wrap(err, "Failed to initialize backend "+backend)
	}
	return nil
}

func (self *Manager) newS3Store(log logrus.FieldLogger) (objstore.Store, error) {
	bucket := self.Cfg.GetString("s3.bucket")
	if bucket == "" {
		return nil, errors.New("s3.bucket is not set")
	}

	awsCfg := &aws.Config{
		Region:           aws.String(self.Cfg.GetString("s3.region")),
		S3ForcePathStyle: aws.Bool(self.Cfg.GetBool("s3.force-path-style")),
	}
	if endpoint := self.Cfg.GetString("s3.endpoint"); endpoint != "" {
		awsCfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create AWS session")
	}
	return s3store.New(s3.New(sess), bucket, s3store.WithLogger(log)), nil
}

func (self *Manager) newGRPCStore(log logrus.FieldLogger) (objstore.Store, error) {
	maxMsgSize := self.Cfg.GetInt("serve.max-msg-size")
	opts := []grpc.DialOption{
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMsgSize),
			grpc.MaxCallSendMsgSize(maxMsgSize)),
	}
	if self.Cfg.GetBool("grpc.tls") {
		var creds credentials.TransportCredentials
		if caFile := self.Cfg.GetString("grpc.ca-file"); caFile != "" {
			var err error
			creds, err = credentials.NewClientTLSFromFile(caFile, "")
			if err != nil {
				return nil, errors.Wrap(err, "Failed to load grpc.ca-file")
			}
		} else {
			creds = credentials.NewTLS(&tls.Config{})
		}
		opts = append(opts, grpc.WithTransportCredentials(creds))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	addr := self.Cfg.GetString("grpc.addr")
	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to dial %s", addr)
	}
	self.conn = conn
	return grpcstore.NewClient(conn, log), nil
}
