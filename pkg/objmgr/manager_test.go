package objmgr_test

import (
	"context"
	"io/ioutil"
	"net"
	"path/filepath"
	"testing"

	"github.com/serverlessresearch/objstore/pkg/objmgr"
	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/fsstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/grpcstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/memstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/s3store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(ioutil.Discard)
	return l
}

func newManager(t *testing.T, overrides map[string]interface{}) *objmgr.Manager {
	mgr, err := objmgr.NewManager(map[string]interface{}{
		"logger":    quietLogger(),
		"overrides": overrides,
	})
	require.NoError(t, err)
	t.Cleanup(mgr.Destroy)
	return mgr
}

func TestBackends(t *testing.T) {
	mgr := newManager(t, map[string]interface{}{"backend": "memory"})
	assert.IsType(t, &memstore.Store{}, mgr.Store)

	root := t.TempDir()
	mgr = newManager(t, map[string]interface{}{"backend": "fs", "fs.root": root})
	require.IsType(t, &fsstore.Store{}, mgr.Store)
	assert.Equal(t, root, mgr.Store.(*fsstore.Store).Root())

	mgr = newManager(t, map[string]interface{}{"backend": "s3", "s3.bucket": "b", "s3.endpoint": "http://localhost:9000"})
	assert.IsType(t, &s3store.Store{}, mgr.Store)

	mgr = newManager(t, map[string]interface{}{"backend": "grpc", "grpc.addr": "localhost:1"})
	assert.IsType(t, &grpcstore.Client{}, mgr.Store)
}

func TestBadConfiguration(t *testing.T) {
	cases := map[string]map[string]interface{}{
		"unknown backend":   {"backend": "tape"},
		"s3 without bucket": {"backend": "s3"},
	}
	for name, overrides := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := objmgr.NewManager(map[string]interface{}{"logger": quietLogger(), "overrides": overrides})
			assert.Error(t, err)
		})
	}

	_, err := objmgr.NewManager(map[string]interface{}{"config-file": 42})
	assert.Error(t, err)
	_, err = objmgr.NewManager(map[string]interface{}{"overrides": map[string]interface{}{"backend": "memory", "log.level": "loud"}})
	assert.Error(t, err)
	_, err = objmgr.NewManager(map[string]interface{}{"overrides": map[string]interface{}{"backend": "memory", "log.format": "xml"}})
	assert.Error(t, err)
	_, err = objmgr.NewManager(map[string]interface{}{"config-file": filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestConfigFileAndEnvironment(t *testing.T) {
	t.Setenv("OBJSTORE_S3_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "objstore.yaml")
	require.NoError(t, ioutil.WriteFile(cfgPath, []byte("backend: fs\nfs:\n  root: "+filepath.Join(dir, "from-file")+"\n"), 0o644))

	mgr, err := objmgr.NewManager(map[string]interface{}{"config-file": cfgPath, "logger": quietLogger()})
	require.NoError(t, err)
	defer mgr.Destroy()
	assert.Equal(t, filepath.Join(dir, "from-file"), mgr.Store.(*fsstore.Store).Root())
	assert.Equal(t, "us-west-2", mgr.Cfg.GetString("s3.region"))

	t.Setenv("OBJSTORE_BACKEND", "memory")
	t.Setenv("AWS_DEFAULT_REGION", "eu-central-1")
	mgr, err = objmgr.NewManager(map[string]interface{}{"config-file": cfgPath, "logger": quietLogger()})
	require.NoError(t, err)
	defer mgr.Destroy()
	assert.IsType(t, &memstore.Store{}, mgr.Store)
	assert.Equal(t, "eu-central-1", mgr.Cfg.GetString("s3.region"))
}

func TestServeAndDial(t *testing.T) {
	server := newManager(t, map[string]interface{}{"backend": "memory"})
	gs, err := server.NewServer()
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go gs.Serve(lis)
	defer gs.Stop()

	client := newManager(t, map[string]interface{}{"backend": "grpc", "grpc.addr": lis.Addr().String()})
	ctx := context.Background()

	etag, err := client.Store.Put(ctx, "hello.txt", []byte("hello"), objstore.None())
	require.NoError(t, err)

	obj, found, err := server.Store.Get(ctx, "hello.txt")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, etag, obj.ETag)

	_, err = client.Store.Put(ctx, "hello.txt", []byte("again"), objstore.None())
	assert.ErrorIs(t, err, objstore.ErrConflict)
}

func TestServeTLSNeedsCertificate(t *testing.T) {
	mgr := newManager(t, map[string]interface{}{"backend": "memory", "serve.tls": true})
	_, err := mgr.NewServer()
	assert.Error(t, err)
}

func TestServeAndDialTLS(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	require.NoError(t, objmgr.GenerateCertificate(objmgr.CertOptions{Hosts: []string{"127.0.0.1"}}, certPath, keyPath))

	server := newManager(t, map[string]interface{}{
		"backend":         "memory",
		"serve.tls":       true,
		"serve.cert-file": certPath,
		"serve.key-file":  keyPath,
	})
	gs, err := server.NewServer()
	require.NoError(t, err)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go gs.Serve(lis)
	defer gs.Stop()

	client := newManager(t, map[string]interface{}{
		"backend":      "grpc",
		"grpc.addr":    lis.Addr().String(),
		"grpc.tls":     true,
		"grpc.ca-file": certPath,
	})
	ctx := context.Background()
	_, err = client.Store.Put(ctx, "k", []byte("v"), objstore.Any())
	require.NoError(t, err)
	obj, found, err := client.Store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v", string(obj.Data))
}

func TestGenerateCertificateNeedsHost(t *testing.T) {
	dir := t.TempDir()
	err := objmgr.GenerateCertificate(objmgr.CertOptions{}, filepath.Join(dir, "c"), filepath.Join(dir, "k"))
	assert.Error(t, err)
}
