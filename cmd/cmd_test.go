package cmd

import (
	"bytes"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag back to its default; cobra keeps flag state
// between executions of the same command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type cli struct {
	t      *testing.T
	config string
}

func newCLI(t *testing.T) *cli {
	dir := t.TempDir()
	config := filepath.Join(dir, "objstore.yaml")
	content := "backend: fs\nlog:\n  level: error\nfs:\n  root: " + filepath.Join(dir, "data") + "\n"
	require.NoError(t, ioutil.WriteFile(config, []byte(content), 0o644))
	return &cli{t: t, config: config}
}

func (c *cli) run(stdin string, args ...string) (stdout, stderr string, err error) {
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", c.config}, args...))
	_, err = rootCmd.ExecuteC()
	return out.String(), errOut.String(), err
}

func TestPutGetDelete(t *testing.T) {
	c := newCLI(t)

	out, _, err := c.run("hello", "put", "hello.txt", "--if-none-match")
	require.NoError(t, err)
	etag := strings.TrimSpace(out)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", etag)

	_, _, err = c.run("again", "put", "hello.txt", "--if-none-match")
	assert.True(t, objstore.IsConflict(err), "got %v", err)

	out, stderr, err := c.run("", "get", "hello.txt", "--etag")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, etag, strings.TrimSpace(stderr))

	file := filepath.Join(t.TempDir(), "content")
	require.NoError(t, ioutil.WriteFile(file, []byte("hello world"), 0o644))
	_, _, err = c.run("", "put", "hello.txt", file, "--if-match", etag)
	require.NoError(t, err)

	_, _, err = c.run("", "delete", "hello.txt", "--if-match", etag)
	assert.True(t, objstore.IsConflict(err), "stale etag must not delete: %v", err)

	_, _, err = c.run("", "delete", "hello.txt")
	require.NoError(t, err)
	_, _, err = c.run("", "get", "hello.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestList(t *testing.T) {
	c := newCLI(t)
	for _, key := range []string{"a/x", "a/y", "b/z"} {
		_, _, err := c.run(key, "put", key, "-")
		require.NoError(t, err)
	}

	out, _, err := c.run("", "list", "a/")
	require.NoError(t, err)
	assert.Equal(t, "a/x\na/y\n", out)

	out, _, err = c.run("", "list")
	require.NoError(t, err)
	assert.Equal(t, "a/x\na/y\nb/z\n", out)
}

func TestConflictingConditionFlags(t *testing.T) {
	c := newCLI(t)
	_, _, err := c.run("v", "put", "k", "--if-none-match", "--if-match", "abc")
	assert.Error(t, err)
}

func TestPurgeTemp(t *testing.T) {
	c := newCLI(t)
	out, _, err := c.run("", "purge-temp")
	require.NoError(t, err)
	assert.Equal(t, "removed 0 temporary files\n", out)

	_, _, err = c.run("", "purge-temp", "--backend", "memory")
	assert.Error(t, err)
}

func TestGenCert(t *testing.T) {
	c := newCLI(t)
	dir := t.TempDir()
	out, _, err := c.run("", "gen-cert", "--host", "localhost,127.0.0.1", "--out-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "cert.pem"))
	assert.FileExists(t, filepath.Join(dir, "key.pem"))

	_, _, err = c.run("", "gen-cert", "--out-dir", dir)
	assert.Error(t, err, "a host is required")
}

// fakeServer serves until GracefulStop, or fails at once if serveErr is set.
type fakeServer struct {
	serveErr error
	stop     chan struct{}
	stopped  int32
}

func (f *fakeServer) Serve(net.Listener) error {
	if f.serveErr != nil {
		return f.serveErr
	}
	<-f.stop
	return nil
}

func (f *fakeServer) GracefulStop() {
	atomic.AddInt32(&f.stopped, 1)
	close(f.stop)
}

func TestServeStopsOnSignal(t *testing.T) {
	gs := &fakeServer{stop: make(chan struct{})}
	sigs := make(chan os.Signal, 1)
	sigs <- syscall.SIGTERM

	require.NoError(t, serveUntilSignal(quietLogger(), gs, nil, sigs))
	assert.Equal(t, int32(1), atomic.LoadInt32(&gs.stopped))
}

func TestServeErrorReleasesSignalWatcher(t *testing.T) {
	gs := &fakeServer{serveErr: errors.New("listener closed"), stop: make(chan struct{})}
	sigs := make(chan os.Signal, 1)

	errc := make(chan error, 1)
	go func() { errc <- serveUntilSignal(quietLogger(), gs, nil, sigs) }()
	select {
	case err := <-errc:
		assert.EqualError(t, err, "listener closed")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after Serve failed")
	}

	sigs <- syscall.SIGINT
	assert.Equal(t, int32(0), atomic.LoadInt32(&gs.stopped), "no watcher may act on later signals")
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(ioutil.Discard)
	return l
}
