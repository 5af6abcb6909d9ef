// Package fsstore implements objstore.Store over a directory tree.
//
// Each key maps to a file under the root directory; slash-delimited key
// segments become nested directories, created on demand. Writes go to a
// sibling temporary file
//
//	{root}/a/b/.c.txt.tmp-{uuid}
//
// which is renamed over {root}/a/b/c.txt once fully written, so readers
// never observe a partial file.
//
// The filesystem has no compare-and-swap, so every put and delete reads the
// current file, evaluates the condition and only then renames or removes.
// A per-key mutex makes that sequence atomic for all callers of one Store.
// Writers in other processes sharing the same root are not coordinated: the
// condition check and the rename may interleave with theirs.
package fsstore

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const tempMarker = ".tmp-"

// Option configures a Store.
type Option func(*Store)

// WithFs replaces the filesystem, which defaults to the host OS.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// WithLogger sets the logger used for write outcomes.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithPerm sets the mode of created files. Directories additionally get
// the execute bit wherever the read bit is set.
func WithPerm(perm os.FileMode) Option {
	return func(s *Store) {
		s.perm = perm
	}
}

type Store struct {
	fs   afero.Fs
	root string
	perm os.FileMode
	log  logrus.FieldLogger

	locks sync.Map // map[string]*sync.Mutex, one entry per key ever written

	// dirMu keeps pruning of empty directories away from writers that just
	// created them. Writers hold the read side; pruning holds the write side.
	dirMu sync.RWMutex
}

// New creates a Store rooted at root. The directory is created if it does
// not exist.
func New(root string, opts ...Option) (*Store, error) {
	s := &Store{
		fs:   afero.NewOsFs(),
		root: filepath.Clean(root),
		perm: 0o644,
		log:  objstore.NopLogger(),
	}
	for _, apply := range opts {
		apply(s)
	}
	if err := s.fs.MkdirAll(s.root, s.dirPerm()); err != nil {
		return nil, errors.Wrapf(err, "create root %q", s.root)
	}
	return s, nil
}

var _ objstore.Store = (*Store)(nil)

// Root returns the directory holding the store's files.
func (s *Store) Root() string { return s.root }

func (s *Store) Get(_ context.Context, key string) (objstore.Object, bool, error) {
	if err := objstore.ValidateKey(key); err != nil {
		return objstore.Object{}, false, err
	}
	unlock := s.lockKey(key)
	defer unlock()

	cur, err := s.read(key)
	if err != nil {
		return objstore.Object{}, false, classify("get", key, err)
	}
	if cur == nil {
		return objstore.Object{}, false, nil
	}
	return *cur, true, nil
}

func (s *Store) Put(_ context.Context, key string, data []byte, cond objstore.IfMatch) (string, error) {
	if err := s.validate(key); err != nil {
		return "", err
	}

	etag, err := s.write(key, data, cond)
	objstore.LogOutcome(s.log, "put", key, cond, err)
	if err != nil && !objstore.IsConflict(err) {
		// A failed install may leave freshly created, empty parents behind.
		s.prune(filepath.Dir(s.path(key)))
	}
	return etag, err
}

// write installs data at key if cond holds.
func (s *Store) write(key string, data []byte, cond objstore.IfMatch) (string, error) {
	unlock := s.lockKey(key)
	defer unlock()
	if err := s.clearEmptyDir(s.path(key)); err != nil {
		return "", classify("put", key, err)
	}
	s.dirMu.RLock()
	defer s.dirMu.RUnlock()

	cur, err := s.read(key)
	if err != nil {
		return "", classify("put", key, err)
	}
	if !cond.Check(cur) {
		return "", objstore.ErrConflict
	}
	if err := s.install(s.path(key), data); err != nil {
		return "", classify("put", key, err)
	}
	return objstore.ETag(data), nil
}

func (s *Store) Delete(_ context.Context, key string, cond objstore.IfMatch) error {
	if err := s.validate(key); err != nil {
		return err
	}

	removed, err := s.remove(key, cond)
	objstore.LogOutcome(s.log, "delete", key, cond, err)
	if err != nil {
		return err
	}
	if removed {
		s.prune(filepath.Dir(s.path(key)))
	}
	return nil
}

// remove deletes key if cond holds and reports whether a file went away.
func (s *Store) remove(key string, cond objstore.IfMatch) (bool, error) {
	unlock := s.lockKey(key)
	defer unlock()
	s.dirMu.RLock()
	defer s.dirMu.RUnlock()

	cur, err := s.read(key)
	if err != nil {
		return false, classify("delete", key, err)
	}
	if cur == nil {
		if cond.Kind() == objstore.CondMatch {
			return false, objstore.ErrConflict
		}
		return false, nil
	}
	if !cond.Check(cur) {
		return false, objstore.ErrConflict
	}
	if err := s.fs.Remove(s.path(key)); err != nil {
		return false, classify("delete", key, err)
	}
	return true, nil
}

// List walks the deepest directory implied by prefix and yields keys in
// lexical order. No lock is held while the caller consumes keys.
func (s *Store) List(ctx context.Context, prefix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		start := s.root
		if i := strings.LastIndexByte(prefix, '/'); i >= 0 {
			if objstore.ValidateKey(prefix[:i]) != nil {
				// No valid key can start with this prefix.
				return
			}
			start = s.path(prefix[:i])
		}

		err := s.walk(ctx, start, prefix, yield)
		if err != nil && err != errStopWalk {
			kind := objstore.Permanent
			if ctx.Err() != nil {
				kind = objstore.Transient
			}
			yield("", objstore.NewError("list", prefix, kind, err))
		}
	}
}

// walk yields the keys below dir that start with prefix. Entries are
// visited in the order of the keys they hold: directory "a" stands for
// keys "a/...", which sort after "a.txt" and before "a0".
func (s *Store) walk(ctx context.Context, dir, prefix string, yield func(string, error) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		// Directories pruned mid-walk are not errors.
		if isNotExist(err) {
			return nil
		}
		return err
	}
	sort.Slice(infos, func(i, j int) bool { return sortName(infos[i]) < sortName(infos[j]) })

	for _, info := range infos {
		p := filepath.Join(dir, info.Name())
		key := s.key(p)
		if info.IsDir() {
			if !strings.HasPrefix(key+"/", prefix) && !strings.HasPrefix(prefix, key+"/") {
				continue
			}
			if err := s.walk(ctx, p, prefix, yield); err != nil {
				return err
			}
			continue
		}
		if isTempName(info.Name()) || !strings.HasPrefix(key, prefix) {
			continue
		}
		if !yield(key, nil) {
			return errStopWalk
		}
	}
	return nil
}

func sortName(info os.FileInfo) string {
	if info.IsDir() {
		return info.Name() + "/"
	}
	return info.Name()
}

// PurgeTemp removes temporary files older than olderThan, left behind by
// writers that crashed between creating and renaming them. It returns the
// number of files removed.
func (s *Store) PurgeTemp(ctx context.Context, olderThan time.Duration) (int, error) {
	// Writers in this process hold the read side for the whole lifetime of
	// their temp file, so everything seen here belongs to someone else.
	s.dirMu.Lock()
	defer s.dirMu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	err := afero.Walk(s.fs, s.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() || !isTempName(info.Name()) || info.ModTime().After(cutoff) {
			return nil
		}
		if err := s.fs.Remove(p); err != nil && !os.IsNotExist(err) {
			return err
		}
		removed++
		s.log.WithField("path", p).Info("removed stale temp file")
		return nil
	})
	if err != nil {
		return removed, objstore.NewError("purge", "", objstore.Permanent, err)
	}
	return removed, nil
}

var errStopWalk = errors.New("fsstore: stop walk")

func (s *Store) validate(key string) error {
	if err := objstore.ValidateKey(key); err != nil {
		return err
	}
	if isTempName(filepath.Base(filepath.FromSlash(key))) {
		return objstore.NewError("validate", key, objstore.Permanent,
			errors.Wrap(objstore.ErrInvalidKey, "key collides with temporary file names"))
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

func (s *Store) key(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return ""
	}
	return filepath.ToSlash(rel)
}

func (s *Store) dirPerm() os.FileMode {
	return s.perm | (s.perm&0o444)>>2
}

// read returns the current record at key, or nil if there is none. A
// directory at the key's path, or a file where a parent directory would be,
// counts as no record.
func (s *Store) read(key string) (*objstore.Object, error) {
	p := s.path(key)
	info, err := s.fs.Stat(p)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, nil
	}
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return &objstore.Object{
		Key:          key,
		Data:         data,
		ETag:         objstore.ETag(data),
		Size:         int64(len(data)),
		LastModified: info.ModTime(),
	}, nil
}

// install writes data to a temp file next to target and renames it into
// place. The temp file is removed on any failure.
func (s *Store) install(target string, data []byte) error {
	dir := filepath.Dir(target)
	if err := s.fs.MkdirAll(dir, s.dirPerm()); err != nil {
		return errors.Wrap(err, "mkdir")
	}

	tmpName := filepath.Join(dir, "."+filepath.Base(target)+tempMarker+uuid.New().String())
	tmp, err := s.fs.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.perm)
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName) //nolint:errcheck
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName) //nolint:errcheck
		return errors.Wrap(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName) //nolint:errcheck
		return errors.Wrap(err, "close temp file")
	}
	if err := s.fs.Rename(tmpName, target); err != nil {
		s.fs.Remove(tmpName) //nolint:errcheck
		return errors.Wrap(err, "rename temp file")
	}
	return nil
}

// clearEmptyDir removes a directory standing at target if no file lives
// anywhere below it. Such a tree is what a failed or interrupted write leaves
// behind, and it would otherwise block the rename of a record into place.
func (s *Store) clearEmptyDir(target string) error {
	info, err := s.fs.Stat(target)
	if err != nil || !info.IsDir() {
		return nil
	}

	s.dirMu.Lock()
	defer s.dirMu.Unlock()
	hasFiles := false
	err = afero.Walk(s.fs, target, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			if isNotExist(err) {
				return nil
			}
			return err
		}
		if !info.IsDir() {
			hasFiles = true
			return errStopWalk
		}
		return nil
	})
	if err != nil && err != errStopWalk {
		return err
	}
	if hasFiles {
		return nil
	}
	if err := s.fs.RemoveAll(target); err != nil {
		return errors.Wrap(err, "remove empty directory")
	}
	return nil
}

// prune removes dir and its ancestors below the root for as long as they
// are empty. Failures only leave empty directories behind.
func (s *Store) prune(dir string) {
	s.dirMu.Lock()
	defer s.dirMu.Unlock()

	for dir != s.root && strings.HasPrefix(dir, s.root) {
		// A record may stand where a parent directory was wanted.
		if isDir, err := afero.IsDir(s.fs, dir); err != nil || !isDir {
			return
		}
		empty, err := afero.IsEmpty(s.fs, dir)
		if err != nil || !empty {
			return
		}
		if err := s.fs.Remove(dir); err != nil {
			s.log.WithField("dir", dir).WithError(err).Debug("prune stopped")
			return
		}
		dir = filepath.Dir(dir)
	}
}

// lockKey acquires the mutex for key and returns its unlock function. The
// mutex entry is never removed; the overhead per key is a few dozen bytes.
func (s *Store) lockKey(key string) (unlock func()) {
	v, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// isNotExist also treats a file standing where a parent directory should
// be as absence.
func isNotExist(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}

func isTempName(name string) bool {
	i := strings.LastIndex(name, tempMarker)
	if i <= 0 || name[0] != '.' {
		return false
	}
	_, err := uuid.Parse(name[i+len(tempMarker):])
	return err == nil
}

// classify maps a filesystem error onto the backend error kinds. Only
// interruptions and resource exhaustion the OS reports as temporary are
// worth retrying.
func classify(op, key string, err error) error {
	kind := objstore.Permanent
	var errno syscall.Errno
	if errors.As(err, &errno) && (errno.Temporary() || errno == syscall.EBUSY) {
		kind = objstore.Transient
	}
	return objstore.NewError(op, key, kind, err)
}
