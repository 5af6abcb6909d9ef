package objstore

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Object is a versioned blob as returned by Store.Get. Callers own the
// returned value; it never aliases backend storage.
type Object struct {
	Key          string
	Data         []byte
	ETag         string
	Size         int64
	LastModified time.Time
}

// ETag returns the version tag of data: the lowercase hex MD5 digest.
func ETag(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// ValidateKey checks that key is usable by every backend. Keys are
// slash-delimited paths without empty, "." or ".." segments.
func ValidateKey(key string) error {
	if key == "" {
		return invalidKey(key, "empty key")
	}
	if strings.IndexByte(key, 0) >= 0 {
		return invalidKey(key, "key contains NUL")
	}
	for _, seg := range strings.Split(key, "/") {
		switch seg {
		case "":
			return invalidKey(key, "key has an empty path segment")
		case ".", "..":
			return invalidKey(key, "key has a relative path segment")
		}
	}
	return nil
}

func invalidKey(key, reason string) error {
	return &Error{Op: "validate", Key: key, Kind: Permanent, Err: errors.Wrap(ErrInvalidKey, reason)}
}
