package objstore

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrConflict is returned when a write condition was evaluated and did
	// not hold. The record is unchanged. Retrying with the same condition
	// fails again; re-read and retry with a fresh condition instead.
	ErrConflict = errors.New("objstore: precondition failed")

	// ErrInvalidKey is wrapped by permanent errors for keys that no backend
	// accepts.
	ErrInvalidKey = errors.New("objstore: invalid key")
)

// Kind classifies backend failures by whether a retry can help.
type Kind int

const (
	// Permanent failures must not be retried unchanged.
	Permanent Kind = iota
	// Transient failures (timeouts, throttling, overload) may be retried
	// unchanged.
	Transient
)

func (k Kind) String() string {
	if k == Transient {
		return "transient"
	}
	return "permanent"
}

// Error is a substrate failure reported by a backend.
type Error struct {
	Op   string
	Key  string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("objstore: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("objstore: %s %q: %s: %v", e.Op, e.Key, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err as a backend failure of the given kind. A nil err
// yields nil and an err that already is an *Error is returned unchanged.
func NewError(op, key string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var be *Error
	if errors.As(err, &be) {
		return err
	}
	return &Error{Op: op, Key: key, Kind: kind, Err: err}
}

// IsConflict reports whether err signals a failed write condition.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsTransient reports whether err is a backend failure worth retrying.
func IsTransient(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == Transient
}

// IsPermanent reports whether err is a backend failure that must not be
// retried. Conflicts are neither transient nor permanent.
func IsPermanent(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == Permanent
}

// IsInvalidKey reports whether err was caused by a rejected key.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}
