package objstore

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// NopLogger returns a logger that discards everything. Backends use it
// when the caller supplies none.
func NopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

// LogOutcome records the result of a write. Conflicts are expected and go
// to debug; backend failures are warnings.
func LogOutcome(log logrus.FieldLogger, op, key string, cond IfMatch, err error) {
	if err == nil {
		return
	}
	entry := log.WithFields(logrus.Fields{"op": op, "key": key, "cond": cond.String()})
	if IsConflict(err) {
		entry.Debug("precondition not met")
		return
	}
	kind := Permanent
	if IsTransient(err) {
		kind = Transient
	}
	entry.WithField("kind", kind.String()).WithError(err).Warn("backend failure")
}
