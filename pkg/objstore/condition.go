package objstore

import "fmt"

// ConditionKind selects which precondition an IfMatch expresses.
type ConditionKind int

const (
	// CondAny proceeds unconditionally.
	CondAny ConditionKind = iota
	// CondNone proceeds only if the key has no record.
	CondNone
	// CondMatch proceeds only if the current record has the given etag.
	CondMatch
)

func (k ConditionKind) String() string {
	switch k {
	case CondAny:
		return "any"
	case CondNone:
		return "none"
	case CondMatch:
		return "match"
	default:
		return fmt.Sprintf("ConditionKind(%d)", int(k))
	}
}

// IfMatch is a write precondition. The zero value is Any.
type IfMatch struct {
	kind ConditionKind
	etag string
}

// Any returns a condition that always holds.
func Any() IfMatch { return IfMatch{kind: CondAny} }

// None returns a condition that holds only when the key is absent.
func None() IfMatch { return IfMatch{kind: CondNone} }

// Match returns a condition that holds only when the key's current etag is etag.
func Match(etag string) IfMatch { return IfMatch{kind: CondMatch, etag: etag} }

func (c IfMatch) Kind() ConditionKind { return c.kind }

// ETag returns the expected etag of a Match condition and "" otherwise.
func (c IfMatch) ETag() string { return c.etag }

func (c IfMatch) String() string {
	if c.kind == CondMatch {
		return fmt.Sprintf("match(%s)", c.etag)
	}
	return c.kind.String()
}

// Check reports whether the condition holds against current, the key's
// present record, or nil if the key has none.
func (c IfMatch) Check(current *Object) bool {
	switch c.kind {
	case CondNone:
		return current == nil
	case CondMatch:
		return current != nil && current.ETag == c.etag
	default:
		return true
	}
}
