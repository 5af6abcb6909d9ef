/*

The objstore package defines a simple and standardized way of reading and writing byte blobs by key with optimistic
concurrency control, regardless of whether the blobs live in process memory, on a local filesystem, or in cloud object
storage such as AWS S3.
Every backend implements the same Store interface, so code written against one backend runs unchanged against the others.

Conditional writes

Put and Delete take an IfMatch condition. Any proceeds unconditionally, None proceeds only if the key has no record,
and Match(etag) proceeds only if the current record carries that etag. A condition that does not hold yields ErrConflict
and leaves the record untouched. The condition check and the mutation are indivisible for all callers of one backend
instance.

Etags

Etags are hex MD5 digests of the content, which is also what S3 reports for objects written in a single request. Two
writes of identical bytes therefore produce the same etag; an etag identifies content, not a write event.

Errors

Conflicts are an expected outcome, not a fault. Everything else a backend reports is an *Error carrying a Kind:
Transient errors may be retried unchanged, Permanent errors may not. A missing key is not an error; Get reports it
through its boolean result.

Consistency guarantees

Within one backend instance, puts and deletes on a single key are linearizable. Nothing is guaranteed across keys.
The filesystem backend serializes writers within one process only; several processes sharing a directory tree are not
coordinated.

Listing

List returns a lazy, finite sequence of keys. Every call enumerates the current state from scratch and no cursor is kept
between calls.
*/
package objstore
