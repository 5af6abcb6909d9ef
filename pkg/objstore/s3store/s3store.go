// Package s3store implements objstore.Store on AWS S3 and S3-compatible
// services. Conditions are enforced server-side through conditional
// request headers, so no local locking is needed; this package only
// translates between the two vocabularies.
package s3store

import (
	"bytes"
	"context"
	"io/ioutil"
	"iter"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/sirupsen/logrus"
)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for write outcomes.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithPageSize sets the number of keys requested per listing page. Zero
// leaves it to the service (1000 on S3).
func WithPageSize(n int64) Option {
	return func(s *Store) {
		s.pageSize = n
	}
}

type Store struct {
	api      s3iface.S3API
	bucket   string
	pageSize int64
	log      logrus.FieldLogger
}

// New returns a Store keeping objects in bucket. The client is used as is;
// credentials, region and retry policy are the caller's business.
func New(api s3iface.S3API, bucket string, opts ...Option) *Store {
	s := &Store{
		api:    api,
		bucket: bucket,
		log:    objstore.NopLogger(),
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

var _ objstore.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) (objstore.Object, bool, error) {
	if err := objstore.ValidateKey(key); err != nil {
		return objstore.Object{}, false, err
	}

	out, err := s.api.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return objstore.Object{}, false, nil
		}
		return objstore.Object{}, false, classify("get", key, err)
	}
	defer out.Body.Close()

	data, err := ioutil.ReadAll(out.Body)
	if err != nil {
		// The connection broke mid-body; the object itself is fine.
		return objstore.Object{}, false, objstore.NewError("get", key, objstore.Transient, errors.Wrap(err, "read body"))
	}

	etag := unquote(aws.StringValue(out.ETag))
	if etag == "" {
		etag = objstore.ETag(data)
	}
	return objstore.Object{
		Key:          key,
		Data:         data,
		ETag:         etag,
		Size:         int64(len(data)),
		LastModified: aws.TimeValue(out.LastModified),
	}, true, nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte, cond objstore.IfMatch) (string, error) {
	if err := objstore.ValidateKey(key); err != nil {
		return "", err
	}

	out, err := s.api.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}, conditionHeaders(cond)...)
	if err != nil {
		// If-Match against a missing object is answered with 404.
		if cond.Kind() == objstore.CondMatch && isNotFound(err) {
			err = objstore.ErrConflict
		} else {
			err = classify("put", key, err)
		}
		objstore.LogOutcome(s.log, "put", key, cond, err)
		return "", err
	}

	if etag := unquote(aws.StringValue(out.ETag)); etag != "" {
		return etag, nil
	}
	return objstore.ETag(data), nil
}

func (s *Store) Delete(ctx context.Context, key string, cond objstore.IfMatch) error {
	if err := objstore.ValidateKey(key); err != nil {
		return err
	}

	var err error
	switch cond.Kind() {
	case objstore.CondNone:
		// S3 has no If-None-Match on delete. Deleting under None never
		// mutates anything, so observing presence is the whole operation.
		err = s.deleteIfAbsent(ctx, key)
	case objstore.CondMatch:
		_, err = s.api.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		}, conditionHeaders(cond)...)
		if err != nil && isNotFound(err) {
			err = objstore.ErrConflict
		}
	default:
		_, err = s.api.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	}
	if err != nil && !objstore.IsConflict(err) {
		err = classify("delete", key, err)
	}
	objstore.LogOutcome(s.log, "delete", key, cond, err)
	return err
}

func (s *Store) deleteIfAbsent(ctx context.Context, key string) error {
	_, err := s.api.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	switch {
	case err == nil:
		return objstore.ErrConflict
	case isNotFound(err):
		return nil
	default:
		return err
	}
}

// List pages through ListObjectsV2 on demand: a page is only requested
// once the caller has consumed the previous one.
func (s *Store) List(ctx context.Context, prefix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		input := &s3.ListObjectsV2Input{
			Bucket: aws.String(s.bucket),
			Prefix: aws.String(prefix),
		}
		if s.pageSize > 0 {
			input.MaxKeys = aws.Int64(s.pageSize)
		}

		stopped := false
		err := s.api.ListObjectsV2PagesWithContext(ctx, input, func(page *s3.ListObjectsV2Output, last bool) bool {
			for _, obj := range page.Contents {
				if !yield(aws.StringValue(obj.Key), nil) {
					stopped = true
					return false
				}
			}
			return true
		})
		if err != nil && !stopped {
			yield("", classify("list", prefix, err))
		}
	}
}

// conditionHeaders turns cond into conditional request headers. S3 has
// no parameters for them on every operation, so they are set on the
// outgoing HTTP request directly.
func conditionHeaders(cond objstore.IfMatch) []request.Option {
	switch cond.Kind() {
	case objstore.CondNone:
		return []request.Option{setHeader("If-None-Match", "*")}
	case objstore.CondMatch:
		return []request.Option{setHeader("If-Match", `"`+cond.ETag()+`"`)}
	default:
		return nil
	}
}

func setHeader(name, value string) request.Option {
	return func(r *request.Request) {
		r.HTTPRequest.Header.Set(name, value)
	}
}

func unquote(etag string) string {
	return strings.Trim(etag, `"`)
}

// isNotFound reports a missing key. A missing bucket is also a 404 but is
// a permanent failure, not absence.
func isNotFound(err error) bool {
	switch awsCode(err) {
	case s3.ErrCodeNoSuchKey, "NotFound":
		return true
	}
	return false
}

// classify maps an S3 error onto conflict, transient or permanent.
func classify(op, key string, err error) error {
	if err == nil {
		return nil
	}
	if statusCode(err) == http.StatusPreconditionFailed || awsCode(err) == "PreconditionFailed" {
		return objstore.ErrConflict
	}
	kind := objstore.Permanent
	if isTransient(err) {
		kind = objstore.Transient
	}
	return objstore.NewError(op, key, kind, err)
}

var transientStatus = map[int]bool{
	http.StatusRequestTimeout: true,
	// ConditionalRequestConflict: another conditional write to the same
	// key was in flight. The request itself may be resent unchanged.
	http.StatusConflict:            true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

var transientCodes = map[string]bool{
	"ConditionalRequestConflict":   true,
	"InternalError":                true,
	"RequestTimeout":               true,
	"RequestTimeoutException":      true,
	"ServiceUnavailable":           true,
	"SlowDown":                     true,
	"Throttling":                   true,
	"ThrottlingException":          true,
	"RequestLimitExceeded":         true,
	request.CanceledErrorCode:      true,
	request.ErrCodeRequestError:    true,
	request.ErrCodeResponseTimeout: true,
	request.ErrCodeRead:            true,
}

func isTransient(err error) bool {
	if transientStatus[statusCode(err)] || transientCodes[awsCode(err)] {
		return true
	}
	return request.IsErrorRetryable(err) || request.IsErrorThrottle(err)
}

func statusCode(err error) int {
	var rf awserr.RequestFailure
	if errors.As(err, &rf) {
		return rf.StatusCode()
	}
	return 0
}

func awsCode(err error) string {
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		return aerr.Code()
	}
	return ""
}
