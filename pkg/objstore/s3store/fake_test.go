package s3store_test

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"io/ioutil"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// fakeS3 is an in-memory bucket honouring If-Match and If-None-Match the
// way S3 does. Methods not overridden panic through the nil embedded API.
type fakeS3 struct {
	s3iface.S3API

	mu      sync.Mutex
	objects map[string]fakeObject

	// fail, when set, is returned by every call instead of doing any work.
	fail error
	// listCalls counts ListObjectsV2 pages served.
	listCalls int
}

type fakeObject struct {
	data     []byte
	etag     string
	modified time.Time
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string]fakeObject)}
}

func requestHeaders(opts []request.Option) http.Header {
	r := &request.Request{HTTPRequest: &http.Request{Header: http.Header{}}}
	r.ApplyOptions(opts...)
	return r.HTTPRequest.Header
}

func preconditionFailed() error {
	return awserr.NewRequestFailure(
		awserr.New("PreconditionFailed", "At least one of the pre-conditions you specified did not hold", nil),
		http.StatusPreconditionFailed, "fake-request")
}

func noSuchKey() error {
	return awserr.NewRequestFailure(
		awserr.New(s3.ErrCodeNoSuchKey, "The specified key does not exist.", nil),
		http.StatusNotFound, "fake-request")
}

// checkConditions must be called with f.mu held.
func (f *fakeS3) checkConditions(key string, h http.Header) error {
	cur, exists := f.objects[key]
	if h.Get("If-None-Match") == "*" && exists {
		return preconditionFailed()
	}
	if want := h.Get("If-Match"); want != "" {
		if !exists {
			return noSuchKey()
		}
		if strings.Trim(want, `"`) != cur.etag {
			return preconditionFailed()
		}
	}
	return nil
}

func (f *fakeS3) GetObjectWithContext(_ aws.Context, in *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	obj, ok := f.objects[aws.StringValue(in.Key)]
	if !ok {
		return nil, noSuchKey()
	}
	return &s3.GetObjectOutput{
		Body:          ioutil.NopCloser(bytes.NewReader(obj.data)),
		ContentLength: aws.Int64(int64(len(obj.data))),
		ETag:          aws.String(`"` + obj.etag + `"`),
		LastModified:  aws.Time(obj.modified),
	}, nil
}

func (f *fakeS3) HeadObjectWithContext(_ aws.Context, in *s3.HeadObjectInput, _ ...request.Option) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	obj, ok := f.objects[aws.StringValue(in.Key)]
	if !ok {
		return nil, awserr.NewRequestFailure(awserr.New("NotFound", "Not Found", nil), http.StatusNotFound, "fake-request")
	}
	return &s3.HeadObjectOutput{
		ContentLength: aws.Int64(int64(len(obj.data))),
		ETag:          aws.String(`"` + obj.etag + `"`),
	}, nil
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	data, err := ioutil.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	key := aws.StringValue(in.Key)
	if err := f.checkConditions(key, requestHeaders(opts)); err != nil {
		return nil, err
	}
	sum := md5.Sum(data)
	etag := hex.EncodeToString(sum[:])
	f.objects[key] = fakeObject{data: data, etag: etag, modified: time.Now()}
	return &s3.PutObjectOutput{ETag: aws.String(`"` + etag + `"`)}, nil
}

func (f *fakeS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	key := aws.StringValue(in.Key)
	if err := f.checkConditions(key, requestHeaders(opts)); err != nil {
		return nil, err
	}
	delete(f.objects, key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2PagesWithContext(_ aws.Context, in *s3.ListObjectsV2Input, fn func(*s3.ListObjectsV2Output, bool) bool, _ ...request.Option) error {
	f.mu.Lock()
	if f.fail != nil {
		f.mu.Unlock()
		return f.fail
	}
	prefix := aws.StringValue(in.Prefix)
	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	f.mu.Unlock()
	sort.Strings(keys)

	pageSize := int(aws.Int64Value(in.MaxKeys))
	if pageSize <= 0 {
		pageSize = 1000
	}
	for start := 0; ; start += pageSize {
		end := start + pageSize
		if end > len(keys) {
			end = len(keys)
		}
		page := &s3.ListObjectsV2Output{}
		for _, k := range keys[start:end] {
			page.Contents = append(page.Contents, &s3.Object{Key: aws.String(k)})
		}
		f.mu.Lock()
		f.listCalls++
		f.mu.Unlock()
		last := end == len(keys)
		if !fn(page, last) || last {
			return nil
		}
	}
}
