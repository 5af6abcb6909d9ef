// Package grpcstore carries the Store contract over gRPC. A Server wraps
// any objstore.Store; a Client implements objstore.Store against a remote
// Server, so conditions are evaluated by the backend behind the server.
package grpcstore

import (
	"context"
	"io"
	"iter"
	"strings"

	"github.com/golang/protobuf/ptypes"
	"github.com/pkg/errors"
	"github.com/serverlessresearch/objstore/pkg/objstore"
	pb "github.com/serverlessresearch/objstore/pkg/objstore/objstorepb"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Client struct {
	rpc pb.ObjectStoreClient
	log logrus.FieldLogger
}

// NewClient returns a Store backed by the server at the other end of conn.
// Closing conn is left to the caller.
func NewClient(conn *grpc.ClientConn, log logrus.FieldLogger) *Client {
	if log == nil {
		log = objstore.NopLogger()
	}
	return &Client{rpc: pb.NewObjectStoreClient(conn), log: log}
}

var _ objstore.Store = (*Client)(nil)

func (c *Client) Get(ctx context.Context, key string) (objstore.Object, bool, error) {
	if err := objstore.ValidateKey(key); err != nil {
		return objstore.Object{}, false, err
	}
	resp, err := c.rpc.Get(ctx, &pb.GetRequest{Key: key})
	if err != nil {
		return objstore.Object{}, false, fromStatus("get", key, err)
	}
	if !resp.GetFound() {
		return objstore.Object{}, false, nil
	}
	obj := objstore.Object{
		Key:  key,
		Data: resp.GetData(),
		ETag: resp.GetEtag(),
		Size: int64(len(resp.GetData())),
	}
	if obj.Data == nil {
		obj.Data = []byte{}
	}
	if resp.GetLastModified() != nil {
		if t, err := ptypes.Timestamp(resp.GetLastModified()); err == nil {
			obj.LastModified = t
		}
	}
	return obj, true, nil
}

func (c *Client) Put(ctx context.Context, key string, data []byte, cond objstore.IfMatch) (string, error) {
	if err := objstore.ValidateKey(key); err != nil {
		return "", err
	}
	resp, err := c.rpc.Put(ctx, &pb.PutRequest{Key: key, Data: data, Condition: toCondition(cond)})
	if err != nil {
		err = fromStatus("put", key, err)
		objstore.LogOutcome(c.log, "put", key, cond, err)
		return "", err
	}
	return resp.GetEtag(), nil
}

func (c *Client) Delete(ctx context.Context, key string, cond objstore.IfMatch) error {
	if err := objstore.ValidateKey(key); err != nil {
		return err
	}
	_, err := c.rpc.Delete(ctx, &pb.DeleteRequest{Key: key, Condition: toCondition(cond)})
	if err != nil {
		err = fromStatus("delete", key, err)
	}
	objstore.LogOutcome(c.log, "delete", key, cond, err)
	return err
}

// List opens one stream per iteration. Stopping early cancels the stream.
func (c *Client) List(ctx context.Context, prefix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		stream, err := c.rpc.List(ctx, &pb.ListRequest{Prefix: prefix})
		if err != nil {
			yield("", fromStatus("list", prefix, err))
			return
		}
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", fromStatus("list", prefix, err))
				return
			}
			for _, key := range resp.GetKeys() {
				if !yield(key, nil) {
					return
				}
			}
		}
	}
}

// fromStatus maps a gRPC status back onto the objstore error vocabulary.
func fromStatus(op, key string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return objstore.NewError(op, key, objstore.Transient, err)
	}
	switch st.Code() {
	case codes.FailedPrecondition:
		return objstore.ErrConflict
	case codes.InvalidArgument:
		return objstore.NewError(op, key, objstore.Permanent, errors.Wrap(objstore.ErrInvalidKey, st.Message()))
	case codes.ResourceExhausted:
		// Size limits fail the same way on every attempt.
		if strings.Contains(st.Message(), "larger than max") {
			return objstore.NewError(op, key, objstore.Permanent, errors.New(st.Message()))
		}
		return objstore.NewError(op, key, objstore.Transient, errors.New(st.Message()))
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted, codes.Canceled:
		return objstore.NewError(op, key, objstore.Transient, errors.New(st.Message()))
	default:
		return objstore.NewError(op, key, objstore.Permanent, errors.Errorf("%s: %s", st.Code(), st.Message()))
	}
}
