package grpcstore

import (
	"context"

	"github.com/golang/protobuf/ptypes"
	"github.com/golang/protobuf/ptypes/empty"
	"github.com/pkg/errors"
	"github.com/serverlessresearch/objstore/pkg/objstore"
	pb "github.com/serverlessresearch/objstore/pkg/objstore/objstorepb"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// listBatch is the number of keys sent per List stream message.
const listBatch = 100

// Server exposes a Store over gRPC.
type Server struct {
	pb.UnimplementedObjectStoreServer

	store objstore.Store
	log   logrus.FieldLogger
}

func NewServer(store objstore.Store, log logrus.FieldLogger) *Server {
	if log == nil {
		log = objstore.NopLogger()
	}
	return &Server{store: store, log: log}
}

// Register installs the ObjectStore service on gs.
func (s *Server) Register(gs *grpc.Server) {
	pb.RegisterObjectStoreServer(gs, s)
}

func (s *Server) Get(ctx context.Context, r *pb.GetRequest) (*pb.GetResponse, error) {
	obj, found, err := s.store.Get(ctx, r.GetKey())
	if err != nil {
		return nil, s.statusError("get", r.GetKey(), err)
	}
	if !found {
		return &pb.GetResponse{}, nil
	}
	resp := &pb.GetResponse{Found: true, Data: obj.Data, Etag: obj.ETag}
	if !obj.LastModified.IsZero() {
		if ts, err := ptypes.TimestampProto(obj.LastModified); err == nil {
			resp.LastModified = ts
		}
	}
	return resp, nil
}

func (s *Server) Put(ctx context.Context, r *pb.PutRequest) (*pb.PutResponse, error) {
	cond, err := fromCondition(r.GetCondition())
	if err != nil {
		return nil, err
	}
	etag, err := s.store.Put(ctx, r.GetKey(), r.GetData(), cond)
	if err != nil {
		return nil, s.statusError("put", r.GetKey(), err)
	}
	return &pb.PutResponse{Etag: etag}, nil
}

func (s *Server) Delete(ctx context.Context, r *pb.DeleteRequest) (*empty.Empty, error) {
	cond, err := fromCondition(r.GetCondition())
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, r.GetKey(), cond); err != nil {
		return nil, s.statusError("delete", r.GetKey(), err)
	}
	return &empty.Empty{}, nil
}

func (s *Server) List(r *pb.ListRequest, stream pb.ObjectStore_ListServer) error {
	batch := make([]string, 0, listBatch)
	for key, err := range s.store.List(stream.Context(), r.GetPrefix()) {
		if err != nil {
			return s.statusError("list", r.GetPrefix(), err)
		}
		batch = append(batch, key)
		if len(batch) == listBatch {
			if err := stream.Send(&pb.ListResponse{Keys: batch}); err != nil {
				return err
			}
			batch = make([]string, 0, listBatch)
		}
	}
	if len(batch) > 0 {
		return stream.Send(&pb.ListResponse{Keys: batch})
	}
	return nil
}

// statusError maps a store error onto a gRPC status the client can map
// back. Conflicts are routine and not logged here.
func (s *Server) statusError(op, key string, err error) error {
	switch {
	case objstore.IsConflict(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case objstore.IsInvalidKey(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case objstore.IsTransient(err):
		s.log.WithFields(logrus.Fields{"op": op, "key": key}).WithError(err).Warn("transient store failure")
		return status.Error(codes.Unavailable, err.Error())
	default:
		s.log.WithFields(logrus.Fields{"op": op, "key": key}).WithError(err).Error("store failure")
		return status.Error(codes.Internal, err.Error())
	}
}

func fromCondition(c *pb.Condition) (objstore.IfMatch, error) {
	switch c.GetKind() {
	case pb.Condition_ANY:
		return objstore.Any(), nil
	case pb.Condition_NONE:
		return objstore.None(), nil
	case pb.Condition_MATCH:
		return objstore.Match(c.GetEtag()), nil
	default:
		return objstore.IfMatch{}, status.Errorf(codes.Unimplemented, "unknown condition kind %d", c.GetKind())
	}
}

func toCondition(cond objstore.IfMatch) *pb.Condition {
	switch cond.Kind() {
	case objstore.CondNone:
		return &pb.Condition{Kind: pb.Condition_NONE}
	case objstore.CondMatch:
		return &pb.Condition{Kind: pb.Condition_MATCH, Etag: cond.ETag()}
	default:
		return &pb.Condition{Kind: pb.Condition_ANY}
	}
}
