// Package objstorepb holds the wire messages and service stubs generated
// from objstore.proto.
package objstorepb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative objstore.proto
