package integrationtest

import (
	"os"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/objstoretest"
	"github.com/serverlessresearch/objstore/pkg/objstore/s3store"
)

// TestS3 runs the contract against a real bucket. Every run writes under a
// fresh random prefix; objects are not cleaned up, so use a bucket with a
// lifecycle rule. TEST_S3_ENDPOINT points the test at S3-compatible
// services such as MinIO.
func TestS3(t *testing.T) {
	bucket := os.Getenv("TEST_S3_BUCKET")
	if bucket == "" {
		t.Skip("TEST_S3_BUCKET not set")
	}
	region := os.Getenv("AWS_DEFAULT_REGION")
	if region == "" {
		region = "us-west-2"
	}
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint := os.Getenv("TEST_S3_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess := session.Must(session.NewSession(cfg))
	store := s3store.New(s3.New(sess), bucket)

	objstoretest.Run(t, func(t *testing.T) objstore.Store { return store })
}
