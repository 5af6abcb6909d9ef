package objmgr

import (
	"context"
	"fmt"
	"os"

	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/sirupsen/logrus"
)

func Example() {
	mgrArgs := map[string]interface{}{}
	// ./objstore.yaml selects and configures a backend for your environment
	mgrArgs["config-file"] = "./objstore.yaml"

	// Adding a custom logger is optional
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	mgrArgs["logger"] = logger

	mgr, err := NewManager(mgrArgs)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer mgr.Destroy()

	ctx := context.Background()
	etag, err := mgr.Store.Put(ctx, "hello.txt", []byte("hello"), objstore.None())
	if objstore.IsConflict(err) {
		fmt.Println("hello.txt already exists")
		return
	} else if err != nil {
		fmt.Printf("Put failed: %v\n", err)
		os.Exit(1)
	}

	// Only overwrite the version we wrote
	if _, err := mgr.Store.Put(ctx, "hello.txt", []byte("hello world"), objstore.Match(etag)); err != nil {
		fmt.Printf("Conditional update failed: %v\n", err)
		os.Exit(1)
	}
}
