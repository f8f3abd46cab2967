package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
)

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ReadObject fetches the full content of a GCS object. Uploaded listings are
// small (images, single-page PDFs, text snippets), so reading into memory is
// fine here.
func ReadObject(ctx context.Context, client *storage.Client, bucket, object string) ([]byte, error) {
	reader, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open gs://%s/%s: %w", bucket, object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read gs://%s/%s: %w", bucket, object, err)
	}
	return data, nil
}

// EnsureBucket creates the bucket if it does not exist yet. Used by the
// provisioning CLI, not by the function itself.
func EnsureBucket(ctx context.Context, client *storage.Client, projectID, bucket string, attrs *storage.BucketAttrs) (created bool, err error) {
	handle := client.Bucket(bucket)
	if _, err := handle.Attrs(ctx); err == nil {
		return false, nil
	} else if !errors.Is(err, storage.ErrBucketNotExist) {
		return false, fmt.Errorf("failed to look up bucket %s: %w", bucket, err)
	}

	if err := handle.Create(ctx, projectID, attrs); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return true, nil
}
