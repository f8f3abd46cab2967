// Command backfill re-runs the extractor over every supported object already
// in the upload bucket, for uploads that predate the function deployment or
// whose invocations failed. Each object is processed independently, exactly
// like a fresh upload: no ordering, no dedup, colliding names overwrite.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	"github.com/ymatsuda/pcspecflow/internal/gcp"
	"github.com/ymatsuda/pcspecflow/internal/services"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		slog.Error("Backfill failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	bucket := gcp.GetEnv("UPLOAD_BUCKET", "")
	if bucket == "" {
		return fmt.Errorf("UPLOAD_BUCKET environment variable must be set")
	}
	prefix := gcp.GetEnv("BACKFILL_PREFIX", "")

	extractor, err := services.NewExtractor(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	defer storageClient.Close()

	it := storageClient.Bucket(bucket).Objects(ctx, &storage.Query{Prefix: prefix})

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(8)

	var queued int
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list objects in %s: %w", bucket, err)
		}

		event := services.GCSEvent{Bucket: bucket, Name: attrs.Name}
		queued++
		eg.Go(func() error {
			res, err := extractor.Process(gctx, event)
			if err != nil {
				return fmt.Errorf("object %s: %w", event.Name, err)
			}
			slog.Info("Backfilled object.", "gcsObject", event.Name, "statusCode", res.StatusCode, "body", res.Body)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	slog.Info("Backfill complete.", "bucket", bucket, "objectCount", queued)
	return nil
}
