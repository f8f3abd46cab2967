// Command provision performs the one-time infrastructure wiring for the
// pipeline: it creates the upload bucket if needed and verifies that the
// record store and inference clients can be constructed against the
// configured project. Eventarc delivers every finalize event on the bucket;
// suffix filtering happens inside the function, since GCS triggers cannot
// filter on object suffix.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	"github.com/ymatsuda/pcspecflow/internal/gcp"
	"github.com/ymatsuda/pcspecflow/internal/models"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		slog.Error("Provisioning failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	projectID := gcp.GetEnv("PROJECT_ID", "")
	if projectID == "" {
		return fmt.Errorf("PROJECT_ID environment variable must be set")
	}
	bucket := gcp.GetEnv("UPLOAD_BUCKET", "")
	if bucket == "" {
		return fmt.Errorf("UPLOAD_BUCKET environment variable must be set")
	}
	collection := gcp.GetEnv("FIRESTORE_COLLECTION", "")
	if collection == "" {
		return fmt.Errorf("FIRESTORE_COLLECTION environment variable must be set")
	}
	modelID := gcp.GetEnv("VERTEX_MODEL_ID", "")
	if modelID == "" {
		return fmt.Errorf("VERTEX_MODEL_ID environment variable must be set")
	}
	region := gcp.GetEnv("VERTEX_AI_REGION", "us-central1")

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	defer storageClient.Close()

	created, err := gcp.EnsureBucket(ctx, storageClient, projectID, bucket, &storage.BucketAttrs{
		Labels: map[string]string{"pipeline": "pcspecflow"},
	})
	if err != nil {
		return err
	}
	if created {
		slog.Info("Created upload bucket.", "bucket", bucket)
	} else {
		slog.Info("Upload bucket already exists.", "bucket", bucket)
	}

	// Construct the remaining clients once so misconfiguration surfaces here
	// rather than on the first upload.
	firestoreClient, err := gcp.NewFirestoreClient(ctx, projectID)
	if err != nil {
		return err
	}
	defer firestoreClient.Close()

	vertexClient, err := gcp.NewVertexClient(ctx, projectID, region, modelID, models.Fields)
	if err != nil {
		return err
	}
	defer vertexClient.Close()

	slog.Info("Provisioning complete.",
		"bucket", bucket,
		"collection", collection,
		"modelId", modelID,
		"region", region,
		"supportedSuffixes", []string{".png", ".jpg", ".jpeg", ".pdf", ".txt"},
	)
	return nil
}
