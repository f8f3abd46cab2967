package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/ymatsuda/pcspecflow/internal/services"
)

var (
	extractorInstance *services.ExtractorFunction
	once              sync.Once
	initErr           error
)

func init() {
	// --- Set up structured logging ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Register the CloudEvent function. The framework routes GCS finalize
	// events here.
	functions.CloudEvent("ExtractSpecs", extractSpecs)
}

// main is required by the Go Functions Framework.
func main() {}

// extractSpecs is the Cloud Function entry point for one uploaded file.
func extractSpecs(ctx context.Context, e cloudevents.Event) error {
	// Use sync.Once for robust, one-time initialization of clients.
	once.Do(func() {
		extractorInstance, initErr = services.NewExtractor(context.Background())
	})
	if initErr != nil {
		slog.Error("Critical error during function initialization", "error", initErr)
		return initErr
	}

	var gcsEvent services.GCSEvent
	if err := json.Unmarshal(e.Data(), &gcsEvent); err != nil {
		slog.Error("Failed to unmarshal event data", "error", err, "data", string(e.Data()))
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	res, err := extractorInstance.Process(ctx, gcsEvent)
	if err != nil {
		// The error is already logged with context within Process. Returning
		// it marks the invocation as failed so the platform's retry policy
		// applies.
		return err
	}

	// Both the success and the unsupported-type rejection end the invocation
	// cleanly; the status code tells them apart in the logs.
	slog.Info("Invocation complete.", "statusCode", res.StatusCode, "body", res.Body)
	return nil
}
