package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"cloud.google.com/go/vertexai/genai"
	"github.com/ymatsuda/pcspecflow/internal/gcp"
	"github.com/ymatsuda/pcspecflow/internal/models"
)

// ErrNoToolPayload is returned when the model's response carries no
// structured tool payload. Treated as a failed extraction, never as an empty
// record.
var ErrNoToolPayload = errors.New("model response contained no tool payload")

// ExtractorConfig holds all configuration for the extraction service.
type ExtractorConfig struct {
	ProjectID      string
	VertexAIRegion string
	Collection     string
	ModelID        string
	Normalize      bool
}

// ExtractorFunction holds the dependencies for the extraction logic.
type ExtractorFunction struct {
	storageClient   *storage.Client
	firestoreClient *firestore.Client
	vertexClient    *gcp.VertexClient
	config          ExtractorConfig
}

// GCSEvent defines the structure for the GCS event data. A finalize event
// describes exactly one object.
type GCSEvent struct {
	Bucket string `json:"bucket"`
	Name   string `json:"name"`
}

// loadConfig loads and validates all necessary environment variables for this
// service. The record store collection and the model ID are hard requirements;
// the invocation must fail immediately without them.
func loadConfig() (*ExtractorConfig, error) {
	projectID := gcp.GetEnv("PROJECT_ID", "")
	if projectID == "" {
		return nil, fmt.Errorf("PROJECT_ID environment variable must be set")
	}
	collection := gcp.GetEnv("FIRESTORE_COLLECTION", "")
	if collection == "" {
		return nil, fmt.Errorf("FIRESTORE_COLLECTION environment variable must be set")
	}
	modelID := gcp.GetEnv("VERTEX_MODEL_ID", "")
	if modelID == "" {
		return nil, fmt.Errorf("VERTEX_MODEL_ID environment variable must be set")
	}

	return &ExtractorConfig{
		ProjectID:      projectID,
		VertexAIRegion: gcp.GetEnv("VERTEX_AI_REGION", "us-central1"),
		Collection:     collection,
		ModelID:        modelID,
		Normalize:      gcp.GetEnv("NORMALIZE_RESULTS", "true") != "false",
	}, nil
}

// NewExtractor creates a new ExtractorFunction instance with all three
// service clients constructed up front.
func NewExtractor(ctx context.Context) (*ExtractorFunction, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	firestoreClient, err := gcp.NewFirestoreClient(ctx, config.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	vertexClient, err := gcp.NewVertexClient(ctx, config.ProjectID, config.VertexAIRegion, config.ModelID, models.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex client: %w", err)
	}

	f := &ExtractorFunction{
		storageClient:   storageClient,
		firestoreClient: firestoreClient,
		vertexClient:    vertexClient,
		config:          *config,
	}
	slog.Info("Extractor logic initialized.", "collection", config.Collection, "modelId", config.ModelID, "normalize", config.Normalize)
	return f, nil
}

// Process handles one uploaded object end to end: classify, fetch, assemble,
// infer, normalize, store. An unsupported suffix short-circuits with a
// rejection result and a nil error; every other failure is fatal for the
// invocation.
func (f *ExtractorFunction) Process(ctx context.Context, e GCSEvent) (*models.Result, error) {
	logCtx := slog.With("gcsBucket", e.Bucket, "gcsObject", e.Name)

	format, err := classifyObject(e.Name)
	if err != nil {
		var unsupported *UnsupportedFileTypeError
		if errors.As(err, &unsupported) {
			logCtx.Warn("Rejecting unsupported file type.", "extension", unsupported.Ext)
			return models.Rejected("unsupported file type: %s", unsupported.Ext), nil
		}
		return nil, err
	}
	logCtx = logCtx.With("fileFormat", string(format))
	logCtx.Info("Processing new upload.")

	data, err := gcp.ReadObject(ctx, f.storageClient, e.Bucket, e.Name)
	if err != nil {
		logCtx.Error("Failed to fetch object content", "error", err)
		return nil, err
	}

	parts, err := buildContentParts(format, data)
	if err != nil {
		logCtx.Error("Failed to assemble request content", "error", err)
		return nil, err
	}
	parts = append(parts, genai.Text(f.vertexClient.Instruction))

	resp, err := f.vertexClient.ExtractorModel.GenerateContent(ctx, parts...)
	if err != nil {
		logCtx.Error("Call to Vertex AI failed", "error", err)
		return nil, fmt.Errorf("failed to generate extraction from model: %w", err)
	}

	payload, err := payloadFromResponse(resp)
	if err != nil {
		logCtx.Error("Failed to extract PC specs from model response", "error", err)
		return nil, err
	}

	if f.config.Normalize {
		payload = normalizePayload(payload, models.Fields)
	}

	name, err := f.storeRecord(ctx, payload)
	if err != nil {
		logCtx.Error("Failed to store record", "error", err, "recordName", name)
		return nil, err
	}

	logCtx.Info("Successfully stored PC specs.", "recordName", name)
	return models.OK("successfully processed PC specs from %s file", format), nil
}

// payloadFromResponse pulls the structured tool payload out of the response
// envelope. The model is forced to answer through the tool, so a response
// without one is a failed extraction.
func payloadFromResponse(resp *genai.GenerateContentResponse) (map[string]any, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoToolPayload
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if fc, ok := part.(genai.FunctionCall); ok {
			if fc.Args == nil {
				return map[string]any{}, nil
			}
			return fc.Args, nil
		}
	}
	return nil, ErrNoToolPayload
}

// storeRecord writes the record under its (possibly generated) name. A plain
// Set: colliding names overwrite silently, last write wins.
func (f *ExtractorFunction) storeRecord(ctx context.Context, payload map[string]any) (string, error) {
	name := ensureName(payload)
	if _, err := f.firestoreClient.Collection(f.config.Collection).Doc(name).Set(ctx, payload); err != nil {
		return name, fmt.Errorf("failed to write record %q: %w", name, err)
	}
	return name, nil
}
