package gcp

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/ymatsuda/pcspecflow/internal/models"
)

// ExtractorSystemPrompt frames the model as a spec-sheet parser. The per-file
// content (image, PDF, or text) is sent as the leading content part, with the
// instruction text always last.
const ExtractorSystemPrompt = "You are a PC hardware listing parser. You are given the content of a single listing (a photo, a PDF, or plain text) and must extract its specifications into the declared JSON structure. Do not guess values that are not present in the listing."

// ToolName is the function-call declaration the model is forced to answer
// with. The response is only accepted through this tool.
const ToolName = "json_tool"

// BuildInstruction renders the fixed instruction part from the field list.
// Presentation convention: content part first, this instruction last.
func BuildInstruction(fields []models.FieldSpec) string {
	var b strings.Builder
	b.WriteString("Extract the following PC specifications and format them as JSON:\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "- %s\n", f.Description)
	}
	b.WriteString("\nReturn ONLY a valid JSON object with these fields. If a field is not found or cannot be determined, use an empty string for string fields and 0 for numeric fields.")
	return b.String()
}

// BuildSchema converts the field list into the tool's input schema. Every
// field is declared required; missing values are handled by normalization,
// not by relaxing the schema.
func BuildSchema(fields []models.FieldSpec) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		t := genai.TypeString
		if f.Type == models.FieldNumber {
			t = genai.TypeNumber
		}
		properties[f.Name] = &genai.Schema{Type: t, Description: f.Description}
		required = append(required, f.Name)
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

// VertexClient holds the pre-configured extraction model.
type VertexClient struct {
	ExtractorModel *genai.GenerativeModel
	Instruction    string
	baseClient     *genai.Client
}

// NewVertexClient creates a client whose model is locked to structured output:
// a single tool declaration built from the field list, with function calling
// forced to that tool.
func NewVertexClient(ctx context.Context, projectID, region, modelID string, fields []models.FieldSpec) (*VertexClient, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("NewVertexClient: projectID and region cannot be empty")
	}
	if modelID == "" {
		return nil, fmt.Errorf("NewVertexClient: modelID cannot be empty")
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := baseClient.GenerativeModel(modelID)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(ExtractorSystemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     genai.Ptr[float32](0.0),
		MaxOutputTokens: genai.Ptr[int32](1024),
	}
	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        ToolName,
					Description: "Generate a JSON object with PC specifications",
					Parameters:  BuildSchema(fields),
				},
			},
		},
	}
	model.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{
			Mode:                 genai.FunctionCallingAny,
			AllowedFunctionNames: []string{ToolName},
		},
	}

	return &VertexClient{
		ExtractorModel: model,
		Instruction:    BuildInstruction(fields),
		baseClient:     baseClient,
	}, nil
}

func (c *VertexClient) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}
