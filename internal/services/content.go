package services

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"cloud.google.com/go/vertexai/genai"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// buildContentParts turns the raw object bytes into the model request's
// content part list for the given format. The instruction part is appended by
// the caller, after these; content first, instruction last.
func buildContentParts(format FileFormat, data []byte) ([]genai.Part, error) {
	switch format {
	case FormatPNG, FormatJPEG, FormatPDF:
		if format == FormatPDF {
			pageCount, err := validatePDF(data)
			if err != nil {
				return nil, fmt.Errorf("pdf validation failed: %w", err)
			}
			if pageCount == 0 {
				return nil, fmt.Errorf("pdf validation failed: document has no pages")
			}
		}
		return []genai.Part{genai.Blob{MIMEType: format.mimeType(), Data: data}}, nil
	case FormatText:
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("text content is not valid UTF-8")
		}
		return []genai.Part{genai.Text(string(data))}, nil
	default:
		return nil, fmt.Errorf("no content assembly for format %q", format)
	}
}

// validatePDF rejects corrupt PDFs locally instead of burning an inference
// call on a document the provider cannot parse either.
func validatePDF(data []byte) (int, error) {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return api.PageCount(bytes.NewReader(data), cfg)
}
