package services

import (
	"fmt"
	"path"
	"strings"
)

// FileFormat tags a supported upload by how its content is presented to the
// model.
type FileFormat string

const (
	FormatPNG  FileFormat = "png"
	FormatJPEG FileFormat = "jpeg"
	FormatPDF  FileFormat = "pdf"
	FormatText FileFormat = "text"
)

// supportedExtensions maps lowercased filename suffixes to formats.
// Classification is purely by suffix; a mislabelled file fails later, at
// content assembly or on the provider side.
var supportedExtensions = map[string]FileFormat{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".pdf":  FormatPDF,
	".txt":  FormatText,
}

// UnsupportedFileTypeError marks an upload this pipeline refuses to process.
// It is the one non-fatal error category: the invocation reports a rejection
// instead of failing.
type UnsupportedFileTypeError struct {
	Ext string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Ext)
}

// classifyObject maps an object key to its file format by suffix,
// case-insensitively.
func classifyObject(key string) (FileFormat, error) {
	ext := strings.ToLower(path.Ext(key))
	format, ok := supportedExtensions[ext]
	if !ok {
		return "", &UnsupportedFileTypeError{Ext: ext}
	}
	return format, nil
}

// mimeType returns the MIME type used to tag binary content parts.
func (f FileFormat) mimeType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/plain"
	}
}
