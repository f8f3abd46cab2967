package services

import (
	"testing"

	"cloud.google.com/go/vertexai/genai"
)

func TestBuildContentPartsImage(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G'}
	parts, err := buildContentParts(FormatPNG, data)
	if err != nil {
		t.Fatalf("buildContentParts returned error: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("got %d parts, want 1", len(parts))
	}
	blob, ok := parts[0].(genai.Blob)
	if !ok {
		t.Fatalf("part is %T, want genai.Blob", parts[0])
	}
	if blob.MIMEType != "image/png" {
		t.Errorf("MIME type = %q, want image/png", blob.MIMEType)
	}
	if string(blob.Data) != string(data) {
		t.Error("blob data does not match object content")
	}
}

func TestBuildContentPartsText(t *testing.T) {
	parts, err := buildContentParts(FormatText, []byte("CPU: Ryzen 5 5600X\nRAM: 16GB"))
	if err != nil {
		t.Fatalf("buildContentParts returned error: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("got %d parts, want 1", len(parts))
	}
	if _, ok := parts[0].(genai.Text); !ok {
		t.Errorf("part is %T, want genai.Text", parts[0])
	}
}

func TestBuildContentPartsInvalidUTF8(t *testing.T) {
	if _, err := buildContentParts(FormatText, []byte{0xff, 0xfe, 0xfd}); err == nil {
		t.Error("invalid UTF-8 text accepted, want decode error")
	}
}

func TestBuildContentPartsCorruptPDF(t *testing.T) {
	if _, err := buildContentParts(FormatPDF, []byte("this is not a pdf")); err == nil {
		t.Error("corrupt PDF accepted, want validation error")
	}
}
