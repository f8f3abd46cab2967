package services

import (
	"errors"
	"testing"
)

func TestClassifyObjectSupported(t *testing.T) {
	cases := []struct {
		key  string
		want FileFormat
	}{
		{"listings/gaming-rig.png", FormatPNG},
		{"photo.jpg", FormatJPEG},
		{"photo.jpeg", FormatJPEG},
		{"flyer.pdf", FormatPDF},
		{"specs.txt", FormatText},
		{"SHOUTING.TXT", FormatText},
		{"Mixed.Case.JpEg", FormatJPEG},
	}

	for _, c := range cases {
		got, err := classifyObject(c.key)
		if err != nil {
			t.Errorf("classifyObject(%q) returned error: %v", c.key, err)
			continue
		}
		if got != c.want {
			t.Errorf("classifyObject(%q) = %q, want %q", c.key, got, c.want)
		}
	}
}

func TestClassifyObjectUnsupported(t *testing.T) {
	for _, key := range []string{"listing.gif", "archive.zip", "noextension", "specs.txt.bak"} {
		_, err := classifyObject(key)
		if err == nil {
			t.Errorf("classifyObject(%q) succeeded, want rejection", key)
			continue
		}
		var unsupported *UnsupportedFileTypeError
		if !errors.As(err, &unsupported) {
			t.Errorf("classifyObject(%q) returned %T, want *UnsupportedFileTypeError", key, err)
		}
	}
}

func TestMimeTypes(t *testing.T) {
	cases := map[FileFormat]string{
		FormatPNG:  "image/png",
		FormatJPEG: "image/jpeg",
		FormatPDF:  "application/pdf",
		FormatText: "text/plain",
	}
	for format, want := range cases {
		if got := format.mimeType(); got != want {
			t.Errorf("mimeType(%q) = %q, want %q", format, got, want)
		}
	}
}
