package services

import (
	"regexp"
	"testing"

	"github.com/ymatsuda/pcspecflow/internal/models"
)

func TestNormalizeFillsMissingFields(t *testing.T) {
	payload := map[string]any{
		"cpu": "Ryzen 5",
		"ram": float64(16),
	}

	got := normalizePayload(payload, models.Fields)

	if got["price"] != float64(0) {
		t.Errorf("missing price = %v, want 0", got["price"])
	}
	if got["name"] != "" {
		t.Errorf("missing name = %v, want empty string", got["name"])
	}
	if got["cpu"] != "Ryzen 5" {
		t.Errorf("cpu = %v, want unchanged", got["cpu"])
	}
	if got["ram"] != float64(16) {
		t.Errorf("ram = %v, want 16", got["ram"])
	}
	// The input map must stay untouched.
	if _, ok := payload["price"]; ok {
		t.Error("normalizePayload mutated its input")
	}
}

func TestNormalizeNilBecomesDefault(t *testing.T) {
	got := normalizePayload(map[string]any{"monitor_size": nil, "cpu": nil}, models.Fields)
	if got["monitor_size"] != float64(0) {
		t.Errorf("nil monitor_size = %v, want 0", got["monitor_size"])
	}
	if got["cpu"] != "" {
		t.Errorf("nil cpu = %v, want empty string", got["cpu"])
	}
}

func TestNormalizeCoercesNumerics(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{"16", 16},
		{"27.5", 27.5},
		{int(512), 512},
		{float64(1920), 1920},
		{"sixteen", 0}, // non-numeric string falls back to the default
		{true, 0},
	}

	for _, c := range cases {
		got := normalizePayload(map[string]any{"ram": c.in}, models.Fields)
		if got["ram"] != c.want {
			t.Errorf("ram %v (%T) normalized to %v, want %v", c.in, c.in, got["ram"], c.want)
		}
	}
}

func TestNormalizeKeepsUndeclaredFields(t *testing.T) {
	got := normalizePayload(map[string]any{"gpu": "RTX 4070"}, models.Fields)
	if got["gpu"] != "RTX 4070" {
		t.Errorf("undeclared field = %v, want passed through", got["gpu"])
	}
}

var generatedNamePattern = regexp.MustCompile(`^pc-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestEnsureNameGeneratesIdentifier(t *testing.T) {
	for _, payload := range []map[string]any{
		{},
		{"name": ""},
		{"name": nil},
		{"name": float64(42)}, // non-string name is unusable as a key
	} {
		name := ensureName(payload)
		if !generatedNamePattern.MatchString(name) {
			t.Errorf("ensureName(%v) = %q, want pc-<uuid>", payload, name)
		}
		if payload["name"] != name {
			t.Errorf("payload name %v not updated to generated %q", payload["name"], name)
		}
	}
}

func TestEnsureNameKeepsExtractedName(t *testing.T) {
	payload := map[string]any{"name": "ThinkStation P3"}
	if name := ensureName(payload); name != "ThinkStation P3" {
		t.Errorf("ensureName = %q, want extracted name kept", name)
	}
}
