package services

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/ymatsuda/pcspecflow/internal/models"
)

// normalizePayload fills every declared field that is missing or nil with its
// default and coerces numeric fields, falling back to the default when
// coercion fails. Fields the model returned that are not declared pass
// through untouched.
func normalizePayload(payload map[string]any, fields []models.FieldSpec) map[string]any {
	normalized := make(map[string]any, len(payload))
	for k, v := range payload {
		normalized[k] = v
	}

	for _, f := range fields {
		v, ok := normalized[f.Name]
		if !ok || v == nil {
			normalized[f.Name] = f.Default()
			continue
		}
		if f.Type == models.FieldNumber {
			n, ok := coerceNumber(v)
			if !ok {
				normalized[f.Name] = f.Default()
				continue
			}
			normalized[f.Name] = n
		}
	}
	return normalized
}

// coerceNumber accepts the numeric shapes a JSON payload can carry, plus
// numeric strings, which models produce often enough to matter.
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ensureName guarantees a non-empty partition key, substituting a generated
// pc-<uuid> identifier when extraction produced no usable name. Returns the
// key the record will be written under.
func ensureName(payload map[string]any) string {
	if v, ok := payload[models.NameField]; ok {
		if name, ok := v.(string); ok && name != "" {
			return name
		}
	}
	name := fmt.Sprintf("pc-%s", uuid.NewString())
	payload[models.NameField] = name
	return name
}
