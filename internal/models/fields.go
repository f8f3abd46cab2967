package models

// FieldType distinguishes how a field is declared to the model and how its
// value is defaulted and coerced during normalization.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldNumber FieldType = "number"
)

// FieldSpec describes one field of the extraction schema. The field list is
// deliberately data, not a struct type: the set of extracted fields is the one
// part of this pipeline that keeps changing, so the tool schema, the prompt,
// and the normalization defaults are all derived from this single table.
type FieldSpec struct {
	Name        string
	Type        FieldType
	Description string
}

// Default returns the fill-in value used when the model omits the field or
// when a numeric value cannot be coerced.
func (f FieldSpec) Default() any {
	if f.Type == FieldNumber {
		return float64(0)
	}
	return ""
}

// NameField is the record store's partition key. A record is never written
// with an empty value for it.
const NameField = "name"

// Fields is the canonical extraction schema: every field is required in the
// tool declaration and defaulted on the way out.
var Fields = []FieldSpec{
	{Name: NameField, Type: FieldString, Description: "Name of the PC"},
	{Name: "cpu", Type: FieldString, Description: "Name of the CPU"},
	{Name: "ram", Type: FieldNumber, Description: "Amount of RAM in GB"},
	{Name: "storage", Type: FieldNumber, Description: "Amount of storage in GB"},
	{Name: "resolution_width", Type: FieldNumber, Description: "Width of monitor resolution in pixels"},
	{Name: "resolution_height", Type: FieldNumber, Description: "Height of monitor resolution in pixels"},
	{Name: "monitor_size", Type: FieldNumber, Description: "Size of monitor in inches"},
	{Name: "price", Type: FieldNumber, Description: "Price in Japanese yen"},
}
