package models

import "testing"

func TestFieldDefaultsMatchType(t *testing.T) {
	for _, f := range Fields {
		switch f.Type {
		case FieldString:
			if f.Default() != "" {
				t.Errorf("field %q default = %v, want empty string", f.Name, f.Default())
			}
		case FieldNumber:
			if f.Default() != float64(0) {
				t.Errorf("field %q default = %v, want 0", f.Name, f.Default())
			}
		default:
			t.Errorf("field %q has unknown type %q", f.Name, f.Type)
		}
	}
}

func TestNameFieldDeclared(t *testing.T) {
	for _, f := range Fields {
		if f.Name == NameField {
			if f.Type != FieldString {
				t.Errorf("partition key field is %q, want string", f.Type)
			}
			return
		}
	}
	t.Errorf("field list does not declare the %q partition key", NameField)
}
