package gdmath

import (
	"errors"
	"strings"
	"testing"
)

func TestJSONSchema(t *testing.T) {
	schema, err := JSONSchema[Vector4i]()
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	s := string(schema)
	for _, want := range []string{`"x"`, `"y"`, `"z"`, `"w"`, `"integer"`, `"required"`} {
		if !strings.Contains(s, want) {
			t.Errorf("schema missing %s: %s", want, s)
		}
	}

	schema, err = JSONSchema[Vector2]()
	if err != nil {
		t.Fatalf("JSONSchema[Vector2]: %v", err)
	}
	if !strings.Contains(string(schema), `"number"`) {
		t.Errorf("float schema has no number type: %s", schema)
	}
}

func TestCheckJSONSchema(t *testing.T) {
	published, err := JSONSchema[Vector4i]()
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	if err := CheckJSONSchema[Vector4i](published); err != nil {
		t.Errorf("CheckJSONSchema(own schema) = %v", err)
	}

	other, err := JSONSchema[Vector3i]()
	if err != nil {
		t.Fatalf("JSONSchema[Vector3i]: %v", err)
	}
	if err := CheckJSONSchema[Vector4i](other); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("CheckJSONSchema(Vector3i schema) = %v, want ErrSchemaMismatch", err)
	}
}

func TestCheckJSONSchemaMalformed(t *testing.T) {
	err := CheckJSONSchema[Vector4i]([]byte(`{not json`))
	if err == nil {
		t.Fatal("CheckJSONSchema accepted malformed input")
	}
	if errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("malformed input reported as mismatch: %v", err)
	}
}
