package gdmath

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

// Vector is the set of vector value types.
type Vector interface {
	Vector2i | Vector3i | Vector4i | Vector2 | Vector3 | Vector4
}

// JSONSchema returns the JSON Schema document describing the JSON form of T.
// The schema requires every component and forbids additional properties,
// matching UnmarshalJSON.
func JSONSchema[T Vector]() ([]byte, error) {
	var v T
	schema, err := jsonschema.Reflect(&v).MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "gdmath: vector must be json serializable")
	}
	return schema, nil
}

// CheckJSONSchema compares a previously published schema with the one T
// produces now. It returns ErrSchemaMismatch, wrapped with the differing
// JSON pointer paths, when they are not identical.
func CheckJSONSchema[T Vector](schema []byte) error {
	current, err := JSONSchema[T]()
	if err != nil {
		return err
	}
	patch, err := jsondiff.CompareJSON(schema, current)
	if err != nil {
		return eris.Wrap(err, "gdmath: compare schema")
	}
	if len(patch) != 0 {
		return fmt.Errorf("%w: %s", ErrSchemaMismatch, patch.String())
	}
	return nil
}
