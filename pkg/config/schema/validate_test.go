package schema

import (
	"encoding/json"
	"testing"
)

func mappingSchema() json.RawMessage {
	return json.RawMessage(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {
			"deviceKey": {"type": "string", "minLength": 1},
			"deviceIndex": {"type": "integer", "minimum": 1, "maximum": 20}
		},
		"required": ["deviceKey", "deviceIndex"],
		"additionalProperties": false
	}`)
}

func TestValidate_ValidPayload(t *testing.T) {
	v := NewValidator()

	err := v.ValidateJSON(mappingSchema(), []byte(`{"deviceKey": "display-1", "deviceIndex": 3}`))
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	v := NewValidator()

	err := v.ValidateJSON(mappingSchema(), []byte(`{"deviceKey": "display-1"}`))
	if err == nil {
		t.Error("expected validation error for missing deviceIndex")
	}
}

func TestValidate_OutOfRange(t *testing.T) {
	v := NewValidator()

	err := v.ValidateJSON(mappingSchema(), []byte(`{"deviceKey": "display-1", "deviceIndex": 21}`))
	if err == nil {
		t.Error("expected validation error for out-of-range deviceIndex")
	}
}

func TestValidate_UnknownProperty(t *testing.T) {
	v := NewValidator()

	err := v.ValidateJSON(mappingSchema(), []byte(`{"deviceKey": "d", "deviceIndex": 1, "slot": 1}`))
	if err == nil {
		t.Error("expected validation error for unknown property")
	}
}

func TestValidate_WrongType(t *testing.T) {
	v := NewValidator()

	err := v.ValidateJSON(mappingSchema(), []byte(`{"deviceKey": 7, "deviceIndex": 1}`))
	if err == nil {
		t.Error("expected validation error for wrong type")
	}
}

func TestValidate_MalformedDocument(t *testing.T) {
	v := NewValidator()

	err := v.ValidateJSON(mappingSchema(), []byte(`{"deviceKey": `))
	if err == nil {
		t.Error("expected decode error for malformed JSON")
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	v := NewValidator()

	// Empty schema means no validation
	err := v.Validate(json.RawMessage(`{}`), map[string]any{
		"anything": "goes",
	})
	if err != nil {
		t.Errorf("empty schema should skip validation, got: %v", err)
	}
}

func TestValidate_NilSchema(t *testing.T) {
	v := NewValidator()

	err := v.Validate(nil, map[string]any{
		"anything": "goes",
	})
	if err != nil {
		t.Errorf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidate_CachesSchema(t *testing.T) {
	v := NewValidator()
	schema := mappingSchema()

	// First call compiles
	if err := v.ValidateJSON(schema, []byte(`{"deviceKey": "a", "deviceIndex": 1}`)); err != nil {
		t.Fatal(err)
	}

	// Second call should use cache
	if err := v.ValidateJSON(schema, []byte(`{"deviceKey": "b", "deviceIndex": 2}`)); err != nil {
		t.Fatal(err)
	}

	v.mu.RLock()
	cacheSize := len(v.cache)
	v.mu.RUnlock()
	if cacheSize != 1 {
		t.Errorf("expected 1 cached schema, got %d", cacheSize)
	}
}
