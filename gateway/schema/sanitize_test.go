package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_NonSchemaInputs(t *testing.T) {
	fallback := map[string]interface{}{"type": "object", "additionalProperties": true}

	testCases := []struct {
		name  string
		input interface{}
	}{
		{name: "nil", input: nil},
		{name: "string", input: "str"},
		{name: "number", input: 123},
		{name: "bool", input: true},
		{name: "slice", input: []interface{}{"a"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualValues(t, fallback, Sanitize(tc.input))
		})
	}
}

func TestSanitize_TypeInference(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]interface{}
		expected interface{}
	}{
		{
			name:     "properties imply object",
			input:    map[string]interface{}{"properties": map[string]interface{}{}},
			expected: "object",
		},
		{
			name:     "items imply array",
			input:    map[string]interface{}{"items": map[string]interface{}{"type": "number"}},
			expected: "array",
		},
		{
			name:     "anyOf implies object",
			input:    map[string]interface{}{"anyOf": []interface{}{map[string]interface{}{"type": "string"}}},
			expected: "object",
		},
		{
			name:     "bare node defaults to object at root",
			input:    map[string]interface{}{"description": "anything"},
			expected: "object",
		},
		{
			name:     "declared type wins over inference",
			input:    map[string]interface{}{"type": "integer", "properties": map[string]interface{}{}},
			expected: "integer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := Sanitize(tc.input)
			assert.EqualValues(t, tc.expected, actual["type"])
		})
	}
}

func TestSanitize_PropertyCoercion(t *testing.T) {
	input := map[string]interface{}{
		"properties": map[string]interface{}{
			"name":  map[string]interface{}{"type": "string"},
			"bogus": nil,
			"count": "not a schema",
			"loose": map[string]interface{}{"description": "untyped leaf"},
		},
	}

	actual := Sanitize(input)
	props := actual["properties"].(map[string]interface{})

	assert.EqualValues(t, map[string]interface{}{"type": "string"}, props["bogus"])
	assert.EqualValues(t, map[string]interface{}{"type": "string"}, props["count"])
	// untyped leaf schemas default to string inside properties
	loose := props["loose"].(map[string]interface{})
	assert.EqualValues(t, "string", loose["type"])
	assert.EqualValues(t, "untyped leaf", loose["description"])
}

func TestSanitize_ArrayDefaults(t *testing.T) {
	actual := Sanitize(map[string]interface{}{"type": "array"})
	assert.EqualValues(t, map[string]interface{}{"type": "string"}, actual["items"])

	tuple := Sanitize(map[string]interface{}{
		"type":  "array",
		"items": []interface{}{map[string]interface{}{"type": "number"}, map[string]interface{}{}},
	})
	members := tuple["items"].([]interface{})
	assert.Len(t, members, 2)
	assert.EqualValues(t, "number", members[0].(map[string]interface{})["type"])
	assert.EqualValues(t, "string", members[1].(map[string]interface{})["type"])
}

func TestSanitize_AdditionalProperties(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]interface{}
		expected interface{}
	}{
		{
			name:     "absent becomes true",
			input:    map[string]interface{}{"type": "object"},
			expected: true,
		},
		{
			name:     "explicit false preserved",
			input:    map[string]interface{}{"type": "object", "properties": map[string]interface{}{}, "additionalProperties": false},
			expected: false,
		},
		{
			name:     "empty schema rewritten to true",
			input:    map[string]interface{}{"type": "object", "additionalProperties": map[string]interface{}{}},
			expected: true,
		},
		{
			name:     "typeless schema rewritten to true",
			input:    map[string]interface{}{"type": "object", "additionalProperties": map[string]interface{}{"description": "free-form"}},
			expected: true,
		},
		{
			name:     "typed schema preserved",
			input:    map[string]interface{}{"type": "object", "additionalProperties": map[string]interface{}{"type": "string"}},
			expected: map[string]interface{}{"type": "string"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := Sanitize(tc.input)
			assert.EqualValues(t, tc.expected, actual["additionalProperties"])
		})
	}
}

func TestSanitize_NullableScalar(t *testing.T) {
	actual := Sanitize(map[string]interface{}{"type": "string", "nullable": true})
	assert.EqualValues(t, []interface{}{"string", "null"}, actual["type"])
	_, present := actual["nullable"]
	assert.False(t, present, "nullable keyword must be dropped after the rewrite")
}

func TestSanitize_StripsRegistryKeywords(t *testing.T) {
	input := map[string]interface{}{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id":     "https://example.com/root",
		"$defs":   map[string]interface{}{"unused": map[string]interface{}{}},
		"type":    "object",
		"properties": map[string]interface{}{
			"nested": map[string]interface{}{
				"$id":  "https://example.com/nested",
				"type": "object",
			},
		},
		"required": []interface{}{"nested"},
		"title":    "kept",
	}

	actual := Sanitize(input)
	for _, keyword := range []string{"$schema", "$id", "$defs"} {
		_, present := actual[keyword]
		assert.False(t, present, keyword)
	}
	nested := actual["properties"].(map[string]interface{})["nested"].(map[string]interface{})
	_, present := nested["$id"]
	assert.False(t, present)

	assert.EqualValues(t, []interface{}{"nested"}, actual["required"])
	assert.EqualValues(t, "kept", actual["title"])
}

func TestSanitize_NeverAliasesInput(t *testing.T) {
	props := map[string]interface{}{
		"tags": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
	}
	input := map[string]interface{}{"type": "object", "properties": props, "required": []interface{}{"tags"}}

	first := Sanitize(input)
	second := Sanitize(input)

	// fresh containers on every call, top-level and nested
	first["type"] = "mutated"
	first["properties"].(map[string]interface{})["tags"].(map[string]interface{})["type"] = "mutated"
	first["required"].([]interface{})[0] = "mutated"

	assert.EqualValues(t, "object", input["type"])
	assert.EqualValues(t, "array", props["tags"].(map[string]interface{})["type"])
	assert.EqualValues(t, "object", second["type"])
	assert.EqualValues(t, "array", second["properties"].(map[string]interface{})["tags"].(map[string]interface{})["type"])
	assert.EqualValues(t, "tags", second["required"].([]interface{})[0])
}

func TestSanitize_UnionMembersOrderPreserved(t *testing.T) {
	input := map[string]interface{}{
		"oneOf": []interface{}{
			map[string]interface{}{"type": "string"},
			map[string]interface{}{"properties": map[string]interface{}{"id": map[string]interface{}{"type": "integer"}}},
			"garbage",
		},
	}

	actual := Sanitize(input)
	assert.EqualValues(t, "object", actual["type"])
	members := actual["oneOf"].([]interface{})
	assert.Len(t, members, 3)
	assert.EqualValues(t, "string", members[0].(map[string]interface{})["type"])
	assert.EqualValues(t, "object", members[1].(map[string]interface{})["type"])
	assert.EqualValues(t, Fallback(), members[2])
}
