package tool

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/viant/x"
)

// typeRegistry holds dynamic Go types generated from sanitized schemas.
var typeRegistry = x.NewRegistry()

// Registry returns the registry of dynamic validator types.
func Registry() *x.Registry {
	return typeRegistry
}

// RegisterType registers a Go type for schema-based validation.
func RegisterType(t reflect.Type, options ...x.Option) {
	typeRegistry.Register(x.NewType(t, options...))
}

// TypeOf converts a sanitized parameter schema into a dynamically generated
// struct type mirroring the schema's shape: required object keys become
// mandatory fields, optional keys get omitempty, array element types follow
// "items" and union shapes collapse to permissive interface values.
//
// reflect.StructOf panics on field sets it cannot express (duplicate or
// unexportable names); those panics are converted into an error so that the
// adapter can fall back to a permissive validator.
func TypeOf(sanitized map[string]interface{}) (result reflect.Type, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("build validator type: %v", r)
		}
	}()

	properties, _ := sanitized["properties"].(map[string]interface{})
	if len(properties) == 0 {
		if hasUnion(sanitized) {
			// "any of these shapes" acceptance
			return permissiveParamsType, nil
		}
		return reflect.StructOf([]reflect.StructField{}), nil
	}

	fields, err := buildFields(properties, requiredKeys(sanitized))
	if err != nil {
		return nil, err
	}

	result = reflect.StructOf(fields)
	// Keep the generated type registered so it can be resolved elsewhere, for
	// example when coercing raw JSON arguments into the validator shape.
	RegisterType(result)
	return result, nil
}

func hasUnion(node map[string]interface{}) bool {
	for _, key := range []string{"anyOf", "oneOf", "allOf"} {
		if _, ok := node[key]; ok {
			return true
		}
	}
	return false
}

func requiredKeys(node map[string]interface{}) []string {
	raw, _ := node["required"].([]interface{})
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if name, ok := item.(string); ok {
			out = append(out, name)
		}
	}
	return out
}

func buildFields(properties map[string]interface{}, required []string) ([]reflect.StructField, error) {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	requiredSet := make(map[string]struct{}, len(required))
	for _, name := range required {
		requiredSet[name] = struct{}{}
	}

	var fields []reflect.StructField
	for _, name := range names {
		def, _ := properties[name].(map[string]interface{})
		fieldType, err := typeForDef(def)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fieldName, err := exportName(name)
		if err != nil {
			return nil, err
		}
		tag := name
		if _, ok := requiredSet[name]; !ok {
			tag += ",omitempty"
		}
		fields = append(fields, reflect.StructField{
			Name: fieldName,
			Type: fieldType,
			Tag:  reflect.StructTag(fmt.Sprintf("json:%q", tag)),
		})
	}
	return fields, nil
}

func typeForDef(def map[string]interface{}) (reflect.Type, error) {
	if def == nil {
		return anyType, nil
	}
	if hasUnion(def) {
		return anyType, nil
	}
	switch scalarType(def["type"]) {
	case "string":
		if format, ok := def["format"].(string); ok && (format == "date-time" || format == "date") {
			return reflect.TypeOf(time.Time{}), nil
		}
		return reflect.TypeOf(""), nil
	case "integer":
		return reflect.TypeOf(int64(0)), nil
	case "number":
		return reflect.TypeOf(float64(0)), nil
	case "boolean":
		return reflect.TypeOf(true), nil
	case "object":
		nested, _ := def["properties"].(map[string]interface{})
		if len(nested) == 0 {
			return permissiveParamsType, nil
		}
		fields, err := buildFields(nested, requiredKeys(def))
		if err != nil {
			return nil, err
		}
		nestedType := reflect.StructOf(fields)
		RegisterType(nestedType)
		return nestedType, nil
	case "array":
		switch items := def["items"].(type) {
		case map[string]interface{}:
			itemType, err := typeForDef(items)
			if err != nil {
				return nil, err
			}
			return reflect.SliceOf(itemType), nil
		case []interface{}:
			// tuple form: accept any element shape
			return reflect.SliceOf(anyType), nil
		}
		return reflect.SliceOf(anyType), nil
	default:
		return anyType, nil
	}
}

var anyType = reflect.TypeOf(new(interface{})).Elem()

// scalarType extracts the effective scalar type, taking the first non-null
// member when the sanitizer produced a type union such as ["string","null"].
func scalarType(raw interface{}) string {
	switch actual := raw.(type) {
	case string:
		return actual
	case []interface{}:
		for _, member := range actual {
			if s, ok := member.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}

// exportName derives an exported Go identifier from a JSON property name.
func exportName(name string) (string, error) {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			upperNext = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" || !unicode.IsLetter(rune(out[0])) {
		return "", fmt.Errorf("property %q cannot be mapped to an exported field", name)
	}
	return out, nil
}
