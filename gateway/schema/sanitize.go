package schema

// Registry-only keywords removed at every level reached by recursion; argument
// validators have no registry to resolve them against.
var strippedKeywords = map[string]bool{
	"$schema": true,
	"$id":     true,
	"$defs":   true,
}

// unionKeywords are sanitized member-by-member, order preserved.
var unionKeywords = []string{"anyOf", "oneOf", "allOf"}

// Fallback returns the permissive schema used whenever a fragment cannot be
// interpreted: an open object accepting any arguments.
func Fallback() map[string]interface{} {
	return map[string]interface{}{"type": "object", "additionalProperties": true}
}

// Sanitize rewrites an arbitrary schema tree into a well-formed one.  The
// result always carries a concrete "type", object nodes always carry an
// explicit "additionalProperties", array nodes always carry "items", and the
// returned tree shares no containers with the input.
func Sanitize(node interface{}) map[string]interface{} {
	return sanitize(node, "object")
}

// sanitize normalizes a single node.  defaultType applies when no type is
// declared and none can be inferred: "object" at the root and for union
// members, "string" for property and item values.
func sanitize(node interface{}, defaultType string) map[string]interface{} {
	src, ok := node.(map[string]interface{})
	if !ok {
		return Fallback()
	}

	out := make(map[string]interface{}, len(src)+2)
	for key, value := range src {
		if strippedKeywords[key] {
			continue
		}
		switch key {
		case "type", "nullable", "properties", "items", "anyOf", "oneOf", "allOf", "additionalProperties":
			// handled explicitly below
		default:
			out[key] = copyValue(value)
		}
	}

	resolved := resolveType(src, defaultType)

	// nullable: true on a scalar type becomes a two-element type union and the
	// keyword itself is dropped.
	if scalar, ok := resolved.(string); ok {
		if nullable, _ := src["nullable"].(bool); nullable {
			resolved = []interface{}{scalar, "null"}
		} else if raw, present := src["nullable"]; present {
			out["nullable"] = copyValue(raw)
		}
	} else if raw, present := src["nullable"]; present {
		out["nullable"] = copyValue(raw)
	}
	out["type"] = resolved

	if props, present := src["properties"]; present {
		if sanitized, ok := sanitizeProperties(props); ok {
			out["properties"] = sanitized
		}
	}

	for _, key := range unionKeywords {
		raw, present := src[key]
		if !present {
			continue
		}
		members, ok := raw.([]interface{})
		if !ok {
			continue
		}
		sanitized := make([]interface{}, 0, len(members))
		for _, member := range members {
			sanitized = append(sanitized, sanitize(member, "object"))
		}
		out[key] = sanitized
	}

	if items, present := src["items"]; present {
		out["items"] = sanitizeItems(items)
	} else if typeIs(resolved, "array") {
		out["items"] = map[string]interface{}{"type": "string"}
	}

	if typeIs(resolved, "object") {
		out["additionalProperties"] = sanitizeAdditional(src["additionalProperties"])
	} else if raw, present := src["additionalProperties"]; present {
		out["additionalProperties"] = copyValue(raw)
	}

	return out
}

// resolveType picks the declared type when present, otherwise infers one from
// structural keywords in priority order: properties, items, unions.
func resolveType(src map[string]interface{}, defaultType string) interface{} {
	switch declared := src["type"].(type) {
	case string:
		if declared != "" {
			return declared
		}
	case []interface{}:
		if len(declared) > 0 {
			return copyValue(declared)
		}
	}
	if _, ok := src["properties"]; ok {
		return "object"
	}
	if _, ok := src["items"]; ok {
		return "array"
	}
	for _, key := range unionKeywords {
		if _, ok := src[key]; ok {
			return "object"
		}
	}
	return defaultType
}

// sanitizeProperties rewrites every property value.  A value that is not
// itself a schema object (null, string, number) is coerced to a string schema
// rather than recursed into.
func sanitizeProperties(raw interface{}) (map[string]interface{}, bool) {
	props, ok := raw.(map[string]interface{})
	if !ok {
		return nil, false
	}
	out := make(map[string]interface{}, len(props))
	for name, value := range props {
		if child, ok := value.(map[string]interface{}); ok {
			out[name] = sanitize(child, "string")
		} else {
			out[name] = map[string]interface{}{"type": "string"}
		}
	}
	return out, true
}

// sanitizeItems handles both the single-schema and array-of-schemas forms.
func sanitizeItems(raw interface{}) interface{} {
	if list, ok := raw.([]interface{}); ok {
		out := make([]interface{}, 0, len(list))
		for _, member := range list {
			out = append(out, sanitize(member, "string"))
		}
		return out
	}
	return sanitize(raw, "string")
}

// sanitizeAdditional completes the additionalProperties keyword on
// object-typed nodes.  Absent means permissive; an explicit boolean is kept;
// an untyped or empty object schema is treated as "permit anything" rather
// than "permit nothing"; any other schema value passes through unchanged.
func sanitizeAdditional(raw interface{}) interface{} {
	switch value := raw.(type) {
	case nil:
		return true
	case bool:
		return value
	case map[string]interface{}:
		if len(value) == 0 {
			return true
		}
		if _, typed := value["type"]; !typed {
			return true
		}
		return copyValue(value)
	default:
		return true
	}
}

func typeIs(resolved interface{}, want string) bool {
	switch value := resolved.(type) {
	case string:
		return value == want
	case []interface{}:
		for _, member := range value {
			if s, ok := member.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}

// copyValue deep-copies passthrough keyword values so that repeated sanitizer
// runs over shared schema fragments never alias each other.
func copyValue(value interface{}) interface{} {
	switch actual := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			out[k] = copyValue(v)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(actual))
		for i, v := range actual {
			out[i] = copyValue(v)
		}
		return out
	default:
		return actual
	}
}
