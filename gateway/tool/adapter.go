package tool

import (
	"fmt"
	"reflect"

	"github.com/toolbridge/toolbridge/gateway/schema"
)

// Adapt normalizes one raw descriptor into a registry Tool: the parameter
// schema is located and sanitized, a structural validator type is derived from
// the sanitized tree, and the invocation entry point is resolved by probing
// call, execute, run and invoke in that order.
func Adapt(name string, descriptor *Descriptor) (*Tool, error) {
	if descriptor == nil {
		return nil, fmt.Errorf("tool %q: nil descriptor", name)
	}

	if isGraphQLQuery(name) {
		descriptor = descriptor.wrap(withGraphQLVariables)
	}

	invoke := resolveInvoker(descriptor)
	if invoke == nil {
		return nil, fmt.Errorf("tool %q: descriptor carries no invocation entry point", name)
	}

	result := &Tool{
		Name:        name,
		Description: descriptor.Description,
		invoke:      invoke,
	}

	// The GraphQL rewrite discards whatever schema the server declared and
	// forces the fixed query/variables_json contract.
	if isGraphQLQuery(name) {
		result.Schema = graphQLParameterSchema()
		result.Params = graphQLParamsType
		return result, nil
	}

	raw := locateSchema(descriptor.Parameters)
	result.Schema = schema.Sanitize(raw)

	params, err := TypeOf(result.Schema)
	if err != nil {
		// Degrade to a permissive map validator and keep the original schema
		// around for introspection.
		result.Params = permissiveParamsType
		result.RawSchema = raw
		return result, nil
	}
	result.Params = params
	return result, nil
}

var permissiveParamsType = reflect.TypeOf(map[string]interface{}{})

// resolveInvoker probes the duck-typed entry points, first present wins.
func resolveInvoker(descriptor *Descriptor) Invoker {
	for _, candidate := range descriptor.entryPoints() {
		if candidate != nil {
			return candidate
		}
	}
	return nil
}

// locateSchema prefers a nested parameterSchema.jsonSchema sub-tree when the
// descriptor wraps the actual schema one level deeper.
func locateSchema(parameters interface{}) interface{} {
	if wrapper, ok := parameters.(map[string]interface{}); ok {
		if nested, ok := wrapper["jsonSchema"].(map[string]interface{}); ok {
			return nested
		}
	}
	return parameters
}
