package tool

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
)

// graphQLQuerySuffix marks provider tools whose GraphQL variables must travel
// as a JSON-encoded string because the hosting runtime cannot pass nested
// objects through the tool-argument boundary.
const graphQLQuerySuffix = "_graphql_query"

func isGraphQLQuery(name string) bool {
	return strings.HasSuffix(name, graphQLQuerySuffix)
}

// graphQLParameterSchema is the fixed contract substituted for every
// *_graphql_query tool irrespective of the schema its server declared.
func graphQLParameterSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "GraphQL query string",
			},
			"variables_json": map[string]interface{}{
				"type":        "string",
				"description": "GraphQL variables as a JSON-encoded object",
				"default":     "{}",
			},
		},
		"required":             []interface{}{"query", "variables_json"},
		"additionalProperties": false,
	}
}

type graphQLParams struct {
	Query         string `json:"query"`
	VariablesJSON string `json:"variables_json"`
}

var graphQLParamsType = reflect.TypeOf(graphQLParams{})

// withGraphQLVariables wraps an entry point so that, before delegation, a
// parseable variables_json string is decoded and injected as variables.  An
// absent variables_json is defaulted to "{}"; a malformed or non-string one is
// passed through untouched and the call proceeds without injected variables.
// The caller's argument map is never mutated.
func withGraphQLVariables(inner Invoker) Invoker {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		forwarded := make(map[string]interface{}, len(args)+2)
		for key, value := range args {
			forwarded[key] = value
		}
		if _, present := forwarded["variables"]; !present {
			raw, supplied := forwarded["variables_json"]
			if !supplied {
				forwarded["variables_json"] = "{}"
			} else if encoded, ok := raw.(string); ok {
				var variables map[string]interface{}
				if err := json.Unmarshal([]byte(encoded), &variables); err == nil {
					forwarded["variables"] = variables
				}
			}
		}
		return inner(ctx, forwarded)
	}
}
