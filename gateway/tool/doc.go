// Package tool normalizes raw, per-server tool descriptors into registry
// Tools with a sanitized parameter schema, a structural argument validator and
// exactly one invocation entry point.  It also applies the provider-specific
// rewrite for *_graphql_query tools whose GraphQL variables travel as a
// JSON-encoded string.
package tool
