// Package schema normalizes JSON-Schema-like trees advertised by remote tool
// servers into a shape that strict argument validators accept.  Sanitize is
// total and never mutates its input; malformed fragments degrade to a
// permissive object schema instead of failing.
package schema
