// Package fault turns raw failure messages into user-facing explanations with
// actionable suggestions.  Classification runs an ordered rule table where the
// first matching pattern wins; rule order therefore encodes priority and is
// covered by tests directly.
package fault
