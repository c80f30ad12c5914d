// Package gateway connects to a set of independently operated tool servers,
// normalizes their advertised catalogs into one registry consumable by an LLM
// tool-calling runtime and manages connection lifecycle.  Connect fans out one
// connection per distinct server identity; per-server failures are isolated
// and recorded on the returned Session, whose Close tears every connection
// down exactly once.
package gateway
