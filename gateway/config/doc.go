// Package config defines the YAML/JSON configuration model describing the
// tool-server endpoints the gateway connects to, along with helpers to load
// a configuration from a local path or URL and to normalize server identity
// for connection de-duplication.
package config
