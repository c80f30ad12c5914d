package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Transport kinds accepted in server descriptors.  Streaming HTTP is the
// default; unrecognized values fall back to it as well.
const (
	TransportStreaming   = "http" // streaming request/response
	TransportEventStream = "sse"  // server-pushed event stream
)

// Header is one ordered key/value pair forwarded to the server on connect.
type Header struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Server describes one tool-server endpoint.  Headers do not participate in
// identity: two entries with the same normalized URL and transport resolve to
// a single physical connection.
type Server struct {
	URL     string   `yaml:"url" json:"url"`
	Type    string   `yaml:"type,omitempty" json:"type,omitempty"`
	Name    string   `yaml:"name,omitempty" json:"name,omitempty"`
	Headers []Header `yaml:"headers,omitempty" json:"headers,omitempty"`
}

// Init applies fall-back values so that transport and display name are never
// empty.
func (s *Server) Init() {
	switch s.Type {
	case TransportStreaming, TransportEventStream:
	default:
		s.Type = TransportStreaming
	}
	if s.Name == "" {
		if parsed, err := url.Parse(s.URL); err == nil && parsed.Host != "" {
			s.Name = parsed.Host
		} else {
			s.Name = s.URL
		}
	}
}

// Validate reports descriptor problems that would make a connection attempt
// meaningless.
func (s *Server) Validate() error {
	if strings.TrimSpace(s.URL) == "" {
		return fmt.Errorf("server %q: url is required", s.Name)
	}
	return nil
}

// Identity returns the de-duplication key: the normalized URL plus the
// transport kind.  Call Init first so that Type is resolved.
func (s *Server) Identity() string {
	return normalizeURL(s.URL) + "|" + s.Type
}

// normalizeURL canonicalizes the endpoint address so that trivially different
// spellings of one endpoint compare equal.
func normalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" {
		return strings.TrimRight(trimmed, "/")
	}
	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	parsed.Fragment = ""
	return parsed.String()
}

// Group holds either inline items or a URL referencing an external document
// with the items.  Inline items take precedence.
type Group[T any] struct {
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Items []T    `yaml:"items,omitempty" json:"items,omitempty"`
}

// Config is the root gateway configuration.
type Config struct {
	Servers *Group[*Server] `yaml:"servers,omitempty" json:"servers,omitempty"`
}

// Load reads a configuration document from a local path or URL.
func Load(ctx context.Context, location string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", location, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", location, err)
	}
	return &cfg, nil
}

// Validate checks every inline server descriptor.
func (c *Config) Validate() error {
	if c == nil || c.Servers == nil {
		return nil
	}
	for _, server := range c.Servers.Items {
		if server == nil {
			continue
		}
		if err := server.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ServerList resolves the configured server descriptors, either embedded
// directly in the config or referenced via URL, with defaults applied.
func (c *Config) ServerList(ctx context.Context) ([]*Server, error) {
	if c == nil || c.Servers == nil {
		return nil, nil
	}

	items := c.Servers.Items
	if len(items) == 0 && c.Servers.URL != "" {
		fs := afs.New()
		data, err := fs.DownloadWithURL(ctx, c.Servers.URL)
		if err != nil {
			return nil, fmt.Errorf("download servers config %q: %w", c.Servers.URL, err)
		}
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse servers config %q: %w", c.Servers.URL, err)
		}
	}

	out := make([]*Server, 0, len(items))
	for _, server := range items {
		if server == nil {
			continue
		}
		if err := server.Validate(); err != nil {
			return nil, err
		}
		server.Init()
		out = append(out, server)
	}
	return out, nil
}
