package gateway

import (
	"fmt"
	"io"

	protoclient "github.com/viant/mcp-protocol/client"
)

const (
	defaultClientName    = "toolbridge"
	defaultClientVersion = "0.1.0"
)

// Service bundles the dialer, the client-side protocol handler and the
// diagnostics sink used by every Connect invocation.  A zero-option Service
// dials real MCP endpoints with a no-op callback handler.
type Service struct {
	dialer      Dialer
	handler     protoclient.Handler
	debugWriter io.Writer
	name        string
	version     string
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithDialer overrides how connections are opened; used by tests and by
// callers needing custom transports or header injection.
func WithDialer(d Dialer) Option {
	return func(s *Service) { s.dialer = d }
}

// WithClientHandler overrides the default no-op handler used for
// server-initiated callbacks on outgoing connections.
func WithClientHandler(handler protoclient.Handler) Option {
	return func(s *Service) { s.handler = handler }
}

// WithDebugWriter directs connection diagnostics to the supplied writer.
func WithDebugWriter(w io.Writer) Option {
	return func(s *Service) { s.debugWriter = w }
}

// WithClientInfo sets the name/version advertised to tool servers.
func WithClientInfo(name, version string) Option {
	return func(s *Service) {
		s.name = name
		s.version = version
	}
}

// New constructs a service instance with defaults applied.
func New(opts ...Option) *Service {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.name == "" {
		svc.name = defaultClientName
	}
	if svc.version == "" {
		svc.version = defaultClientVersion
	}
	if svc.handler == nil {
		svc.handler = newClientHandler()
	}
	if svc.dialer == nil {
		svc.dialer = &dialer{handler: svc.handler, name: svc.name, version: svc.version}
	}
	return svc
}

// debugf emits a formatted diagnostic line when a debug writer is configured.
func (s *Service) debugf(format string, args ...interface{}) {
	if s == nil || s.debugWriter == nil {
		return
	}
	_, _ = fmt.Fprintf(s.debugWriter, "[gateway] "+format+"\n", args...)
}
