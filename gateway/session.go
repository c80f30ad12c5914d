package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/toolbridge/toolbridge/gateway/config"
	"github.com/toolbridge/toolbridge/gateway/matcher"
	"github.com/toolbridge/toolbridge/gateway/tool"
	"github.com/toolbridge/toolbridge/internal/syncmap"
)

// Handle is one live, per-server connection.  It is created during Connect
// and disconnected exactly once, either through Session.Close or through the
// bound cancellation signal.
type Handle struct {
	ID       string
	Name     string
	Identity string

	conn Conn
	once sync.Once
}

func newHandle(server *config.Server, conn Conn) *Handle {
	return &Handle{
		ID:       uuid.New().String(),
		Name:     server.Name,
		Identity: server.Identity(),
		conn:     conn,
	}
}

// Close disconnects the handle.  Further invocations have no effect.
func (h *Handle) Close() error {
	var err error
	h.once.Do(func() {
		err = h.conn.Close()
	})
	return err
}

// ServerError records one server's connect or catalog-fetch failure.  The
// failure is diagnostic only; it never propagates out of Connect.
type ServerError struct {
	Server *config.Server
	Err    error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %v", e.Server.Name, e.Err)
}

func (e *ServerError) Unwrap() error { return e.Err }

// Session is the outcome of one Connect run: the merged tool registry, the
// surviving connection handles and an idempotent teardown.  The registry is
// not mutated after Connect returns.
type Session struct {
	registry *syncmap.Map[*tool.Tool]

	mu       sync.Mutex
	handles  []*Handle
	failures []*ServerError

	closeOnce sync.Once
	closeErr  error
	unbind    func() bool
}

func newSession() *Session {
	return &Session{registry: syncmap.NewRegistry[*tool.Tool]()}
}

// admit merges one server's catalog as a single atomic batch and takes
// ownership of its handle.
func (s *Session) admit(handle *Handle, tools map[string]*tool.Tool) {
	s.registry.SetBatch(tools)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handles = append(s.handles, handle)
}

func (s *Session) recordFailure(server *config.Server, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, &ServerError{Server: server, Err: err})
}

// bind arranges for Close to run exactly once when ctx is cancelled.  Safe to
// combine with an explicit Close call.
func (s *Session) bind(ctx context.Context) {
	if ctx == nil || ctx.Done() == nil {
		return
	}
	// published under mu: on an already-cancelled context the AfterFunc
	// callback may run Close concurrently with this assignment
	stop := context.AfterFunc(ctx, func() { _ = s.Close() })
	s.mu.Lock()
	s.unbind = stop
	s.mu.Unlock()
}

// Registry exposes the merged name-to-tool mapping.
func (s *Session) Registry() *syncmap.Map[*tool.Tool] { return s.registry }

// Tool returns a registered tool by name.
func (s *Session) Tool(name string) (*tool.Tool, bool) {
	return s.registry.Lookup(name)
}

// Tools returns every registered tool.
func (s *Session) Tools() []*tool.Tool { return s.registry.List() }

// ToolNames returns all registered tool names in lexical order.
func (s *Session) ToolNames() []string { return s.registry.Keys() }

// MatchTools returns the tools whose name satisfies the pattern, in lexical
// name order.
func (s *Session) MatchTools(pattern string) []*tool.Tool {
	var out []*tool.Tool
	for _, name := range s.registry.Keys() {
		if !matcher.Match(pattern, name) {
			continue
		}
		if entry, ok := s.registry.Lookup(name); ok {
			out = append(out, entry)
		}
	}
	return out
}

// Handles returns the surviving per-server connection handles.
func (s *Session) Handles() []*Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Handle, len(s.handles))
	copy(out, s.handles)
	return out
}

// Errors returns the per-server failures recorded during Connect.
func (s *Session) Errors() []*ServerError {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*ServerError, len(s.failures))
	copy(out, s.failures)
	return out
}

// Close disconnects every handle.  It is safe to call multiple times and from
// request-cancellation paths; each connection is disconnected exactly once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		unbind := s.unbind
		s.mu.Unlock()
		if unbind != nil {
			unbind()
		}
		var errs []error
		for _, handle := range s.Handles() {
			if err := handle.Close(); err != nil {
				errs = append(errs, fmt.Errorf("disconnect %q: %w", handle.Name, err))
			}
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}
