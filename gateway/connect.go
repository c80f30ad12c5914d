package gateway

import (
	"context"
	"fmt"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"golang.org/x/sync/errgroup"

	"github.com/toolbridge/toolbridge/gateway/config"
	"github.com/toolbridge/toolbridge/gateway/tool"
	"github.com/toolbridge/toolbridge/internal/conv"
)

// maxConcurrentConnects caps the connection fan-out so that a long server
// list cannot exhaust sockets.
const maxConcurrentConnects = 8

// Connect establishes one connection per distinct server identity, fetches
// every surviving server's tool catalog concurrently and merges the adapted
// tools into a fresh registry.  A server that fails to connect or to list its
// tools contributes nothing and does not fail the run; its error is retained
// on the session.  When ctx is cancellable the session's teardown is invoked
// automatically once the context fires.
func (s *Service) Connect(ctx context.Context, servers ...*config.Server) *Session {
	session := newSession()

	group := &errgroup.Group{}
	group.SetLimit(maxConcurrentConnects)
	for _, server := range s.dedupe(servers) {
		server := server
		group.Go(func() error {
			s.connectOne(ctx, server, session)
			return nil
		})
	}
	_ = group.Wait()

	session.bind(ctx)
	return session
}

// dedupe drops repeated server identities, keeping the first occurrence, and
// applies descriptor defaults.  Invalid descriptors are skipped.
func (s *Service) dedupe(servers []*config.Server) []*config.Server {
	seen := make(map[string]bool, len(servers))
	out := make([]*config.Server, 0, len(servers))
	for _, server := range servers {
		if server == nil {
			continue
		}
		if err := server.Validate(); err != nil {
			s.debugf("skipping server: %v", err)
			continue
		}
		server.Init()
		identity := server.Identity()
		if seen[identity] {
			s.debugf("duplicate server %v (%v)", server.Name, identity)
			continue
		}
		seen[identity] = true
		out = append(out, server)
	}
	return out
}

// connectOne dials a single server and merges its catalog.  All failures are
// absorbed here; the server is excluded and the error recorded.
func (s *Service) connectOne(ctx context.Context, server *config.Server, session *Session) {
	conn, err := s.dialer.Dial(ctx, server)
	if err != nil {
		s.debugf("connect %v: %v", server.Name, err)
		session.recordFailure(server, fmt.Errorf("connect %q: %w", server.Name, err))
		return
	}

	tools, err := s.fetchTools(ctx, conn)
	if err != nil {
		_ = conn.Close()
		s.debugf("load tools for %v: %v", server.Name, err)
		session.recordFailure(server, fmt.Errorf("load tools for %q: %w", server.Name, err))
		return
	}

	session.admit(newHandle(server, conn), tools)
	s.debugf("connected %v: %d tool(s)", server.Name, len(tools))
}

// fetchTools lists the server's full catalog (paging supported) and adapts
// every descriptor into a registry tool.
func (s *Service) fetchTools(ctx context.Context, conn Conn) (map[string]*tool.Tool, error) {
	catalog := make([]mcpschema.Tool, 0)
	var cursor *string
	for {
		res, err := conn.ListTools(ctx, cursor)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}

	out := make(map[string]*tool.Tool, len(catalog))
	for i := range catalog {
		entry := &catalog[i]
		descriptor := &tool.Descriptor{
			Name:        entry.Name,
			Description: conv.Dereference[string](entry.Description),
			Parameters:  inputSchemaToMap(entry.InputSchema),
			Call:        callInvoker(conn, entry.Name),
		}
		adapted, err := tool.Adapt(entry.Name, descriptor)
		if err != nil {
			s.debugf("adapt %v: %v", entry.Name, err)
			continue
		}
		out[entry.Name] = adapted
	}
	return out, nil
}

// inputSchemaToMap converts the structured wire schema into the generic tree
// the sanitizer consumes.
func inputSchemaToMap(schema mcpschema.ToolInputSchema) interface{} {
	m, err := conv.ToMap(schema)
	if err != nil {
		return nil
	}
	return m
}

// callInvoker exposes one remote tool as the descriptor's call entry point.
func callInvoker(conn Conn, name string) tool.Invoker {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		params := &mcpschema.CallToolRequestParams{
			Name:      name,
			Arguments: mcpschema.CallToolRequestParamsArguments(args),
		}
		res, err := conn.CallTool(ctx, params)
		if err != nil {
			return nil, err
		}
		if conv.Dereference[bool](res.IsError) {
			return nil, fmt.Errorf("tool %q failed: %s", name, resultText(res))
		}
		if len(res.Content) == 1 && res.Content[0].Type == "text" {
			return res.Content[0].Text, nil
		}
		return res.Content, nil
	}
}

func resultText(res *mcpschema.CallToolResult) string {
	if len(res.Content) > 0 {
		return res.Content[0].Text
	}
	return "no error detail"
}
