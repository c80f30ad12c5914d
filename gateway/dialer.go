package gateway

import (
	"context"
	"io"

	"github.com/viant/mcp"
	protoclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"

	"github.com/toolbridge/toolbridge/gateway/config"
)

// Conn is one live tool-server connection, owned by the session that opened
// it until teardown.
type Conn interface {
	ListTools(ctx context.Context, cursor *string) (*mcpschema.ListToolsResult, error)
	CallTool(ctx context.Context, params *mcpschema.CallToolRequestParams) (*mcpschema.CallToolResult, error)
	Close() error
}

// Dialer opens a connection for one server descriptor.  The default dialer
// speaks the MCP protocol; tests substitute their own.
type Dialer interface {
	Dial(ctx context.Context, server *config.Server) (Conn, error)
}

// dialer is the production Dialer building an MCP client per endpoint.
type dialer struct {
	handler protoclient.Handler
	name    string
	version string
}

// transportType maps the configured transport kind onto the MCP client
// transport selector.
func transportType(kind string) string {
	if kind == config.TransportEventStream {
		return "sse"
	}
	return "streaming"
}

// Dial opens an MCP client for the endpoint.  Custom headers on the server
// descriptor require a transport that accepts them; callers needing header
// injection supply their own Dialer via WithDialer.
func (d *dialer) Dial(ctx context.Context, server *config.Server) (Conn, error) {
	options := &mcp.ClientOptions{
		Name:    d.name,
		Version: d.version,
		Transport: mcp.ClientTransport{
			Type:                transportType(server.Type),
			ClientTransportHTTP: mcp.ClientTransportHTTP{URL: server.URL},
		},
	}
	options.Init()
	cli, err := mcp.NewClient(d.handler, options)
	if err != nil {
		return nil, err
	}
	return &clientConn{cli: cli}, nil
}

// clientConn adapts an MCP client to the Conn contract.
type clientConn struct {
	cli mcpclient.Interface
}

func (c *clientConn) ListTools(ctx context.Context, cursor *string) (*mcpschema.ListToolsResult, error) {
	return c.cli.ListTools(ctx, cursor)
}

func (c *clientConn) CallTool(ctx context.Context, params *mcpschema.CallToolRequestParams) (*mcpschema.CallToolResult, error) {
	return c.cli.CallTool(ctx, params)
}

func (c *clientConn) Close() error {
	if closer, ok := c.cli.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
