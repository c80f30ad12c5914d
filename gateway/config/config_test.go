package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_InitDefaults(t *testing.T) {
	testCases := []struct {
		name         string
		server       Server
		expectedType string
		expectedName string
	}{
		{
			name:         "absent type defaults to http",
			server:       Server{URL: "https://tools.example.com/mcp"},
			expectedType: TransportStreaming,
			expectedName: "tools.example.com",
		},
		{
			name:         "unrecognized type defaults to http",
			server:       Server{URL: "https://tools.example.com/mcp", Type: "websocket"},
			expectedType: TransportStreaming,
			expectedName: "tools.example.com",
		},
		{
			name:         "sse preserved",
			server:       Server{URL: "https://tools.example.com/sse", Type: "sse", Name: "events"},
			expectedType: TransportEventStream,
			expectedName: "events",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.server.Init()
			assert.EqualValues(t, tc.expectedType, tc.server.Type)
			assert.EqualValues(t, tc.expectedName, tc.server.Name)
		})
	}
}

func TestServer_Identity(t *testing.T) {
	base := Server{URL: "https://Tools.Example.com/mcp/", Type: "http"}
	same := Server{URL: "https://tools.example.com/mcp", Type: "http"}
	otherTransport := Server{URL: "https://tools.example.com/mcp", Type: "sse"}
	otherPath := Server{URL: "https://tools.example.com/other", Type: "http"}

	assert.EqualValues(t, same.Identity(), base.Identity())
	assert.NotEqualValues(t, otherTransport.Identity(), base.Identity())
	assert.NotEqualValues(t, otherPath.Identity(), base.Identity())
}

func TestServer_Validate(t *testing.T) {
	assert.Error(t, (&Server{}).Validate())
	assert.Error(t, (&Server{URL: "   "}).Validate())
	assert.NoError(t, (&Server{URL: "https://tools.example.com"}).Validate())
}

func TestLoadAndServerList(t *testing.T) {
	dir := t.TempDir()
	location := filepath.Join(dir, "gateway.yaml")
	document := `
servers:
  items:
    - url: https://tools.example.com/mcp
      headers:
        - key: Authorization
          value: Bearer token
    - url: https://events.example.com/sse
      type: sse
      name: events
`
	require.NoError(t, os.WriteFile(location, []byte(document), 0o644))

	ctx := context.Background()
	cfg, err := Load(ctx, location)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	servers, err := cfg.ServerList(ctx)
	require.NoError(t, err)
	require.Len(t, servers, 2)

	assert.EqualValues(t, TransportStreaming, servers[0].Type)
	assert.EqualValues(t, "tools.example.com", servers[0].Name)
	require.Len(t, servers[0].Headers, 1)
	assert.EqualValues(t, "Authorization", servers[0].Headers[0].Key)
	assert.EqualValues(t, "Bearer token", servers[0].Headers[0].Value)

	assert.EqualValues(t, TransportEventStream, servers[1].Type)
	assert.EqualValues(t, "events", servers[1].Name)
}

func TestServerList_URLReference(t *testing.T) {
	dir := t.TempDir()
	listLocation := filepath.Join(dir, "servers.yaml")
	list := `
- url: https://tools.example.com/mcp
- url: https://events.example.com/sse
  type: sse
`
	require.NoError(t, os.WriteFile(listLocation, []byte(list), 0o644))

	cfg := &Config{Servers: &Group[*Server]{URL: listLocation}}
	servers, err := cfg.ServerList(context.Background())
	require.NoError(t, err)
	assert.Len(t, servers, 2)
}

func TestServerList_Empty(t *testing.T) {
	servers, err := (&Config{}).ServerList(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, servers)
}
