package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/testutil"
)

func TestNewServer(t *testing.T) {
	t.Run("nil logic returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingLogic)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, _ := newTestServer(t)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingLogic)
}

func TestServer_InMemorySession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, _ := newTestServer(t)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	t.Run("tools are listed", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		require.NoError(t, err)

		names := make([]string, 0, len(tools.Tools))
		for _, tool := range tools.Tools {
			names = append(names, tool.Name)
		}
		assert.ElementsMatch(t, []string{"execute_command", "list_candidates"}, names)
	})

	t.Run("execute_command runs a command", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "execute_command",
			Arguments: map[string]any{"command": "find " + testutil.KeywordMatchingMeier},
		})
		require.NoError(t, err)
		assert.False(t, res.IsError)

		raw, err := json.Marshal(res.StructuredContent)
		require.NoError(t, err)
		var out ExecuteOutput
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, 2, out.Shown)
		assert.Contains(t, out.Feedback, "2 candidates listed!")
	})

	t.Run("rejected command is a tool error", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "execute_command",
			Arguments: map[string]any{"command": "dance"},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("candidates resource", func(t *testing.T) {
		res, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: candidatesURI})
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)

		var got []CandidateOutput
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &got))
		assert.Len(t, got, len(testutil.TypicalCandidates()))
	})
}
