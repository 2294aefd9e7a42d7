package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Findr resources.
	uriScheme = "findr://"

	candidatesURI = uriScheme + "candidates"
	tagsURI       = uriScheme + "tags"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         candidatesURI,
		Name:        "candidates",
		Description: "Every candidate in the candidate book",
		MIMEType:    "application/json",
	}, s.handleCandidatesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         tagsURI,
		Name:        "tags",
		Description: "The registered tags",
		MIMEType:    "application/json",
	}, s.handleTagsResource)
}

// handleCandidatesResource returns all candidates as JSON.
func (s *Server) handleCandidatesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	candidates := s.ports.Logic.Findr().Candidates()
	s.mu.Unlock()

	infos := make([]CandidateOutput, len(candidates))
	for i, c := range candidates {
		infos[i] = toOutput(i+1, c)
	}
	return jsonResult(req.Params.URI, infos)
}

// handleTagsResource returns the tag names as JSON.
func (s *Server) handleTagsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	tags := s.ports.Logic.Findr().Tags()
	s.mu.Unlock()

	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name()
	}
	return jsonResult(req.Params.URI, names)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
