package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/core/domain"
)

// ExecuteInput is the input schema for the execute_command tool.
type ExecuteInput struct {
	Command string `json:"command" jsonschema:"a Findr command line, e.g. 'find alice' or 'stage 1 Interview'"`
}

// ExecuteOutput is the output schema for the execute_command tool.
type ExecuteOutput struct {
	Feedback string `json:"feedback"`
	Error    string `json:"error,omitempty"`
	Shown    int    `json:"shown"`
}

// ListInput is the input schema for the list_candidates tool.
type ListInput struct {
	Stage    string `json:"stage,omitempty" jsonschema:"only candidates at this stage (Applied, Interview, Offer, Rejected)"`
	Tag      string `json:"tag,omitempty" jsonschema:"only candidates carrying this tag"`
	Filtered bool   `json:"filtered,omitempty" jsonschema:"list the current filtered view instead of every candidate"`
}

// ListOutput is the output schema for the list_candidates tool.
type ListOutput struct {
	Candidates []CandidateOutput `json:"candidates"`
	Count      int               `json:"count"`
}

// CandidateOutput represents a single candidate.
type CandidateOutput struct {
	Index   int      `json:"index"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Stage   string   `json:"stage"`
	Tags    []string `json:"tags"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "execute_command",
		Description: "Run a Findr command such as add, edit, delete, find, stage or clear",
	}, s.handleExecute)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_candidates",
		Description: "List candidates, optionally by stage or tag",
	}, s.handleList)
}

// handleExecute handles the execute_command tool invocation.
// Rejected commands are reported as tool errors, not protocol errors.
func (s *Server) handleExecute(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExecuteInput,
) (*mcp.CallToolResult, ExecuteOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.ports.Logic.Execute(ctx, input.Command)
	shown := len(s.ports.Logic.FilteredCandidateList())
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		}, ExecuteOutput{Error: err.Error(), Shown: shown}, nil
	}

	feedback := result.Feedback
	if result.ShowHelp {
		feedback = feedback + "\n\n" + usageText()
	}
	return nil, ExecuteOutput{Feedback: feedback, Shown: shown}, nil
}

// handleList handles the list_candidates tool invocation.
func (s *Server) handleList(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	preds, err := listPredicates(input)
	if err != nil {
		return nil, ListOutput{}, err
	}

	s.mu.Lock()
	source := s.ports.Logic.Findr().Candidates()
	if input.Filtered {
		source = s.ports.Logic.FilteredCandidateList()
	}
	s.mu.Unlock()

	output := ListOutput{Candidates: []CandidateOutput{}}
	for i, c := range source {
		if !matchesAll(c, preds) {
			continue
		}
		output.Candidates = append(output.Candidates, toOutput(i+1, c))
	}
	output.Count = len(output.Candidates)
	return nil, output, nil
}

func listPredicates(input ListInput) ([]domain.Predicate, error) {
	var preds []domain.Predicate
	if input.Stage != "" {
		stage, err := domain.ParseStage(input.Stage)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", input.Stage, err)
		}
		preds = append(preds, domain.AtStage{Stage: stage})
	}
	if input.Tag != "" {
		tag, err := domain.NewTag(input.Tag)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", input.Tag, err)
		}
		preds = append(preds, domain.HasTag{Tag: tag})
	}
	return preds, nil
}

func matchesAll(c domain.Candidate, preds []domain.Predicate) bool {
	for _, p := range preds {
		if !p.Test(c) {
			return false
		}
	}
	return true
}

// toOutput converts c; index is its one-based position in the listed source.
func toOutput(index int, c domain.Candidate) CandidateOutput {
	tags := make([]string, 0, len(c.Tags()))
	for _, t := range c.Tags() {
		tags = append(tags, t.Name())
	}
	return CandidateOutput{
		Index:   index,
		Name:    c.Name().String(),
		Phone:   c.Phone().String(),
		Email:   c.Email().String(),
		Address: c.Address().String(),
		Stage:   c.Stage().String(),
		Tags:    tags,
	}
}

func usageText() string {
	usages := make([]string, 0, len(commands.All()))
	for _, info := range commands.All() {
		usages = append(usages, info.Usage)
	}
	return strings.Join(usages, "\n\n")
}
