package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/internal/adapters/memory"
	"careerpath/internal/application"
	"careerpath/internal/application/commands"
	"careerpath/internal/domain"
)

func newTestServices() Services {
	session := application.NewCache(memory.NewStore(), 0, nil)
	durable := application.NewCache(memory.NewStore(), 0, nil)
	return Services{
		Resolver: commands.NewResolver(nil, session, nil),
		Progress: commands.NewProgressTracker(durable),
		Domains:  commands.NewDomainCache(nil, session, nil),
	}
}

func call(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text, result.IsError
}

func TestResolveProject(t *testing.T) {
	svc := newTestServices()

	text, isErr := call(t, resolveProjectHandler(svc), map[string]any{"project_id": "deep_learning_basics"})

	assert.False(t, isErr)
	assert.Contains(t, text, "Deep Learning Basics")
	assert.Contains(t, text, "resolution: synthesized via synthesized")
	assert.Contains(t, text, "[ ] task-1  Research and Planning")
}

func TestResolveProject_Selected(t *testing.T) {
	svc := newTestServices()

	text, isErr := call(t, resolveProjectHandler(svc), nil)
	assert.True(t, isErr)
	assert.Contains(t, text, "no project selected")

	_, isErr = call(t, selectProjectHandler(svc), map[string]any{"project_id": "web_dev_project_1"})
	require.False(t, isErr)

	text, isErr = call(t, resolveProjectHandler(svc), nil)
	assert.False(t, isErr)
	assert.Contains(t, text, "web_dev_project_1")
}

func TestToggleAndProgress(t *testing.T) {
	svc := newTestServices()

	text, isErr := call(t, toggleTaskHandler(svc), map[string]any{
		"project_id": "web_dev_project_1",
		"task_id":    "task-1",
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Completed Research and Planning (20% complete, 1/5)")
	assert.Contains(t, text, "next: task-2  Core Implementation")
	assert.Contains(t, text, "share:")

	text, isErr = call(t, getProgressHandler(svc), map[string]any{"project_id": "web_dev_project_1"})
	require.False(t, isErr)
	assert.Contains(t, text, "[x] task-1")
	assert.Contains(t, text, "20% (1/5)")

	text, isErr = call(t, toggleTaskHandler(svc), map[string]any{
		"project_id": "web_dev_project_1",
		"task_id":    "task-1",
		"done":       false,
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Reopened Research and Planning")
}

func TestToggleTask_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   map[string]any
		errMsg string
	}{
		{name: "missing project", args: map[string]any{"task_id": "task-1"}, errMsg: "project ID is required"},
		{name: "missing task", args: map[string]any{"project_id": "p"}, errMsg: "task ID is required"},
		{name: "unknown task", args: map[string]any{"project_id": "p", "task_id": "task-9"}, errMsg: "has no task task-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := call(t, toggleTaskHandler(newTestServices()), tt.args)
			assert.True(t, isErr)
			assert.Contains(t, text, tt.errMsg)
		})
	}
}

func TestResetProgress(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	_, err := svc.Progress.Toggle(ctx, "p", "task-1", true)
	require.NoError(t, err)

	text, isErr := call(t, resetProgressHandler(svc), map[string]any{"project_id": "p"})
	assert.False(t, isErr)
	assert.Equal(t, "Reset progress of p", text)
	assert.Empty(t, svc.Progress.Load(ctx, "p"))

	_, isErr = call(t, resetProgressHandler(svc), nil)
	assert.True(t, isErr)
}

func TestListCachedDomains(t *testing.T) {
	svc := newTestServices()

	text, _ := call(t, listCachedDomainsHandler(svc), nil)
	assert.Equal(t, "No domains cached.", text)

	require.NoError(t, svc.Domains.Save(context.Background(), []domain.Domain{
		{ID: "computer_vision", Name: "Computer Vision"},
	}, "I like cameras"))

	text, _ = call(t, listCachedDomainsHandler(svc), nil)
	assert.Contains(t, text, "computer_vision  Computer Vision")
	assert.Contains(t, text, "summary: I like cameras")
}

func TestToolNames(t *testing.T) {
	tools := []mcp.Tool{
		resolveProjectTool(),
		getProgressTool(),
		listCachedDomainsTool(),
		toggleTaskTool(),
		resetProgressTool(),
		selectProjectTool(),
	}
	want := []string{"resolve_project", "get_progress", "list_cached_domains", "toggle_task", "reset_progress", "select_project"}

	for i, tool := range tools {
		assert.Equal(t, want[i], tool.Name)
		assert.NotEmpty(t, tool.Description)
	}
	assert.Contains(t, toggleTaskTool().InputSchema.Required, "task_id")

	// registration must not panic
	RegisterTools(server.NewMCPServer("careerpath-mcp-test", "0.0.0", server.WithToolCapabilities(true)), newTestServices())
}
