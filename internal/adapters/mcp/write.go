package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"careerpath/internal/application/commands"
)

// RegisterWriteTools adds the tools that change progress or session state.
func RegisterWriteTools(s *server.MCPServer, svc Services) {
	s.AddTool(toggleTaskTool(), toggleTaskHandler(svc))
	s.AddTool(resetProgressTool(), resetProgressHandler(svc))
	s.AddTool(selectProjectTool(), selectProjectHandler(svc))
}

// --- toggle_task ---

func toggleTaskTool() mcp.Tool {
	return mcp.NewTool("toggle_task",
		mcp.WithDescription("Mark a project task as done or not done."),
		mcp.WithString("project_id",
			mcp.Description("Full project id"),
			mcp.Required(),
		),
		mcp.WithString("task_id",
			mcp.Description("Task id, e.g. task-1"),
			mcp.Required(),
		),
		mcp.WithBoolean("done",
			mcp.Description("Completion state to set (default true)"),
		),
	)
}

func toggleTaskHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewToggleTaskCommand(svc.Resolver, svc.Progress,
			req.GetString("project_id", ""),
			req.GetString("task_id", ""),
			req.GetBool("done", true))

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s (%d%% complete, %d/%d)\n", result.Message,
			result.Summary.Percent, result.Summary.Completed, result.Summary.Total)
		if result.Summary.Next != nil {
			fmt.Fprintf(&sb, "next: %s  %s\n", result.Summary.Next.ID, result.Summary.Next.Title)
		}
		if result.Post != "" {
			fmt.Fprintf(&sb, "\nshare: %s\n", result.Post)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- reset_progress ---

func resetProgressTool() mcp.Tool {
	return mcp.NewTool("reset_progress",
		mcp.WithDescription("Clear every completed task of a project."),
		mcp.WithString("project_id",
			mcp.Description("Full project id"),
			mcp.Required(),
		),
	)
}

func resetProgressHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("project_id", "")
		if err := svc.Progress.Reset(ctx, id); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Reset progress of %s", id)), nil
	}
}

// --- select_project ---

func selectProjectTool() mcp.Tool {
	return mcp.NewTool("select_project",
		mcp.WithDescription("Remember a project as the current one for this session."),
		mcp.WithString("project_id",
			mcp.Description("Full project id"),
			mcp.Required(),
		),
	)
}

func selectProjectHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("project_id", "")
		if err := svc.Resolver.SelectProject(ctx, id); err != nil {
			return toolError(err)
		}
		res := svc.Resolver.Resolve(ctx, id)
		return mcp.NewToolResultText(fmt.Sprintf("Selected %s (%s)", id, res.Project.Title)), nil
	}
}
