package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterReadTools adds the tools that only read state.
func RegisterReadTools(s *server.MCPServer, svc Services) {
	s.AddTool(resolveProjectTool(), resolveProjectHandler(svc))
	s.AddTool(getProgressTool(), getProgressHandler(svc))
	s.AddTool(listCachedDomainsTool(), listCachedDomainsHandler(svc))
}

// --- resolve_project ---

func resolveProjectTool() mcp.Tool {
	return mcp.NewTool("resolve_project",
		mcp.WithDescription("Resolve a project id (e.g. robotics_automation_project_2) into the full project with its task checklist. Always returns a project; the resolution line says whether it was found, a domain fallback, or a synthesized placeholder."),
		mcp.WithString("project_id",
			mcp.Description("Full project id. Omit to use the selected project."),
		),
	)
}

func resolveProjectHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := svc.Resolver.ResolveSelected(ctx, req.GetString("project_id", ""))
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		formatProject(&sb, res, svc.Progress.Load(ctx, res.ID))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_progress ---

func getProgressTool() mcp.Tool {
	return mcp.NewTool("get_progress",
		mcp.WithDescription("Show the task checklist and completion percentage of a project."),
		mcp.WithString("project_id",
			mcp.Description("Full project id"),
			mcp.Required(),
		),
	)
}

func getProgressHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("project_id", "")
		if id == "" {
			return toolError(fmt.Errorf("project_id is required"))
		}

		res := svc.Resolver.Resolve(ctx, id)

		var sb strings.Builder
		formatTasks(&sb, res.Project, svc.Progress.Load(ctx, id))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_cached_domains ---

func listCachedDomainsTool() mcp.Tool {
	return mcp.NewTool("list_cached_domains",
		mcp.WithDescription("List the career domains generated earlier in this session, with the ikigai summary they came from."),
	)
}

func listCachedDomainsHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		session, ok := svc.Domains.Load(ctx)
		if !ok || len(session.Domains) == 0 {
			return mcp.NewToolResultText("No domains cached."), nil
		}

		var sb strings.Builder
		for _, d := range session.Domains {
			fmt.Fprintf(&sb, "%s  %s\n", d.ID, d.Name)
		}
		if session.IkigaiSummary != "" {
			fmt.Fprintf(&sb, "\nsummary: %s\n", session.IkigaiSummary)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
