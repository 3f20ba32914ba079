package mcp

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"careerpath/internal/application/commands"
	"careerpath/internal/domain"
)

// Services are the use cases the tools call into
type Services struct {
	Resolver *commands.Resolver
	Progress *commands.ProgressTracker
	Domains  *commands.DomainCache
}

// RegisterTools adds every project and progress tool to the MCP server.
func RegisterTools(s *server.MCPServer, svc Services) {
	RegisterReadTools(s, svc)
	RegisterWriteTools(s, svc)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatProject(sb *strings.Builder, res commands.Resolution, progress domain.Progress) {
	p := res.Project
	fmt.Fprintf(sb, "%s  %s\n", p.ID, p.Title)
	fmt.Fprintf(sb, "domain: %s  difficulty: %s", p.Domain, p.Difficulty)
	if p.EstimatedHours > 0 {
		fmt.Fprintf(sb, "  hours: %s", p.Hours())
	}
	fmt.Fprintf(sb, "\nresolution: %s via %s", res.Outcome, res.Source)
	if res.Unavailable() {
		fmt.Fprintf(sb, " (backend unavailable: %v)", res.BackendErr)
	}
	sb.WriteString("\n")

	if p.Description != "" {
		fmt.Fprintf(sb, "\n%s\n", p.Description)
	}
	if len(p.SkillsRequired) > 0 {
		fmt.Fprintf(sb, "skills: %s\n", strings.Join(p.SkillsRequired, ", "))
	}

	sb.WriteString("\n")
	formatTasks(sb, p, progress)

	for _, l := range p.ResourceLinks {
		fmt.Fprintf(sb, "resource: %s  %s\n", l.Title, l.URL)
	}
}

func formatTasks(sb *strings.Builder, p domain.Project, progress domain.Progress) {
	for _, t := range p.SortedTasks() {
		mark := " "
		if progress[t.ID] {
			mark = "x"
		}
		fmt.Fprintf(sb, "[%s] %s  %s\n", mark, t.ID, t.Title)
	}
	fmt.Fprintf(sb, "%s\n", domain.ProgressLine(domain.Summarize(p, progress), 20))
}
