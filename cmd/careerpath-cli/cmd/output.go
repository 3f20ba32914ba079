package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"careerpath/internal/application"
	"careerpath/internal/application/commands"
	"careerpath/internal/domain"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.Faint)
)

func printError(err error) {
	var valErr *application.ValidationError
	switch {
	case errors.As(err, &valErr):
		errorColor.Fprintf(os.Stderr, "Invalid input: ")
		fmt.Fprintln(os.Stderr, valErr.Message)
	case errors.Is(err, application.ErrNoProjectSelected):
		errorColor.Fprintf(os.Stderr, "No project selected. ")
		fmt.Fprintln(os.Stderr, "Pass a project id or run `careerpath-cli project select <id>`.")
	default:
		errorColor.Fprintf(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
	}
}

// printResolution notes when the project shown is not the one asked for
func printResolution(res commands.Resolution) {
	switch {
	case res.Unavailable():
		warnColor.Printf("Backend unavailable (%v); showing a placeholder project.\n", res.BackendErr)
	case res.Outcome == commands.OutcomeSynthesized:
		warnColor.Println("Project not found; showing a placeholder project.")
	case res.Outcome == commands.OutcomeFallback:
		warnColor.Println("No exact match in the domain; showing its first project.")
	}
}

func printProject(p domain.Project, progress domain.Progress) {
	titleColor.Println(p.Title)
	dimColor.Printf("%s · %s · %s", p.ID, p.Domain, p.Difficulty)
	if p.EstimatedHours > 0 {
		dimColor.Printf(" · ~%sh", p.Hours())
	}
	fmt.Println()

	if p.Description != "" {
		fmt.Println(p.Description)
	}
	if len(p.SkillsRequired) > 0 {
		fmt.Printf("Skills: %s\n", strings.Join(p.SkillsRequired, ", "))
	}

	fmt.Println()
	printTasks(p, progress)

	if len(p.ResourceLinks) > 0 {
		fmt.Println()
		fmt.Println("Resources:")
		for i, l := range p.ResourceLinks {
			fmt.Printf("  %d. %s  %s\n", i+1, l.Title, dimColor.Sprint(l.URL))
		}
	}
}

func printTasks(p domain.Project, progress domain.Progress) {
	for _, t := range p.SortedTasks() {
		if progress[t.ID] {
			successColor.Printf("  [x] ")
		} else {
			fmt.Printf("  [ ] ")
		}
		fmt.Printf("%-8s %s\n", t.ID, t.Title)
	}

	summary := domain.Summarize(p, progress)
	fmt.Println()
	fmt.Println(domain.ProgressLine(summary, 20))
	if summary.Next != nil {
		dimColor.Printf("Next: %s\n", summary.Next.Title)
	} else if summary.Total > 0 {
		successColor.Println("All tasks complete!")
	}
}
