package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"careerpath/internal/adapters/tui/views"
	"careerpath/internal/application/commands"
)

// ViewState represents the current view
type ViewState int

const (
	ViewChecklist ViewState = iota
	ViewConfirmReset
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state     ViewState
	checklist *views.ChecklistModel
	confirm   *views.ConfirmResetModel
	help      *views.HelpModel

	width  int
	height int
}

// NewApp creates a checklist app for one project
func NewApp(ctx context.Context, resolver *commands.Resolver, tracker *commands.ProgressTracker, projectID string) *App {
	return &App{
		state:     ViewChecklist,
		checklist: views.NewChecklistModel(ctx, resolver, tracker, projectID),
		confirm:   views.NewConfirmResetModel(),
		help:      views.NewHelpModel(),
	}
}

// Checklist exposes the checklist view, mainly for tests
func (a *App) Checklist() *views.ChecklistModel {
	return a.checklist
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.checklist.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.checklist.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToConfirmResetMsg:
		a.state = ViewConfirmReset
		a.confirm.SetTarget(msg.Project)
		return a, nil

	case views.SwitchToChecklistMsg:
		a.state = ViewChecklist
		return a, nil

	case views.ConfirmResetMsg:
		a.state = ViewChecklist
		return a, a.checklist.Reset()

	// results of async work always belong to the checklist
	case views.ProjectLoadedMsg, views.ToggledMsg, views.ResetDoneMsg, views.CopiedMsg, views.ErrMsg:
		_, cmd := a.checklist.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewChecklist:
		_, cmd = a.checklist.Update(msg)
	case ViewConfirmReset:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirmReset:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.checklist.View()
	}
}
