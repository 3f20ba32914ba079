package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"careerpath/internal/adapters/tui/styles"
	"careerpath/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmResetModel asks before clearing a project's progress
type ConfirmResetModel struct {
	ViewState
	Project domain.Project
	Keys    ConfirmKeyMap
}

// NewConfirmResetModel creates a reset confirmation with default keys
func NewConfirmResetModel() *ConfirmResetModel {
	return &ConfirmResetModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget sets the project whose progress would be reset
func (m *ConfirmResetModel) SetTarget(p domain.Project) {
	m.Project = p
}

// Init implements tea.Model
func (m *ConfirmResetModel) Init() tea.Cmd {
	return nil
}

// Update handles y/n
func (m *ConfirmResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToChecklistMsg{} }
		case key.Matches(msg, m.Keys.Confirm):
			return m, func() tea.Msg { return ConfirmResetMsg{} }
		}
	}
	return m, nil
}

// View renders the prompt
func (m *ConfirmResetModel) View() string {
	return NewViewBuilder().
		Title("Reset progress").
		Line(styles.SectionLabel.Render("Project:")).
		Line("  " + m.Project.Title + " " + styles.MutedText.Render("("+m.Project.ID+")")).
		BlankLine().
		Line(RenderConfirmPrompt("Uncheck every task?")).
		BlankLine().
		Raw(RenderHelpLine(m.Keys.Confirm, m.Keys.Cancel)).
		String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
