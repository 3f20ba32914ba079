package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"careerpath/internal/adapters/tui/styles"
	"careerpath/internal/application/commands"
	"careerpath/internal/domain"
)

// ChecklistKeyMap defines key bindings for the checklist view
type ChecklistKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Share   key.Binding
	Reset   key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap
func (k ChecklistKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Share, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k ChecklistKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Share, k.Reset, k.Refresh},
		{k.Help, k.Quit},
	}
}

var ChecklistKeys = ChecklistKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter", "x"),
		key.WithHelp("space", "toggle"),
	),
	Share: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "copy post"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refetch"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var errTaskOpen = errors.New("finish the task before sharing it")

// ChecklistModel shows a project's tasks and lets the user check them off
type ChecklistModel struct {
	ViewState

	ctx       context.Context
	resolver  *commands.Resolver
	tracker   *commands.ProgressTracker
	projectID string

	resolution commands.Resolution
	progress   domain.Progress
	tasks      []domain.Task
	cursor     int
	loading    bool
	lastPost   string

	spinner spinner.Model
	help    help.Model

	// Copy writes the share post somewhere the user can paste it from
	Copy func(string) error
}

// NewChecklistModel creates a checklist for the given project id
func NewChecklistModel(ctx context.Context, resolver *commands.Resolver, tracker *commands.ProgressTracker, projectID string) *ChecklistModel {
	return &ChecklistModel{
		ctx:       ctx,
		resolver:  resolver,
		tracker:   tracker,
		projectID: strings.TrimSpace(projectID),
		progress:  domain.Progress{},
		loading:   true,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.MutedText)),
		help:      help.New(),
		Copy:      clipboard.WriteAll,
	}
}

// Init starts resolving the project
func (m *ChecklistModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m *ChecklistModel) load() tea.Msg {
	res := m.resolver.Resolve(m.ctx, m.projectID)
	return ProjectLoadedMsg{
		Resolution: res,
		Progress:   m.tracker.Load(m.ctx, m.projectID),
	}
}

// Reload drops the cached project and resolves it again
func (m *ChecklistModel) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		if err := m.resolver.Forget(m.ctx, m.projectID); err != nil {
			return ErrMsg{err}
		}
		return m.load()
	})
}

// Reset wipes the saved progress for the project
func (m *ChecklistModel) Reset() tea.Cmd {
	return func() tea.Msg {
		if err := m.tracker.Reset(m.ctx, m.projectID); err != nil {
			return ErrMsg{err}
		}
		return ResetDoneMsg{}
	}
}

func (m *ChecklistModel) toggle(task domain.Task) tea.Cmd {
	done := !m.progress[task.ID]
	cmd := commands.NewToggleTaskCommand(m.resolver, m.tracker, m.projectID, task.ID, done)
	return func() tea.Msg {
		result, err := cmd.Execute(m.ctx)
		if err != nil {
			return ErrMsg{err}
		}
		return ToggledMsg{result}
	}
}

func (m *ChecklistModel) share() tea.Cmd {
	task, ok := m.selectedTask()
	if !ok {
		return nil
	}
	if !m.progress[task.ID] {
		return func() tea.Msg { return ErrMsg{errTaskOpen} }
	}
	post := domain.ComposeProgressPost(m.resolution.Project.Title, task.Title)
	return func() tea.Msg {
		if err := m.Copy(post); err != nil {
			return ErrMsg{fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return CopiedMsg{post}
	}
}

// Update handles messages for the checklist
func (m *ChecklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProjectLoadedMsg:
		m.loading = false
		m.resolution = msg.Resolution
		m.progress = msg.Progress
		m.tasks = msg.Resolution.Project.SortedTasks()
		if m.cursor >= len(m.tasks) {
			m.cursor = max(len(m.tasks)-1, 0)
		}
		return m, nil

	case ToggledMsg:
		m.progress[msg.Result.Task.ID] = msg.Result.Done
		m.lastPost = msg.Result.Post
		m.SetMessage(msg.Result.Message, false)
		return m, nil

	case ResetDoneMsg:
		m.progress = domain.Progress{}
		m.lastPost = ""
		m.SetMessage("Progress reset", false)
		return m, nil

	case CopiedMsg:
		m.lastPost = msg.Post
		m.SetMessage("Post copied to clipboard", false)
		return m, nil

	case ErrMsg:
		m.loading = false
		m.SetError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			if key.Matches(msg, ChecklistKeys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, ChecklistKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ChecklistKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, ChecklistKeys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, ChecklistKeys.Toggle):
			if task, ok := m.selectedTask(); ok {
				return m, m.toggle(task)
			}
			return m, nil

		case key.Matches(msg, ChecklistKeys.Share):
			return m, m.share()

		case key.Matches(msg, ChecklistKeys.Reset):
			project := m.resolution.Project
			return m, func() tea.Msg { return SwitchToConfirmResetMsg{Project: project} }

		case key.Matches(msg, ChecklistKeys.Refresh):
			return m, m.Reload()

		case key.Matches(msg, ChecklistKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

func (m *ChecklistModel) selectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// Summary returns the current progress summary
func (m *ChecklistModel) Summary() domain.ProgressSummary {
	return domain.Summarize(m.resolution.Project, m.progress)
}

// View renders the checklist
func (m *ChecklistModel) View() string {
	v := NewViewBuilder()

	if m.loading {
		return v.Line(m.spinner.View() + " Loading " + m.projectID + "...").String()
	}

	p := m.resolution.Project
	v.Title(p.Title)

	meta := []string{p.ID}
	if badge := RenderDifficulty(p.Difficulty); badge != "" {
		meta = append(meta, badge)
	}
	if p.EstimatedHours > 0 {
		meta = append(meta, "~"+p.Hours()+"h")
	}
	v.Line(styles.MutedText.Render(strings.Join(meta, " · ")))
	v.BlankLine()

	if m.resolution.Unavailable() {
		v.Line(styles.Banner.Render("Backend unreachable. Showing a local plan; progress is still saved."))
		v.BlankLine()
	}

	if p.Description != "" {
		v.Line(lipgloss.NewStyle().Width(max(m.Width-4, 40)).Render(p.Description))
		v.BlankLine()
	}

	v.Line(RenderProgressBar(m.Summary(), 24))
	v.BlankLine()

	for i, t := range m.tasks {
		v.Line(m.renderTask(i, t))
	}
	if len(m.tasks) == 0 {
		v.Muted("No tasks for this project.")
	}
	v.BlankLine()

	if len(p.SkillsRequired) > 0 {
		v.Line(styles.SectionLabel.Render("Skills: ") + strings.Join(p.SkillsRequired, ", "))
		v.BlankLine()
	}

	v.Message(m.Message, m.MessageErr)
	if m.lastPost != "" {
		v.Line(styles.SharePost.Render(m.lastPost))
		v.BlankLine()
	}

	v.Raw(m.help.View(ChecklistKeys))
	return v.String()
}

func (m *ChecklistModel) renderTask(i int, t domain.Task) string {
	check := styles.CheckOpen
	style := styles.TaskOpen
	if m.progress[t.ID] {
		check = styles.CheckDone
		style = styles.TaskDone
	}

	line := check + t.Title
	if i == m.cursor {
		return styles.TaskSelected.Render(line)
	}
	return style.Render(line)
}
