package views

import (
	"careerpath/internal/application/commands"
	"careerpath/internal/domain"
)

// ProjectLoadedMsg carries a resolved project and its saved progress
type ProjectLoadedMsg struct {
	Resolution commands.Resolution
	Progress   domain.Progress
}

// ToggledMsg reports a finished toggle
type ToggledMsg struct {
	Result *commands.ToggleTaskResult
}

// ResetDoneMsg reports that progress was cleared
type ResetDoneMsg struct{}

// CopiedMsg reports that the share post reached the clipboard
type CopiedMsg struct {
	Post string
}

// ErrMsg wraps a failure from an async command
type ErrMsg struct {
	Err error
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToChecklistMsg returns to the checklist
type SwitchToChecklistMsg struct{}

// SwitchToConfirmResetMsg asks before wiping progress
type SwitchToConfirmResetMsg struct {
	Project domain.Project
}

// ConfirmResetMsg is sent when the user accepts the reset
type ConfirmResetMsg struct{}
