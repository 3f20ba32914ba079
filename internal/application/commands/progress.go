package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"careerpath/internal/application"
	"careerpath/internal/domain"
)

// ProgressTracker keeps per-project task completion in durable storage
type ProgressTracker struct {
	cache *application.Cache
}

// NewProgressTracker creates a ProgressTracker over a durable cache
func NewProgressTracker(durable *application.Cache) *ProgressTracker {
	return &ProgressTracker{cache: durable}
}

// Load returns the saved checklist for projectID.
// Missing or unreadable entries load as an empty map.
func (t *ProgressTracker) Load(ctx context.Context, projectID string) domain.Progress {
	progress := domain.Progress{}
	if !t.cache.GetJSON(ctx, application.ProgressKey(projectID), &progress) || progress == nil {
		return domain.Progress{}
	}
	return progress
}

// Toggle sets one task's completion and writes the whole checklist back
func (t *ProgressTracker) Toggle(ctx context.Context, projectID, taskID string, done bool) (domain.Progress, error) {
	if err := application.ValidateRequired("projectID", projectID); err != nil {
		return nil, err
	}
	if err := application.ValidateRequired("taskID", taskID); err != nil {
		return nil, err
	}

	progress := t.Load(ctx, projectID)
	progress[taskID] = done

	if err := t.cache.PutJSON(ctx, application.ProgressKey(projectID), progress); err != nil {
		return progress, fmt.Errorf("failed to save progress: %w", err)
	}
	return progress, nil
}

// Reset forgets every completed task of projectID
func (t *ProgressTracker) Reset(ctx context.Context, projectID string) error {
	if err := application.ValidateRequired("projectID", projectID); err != nil {
		return err
	}
	if err := t.cache.Delete(ctx, application.ProgressKey(projectID)); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	return nil
}

// Percent returns the whole-number completion of progress over totalTasks.
// It counts raw entries; use domain.Summarize to count only a project's tasks.
func (t *ProgressTracker) Percent(progress domain.Progress, totalTasks int) int {
	return progress.Percent(totalTasks)
}

// Summary loads the checklist of p and summarizes it
func (t *ProgressTracker) Summary(ctx context.Context, projectID string, p domain.Project) domain.ProgressSummary {
	return domain.Summarize(p, t.Load(ctx, projectID))
}

// Tracked lists the ids of every project with saved progress
func (t *ProgressTracker) Tracked(ctx context.Context) ([]string, error) {
	keys, err := t.cache.Keys(ctx, application.ProgressKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked projects: %w", err)
	}

	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, application.ProgressKeyPrefix))
	}
	sort.Strings(ids)
	return ids, nil
}

// ToggleTaskResult contains the result of a toggle operation
type ToggleTaskResult struct {
	ProjectID string
	Task      domain.Task
	Done      bool
	Summary   domain.ProgressSummary
	Post      string // share text, set when a task was completed
	Message   string
}

// ToggleTaskCommand marks a task of a resolved project done or undone
type ToggleTaskCommand struct {
	resolver  *Resolver
	tracker   *ProgressTracker
	ProjectID string
	TaskID    string
	Done      bool
}

// NewToggleTaskCommand creates a new ToggleTaskCommand
func NewToggleTaskCommand(resolver *Resolver, tracker *ProgressTracker, projectID, taskID string, done bool) *ToggleTaskCommand {
	return &ToggleTaskCommand{
		resolver:  resolver,
		tracker:   tracker,
		ProjectID: projectID,
		TaskID:    taskID,
		Done:      done,
	}
}

// Validate checks that both ids are present
func (c *ToggleTaskCommand) Validate() error {
	if err := application.ValidateRequired("projectID", c.ProjectID); err != nil {
		return err
	}
	return application.ValidateRequired("taskID", c.TaskID)
}

// Execute resolves the project, checks the task belongs to it and saves the toggle
func (c *ToggleTaskCommand) Execute(ctx context.Context) (*ToggleTaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	projectID := strings.TrimSpace(c.ProjectID)
	taskID := strings.TrimSpace(c.TaskID)

	res := c.resolver.Resolve(ctx, projectID)
	if err := application.ValidateTaskID(&res.Project, taskID); err != nil {
		return nil, err
	}

	progress, err := c.tracker.Toggle(ctx, projectID, taskID, c.Done)
	if err != nil {
		return nil, err
	}

	result := &ToggleTaskResult{
		ProjectID: projectID,
		Task:      findTask(res.Project, taskID),
		Done:      c.Done,
		Summary:   domain.Summarize(res.Project, progress),
	}

	if c.Done {
		result.Post = domain.ComposeProgressPost(res.Project.Title, result.Task.Title)
		result.Message = fmt.Sprintf("Completed %s", result.Task.Title)
	} else {
		result.Message = fmt.Sprintf("Reopened %s", result.Task.Title)
	}
	return result, nil
}

func findTask(p domain.Project, taskID string) domain.Task {
	for _, t := range p.Tasks {
		if t.ID == taskID {
			return t
		}
	}
	return domain.Task{ID: taskID, Title: taskID}
}
