package editor

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"careerpath/internal/ports"
)

const commentPrefix = "#"

var _ ports.TextEditor = (*Editor)(nil)

// Editor implements ports.TextEditor with $VISUAL / $EDITOR
type Editor struct {
	// run starts the editor on path; replaced in tests
	run func(editor, path string) error
}

// New creates an editor that runs attached to the terminal
func New() *Editor {
	return &Editor{run: runAttached}
}

// Edit writes initial to a temp file, lets the user edit it and returns
// the result with comment lines and surrounding blank space removed.
func (e *Editor) Edit(initial string) (string, error) {
	editor := findEditor()
	if editor == "" {
		return "", fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	f, err := os.CreateTemp("", "careerpath-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := e.run(editor, path); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return StripComments(string(data)), nil
}

// StripComments drops lines starting with "#" and trims the rest
func StripComments(text string) string {
	var kept []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), commentPrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func runAttached(editor, path string) error {
	// $EDITOR may carry flags, e.g. "code --wait"
	fields := strings.Fields(editor)
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func findEditor() string {
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
