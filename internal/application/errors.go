package application

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common conditions
var (
	ErrNotFound           = errors.New("not found")
	ErrNoProjectSelected  = errors.New("no project selected")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BackendError represents a non-success response from the project backend
type BackendError struct {
	Op     string
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: backend returned %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.Status, e.Body)
}

func (e *BackendError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrBackendUnavailable:
		return e.Status >= http.StatusInternalServerError
	}
	return false
}
