package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every lookup miss in the store
	ErrNotFound = errors.New("not found")

	// ErrInvalidCorpus wraps every construction-time validation failure
	ErrInvalidCorpus = errors.New("invalid fixture corpus")
)

// NotFoundError describes which entity a lookup failed to find
type NotFoundError struct {
	Kind string // "workspace", "board", "work item", "result set"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Is lets errors.Is match NotFoundError against ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCorpus, fmt.Sprintf(format, args...))
}
