package api

import (
	"fmt"

	"github.com/certvera/certvera/internal/common"
)

// BackendError is a non-2xx response carrying the backend's {error} envelope.
// Message is empty when the body did not contain one; callers fall back to a
// generic message in that case. Matches common.ErrBackend under errors.Is.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error: status %d", e.Status)
	}
	return fmt.Sprintf("backend error: status %d: %s", e.Status, e.Message)
}

func (e *BackendError) Is(target error) bool {
	return target == common.ErrBackend
}
