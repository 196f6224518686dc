package services

import (
	"sync"

	"content-planner/internal/apperrors"
)

// AssistStatus is what the dashboard shows next to a generation control.
type AssistStatus struct {
	IsGenerating bool   `json:"isGenerating"`
	Error        string `json:"error"`
}

// Assist tracks one generation capability: a busy flag and the last error.
// Only one call runs at a time; there is no retry or cancellation.
type Assist struct {
	mu         sync.Mutex
	generating bool
	lastErr    string
}

// Run executes fn under the busy flag. The error slot is cleared when fn
// starts and filled if it fails; the busy flag is reset on every path.
func (a *Assist) Run(fn func() error) error {
	a.mu.Lock()
	if a.generating {
		a.mu.Unlock()
		return apperrors.ErrBusy
	}
	a.generating = true
	a.lastErr = ""
	a.mu.Unlock()

	var err error
	defer func() {
		a.mu.Lock()
		a.generating = false
		if err != nil {
			a.lastErr = err.Error()
		}
		a.mu.Unlock()
	}()

	err = fn()
	return err
}

func (a *Assist) Status() AssistStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AssistStatus{IsGenerating: a.generating, Error: a.lastErr}
}
