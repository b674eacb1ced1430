// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow sequences each dashboard's submit cycle and gates
// actions by stage. One machine instance owns one dashboard's state
// exclusively; all mutation happens on the single event-processing path,
// so there is no locking. In-flight calls are tagged with the generation
// they were issued against, and a completion whose generation no longer
// matches is discarded rather than applied to state the user has since
// reset or resubmitted.
package workflow

import (
	"context"
	"errors"
)

// Stage names a position in the submit cycle.
type Stage string

const (
	StageIdle       Stage = "idle"
	StageSubmitting Stage = "submitting"
	StageSucceeded  Stage = "succeeded"
	StageFailed     Stage = "failed"
)

// ErrBusy is returned when a submission is attempted while another is
// still outstanding. The guard is hard: the services are not idempotent,
// so a duplicate request must never be issued.
var ErrBusy = errors.New("a submission is already in flight")

// Machine drives one dashboard through Idle, Submitting, and a terminal
// Succeeded or Failed stage. R is the dashboard's normalized result type.
type Machine[R any] struct {
	stage         Stage
	generation    uint64
	statusMessage string
	errorMessage  string
	result        *R
}

// NewMachine returns a machine in the Idle stage.
func NewMachine[R any]() *Machine[R] {
	return &Machine[R]{stage: StageIdle}
}

// Stage returns the current stage.
func (m *Machine[R]) Stage() Stage { return m.stage }

// Loading reports whether a submission is outstanding.
func (m *Machine[R]) Loading() bool { return m.stage == StageSubmitting }

// StatusMessage returns the progress text for the current submission.
func (m *Machine[R]) StatusMessage() string { return m.statusMessage }

// ErrorMessage returns the failure text, empty unless in StageFailed.
func (m *Machine[R]) ErrorMessage() string { return m.errorMessage }

// Result returns the normalized result, non-nil only in StageSucceeded.
func (m *Machine[R]) Result() *R { return m.result }

// Begin starts a submission and returns its generation token. It fails
// with ErrBusy while another submission is outstanding; starting from a
// terminal stage discards the prior result.
func (m *Machine[R]) Begin(status string) (uint64, error) {
	if m.Loading() {
		return 0, ErrBusy
	}
	m.generation++
	m.stage = StageSubmitting
	m.statusMessage = status
	m.errorMessage = ""
	m.result = nil
	return m.generation, nil
}

// Complete records a successful result for the given generation. It
// reports false, changing nothing, when the generation is stale.
func (m *Machine[R]) Complete(gen uint64, result *R) bool {
	if !m.current(gen) {
		return false
	}
	m.stage = StageSucceeded
	m.statusMessage = ""
	m.result = result
	return true
}

// Fail records a failed submission for the given generation. It reports
// false, changing nothing, when the generation is stale.
func (m *Machine[R]) Fail(gen uint64, err error) bool {
	if !m.current(gen) {
		return false
	}
	m.stage = StageFailed
	m.statusMessage = ""
	m.errorMessage = err.Error()
	return true
}

// Reset returns to Idle, discarding any result or error. The generation
// advances so an in-flight call resolving later lands stale.
func (m *Machine[R]) Reset() {
	m.generation++
	m.stage = StageIdle
	m.statusMessage = ""
	m.errorMessage = ""
	m.result = nil
}

func (m *Machine[R]) current(gen uint64) bool {
	return m.Loading() && gen == m.generation
}

// Submit is the synchronous driver used by the CLI: it begins a
// submission, runs fn, and records the outcome. The invariant holds that
// after Submit returns the machine is in a terminal stage with loading
// false, so a retry is immediately possible.
func (m *Machine[R]) Submit(ctx context.Context, status string, fn func(context.Context) (*R, error)) (*R, error) {
	gen, err := m.Begin(status)
	if err != nil {
		return nil, err
	}
	result, err := fn(ctx)
	if err != nil {
		m.Fail(gen, err)
		return nil, err
	}
	m.Complete(gen, result)
	return result, nil
}
