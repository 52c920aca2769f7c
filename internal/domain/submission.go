package domain

import "fmt"

// SubmissionState is a step of a single form submission
type SubmissionState string

const (
	StateDraft       SubmissionState = "draft"
	StateValidating  SubmissionState = "validating"
	StateResolving   SubmissionState = "resolving"
	StateReady       SubmissionState = "ready"
	StateSubmitting  SubmissionState = "submitting"
	StateSucceeded   SubmissionState = "succeeded"
	StateRejected    SubmissionState = "rejected"
	StateUnavailable SubmissionState = "unavailable"
)

var submissionTransitions = map[SubmissionState][]SubmissionState{
	StateDraft:      {StateValidating},
	StateValidating: {StateResolving, StateReady, StateDraft},
	StateResolving:  {StateReady, StateDraft},
	StateReady:      {StateSubmitting},
	StateSubmitting: {StateSucceeded, StateRejected, StateUnavailable},
}

// IsTerminal reports whether no transition leaves the state
func (s SubmissionState) IsTerminal() bool {
	return s == StateSucceeded || s == StateRejected || s == StateUnavailable
}

// CanTransition reports whether s -> to is an edge of the submission state machine
func (s SubmissionState) CanTransition(to SubmissionState) bool {
	for _, next := range submissionTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Submission tracks one pass through the state machine.
// A new submission always starts in Draft; terminal states are final.
type Submission struct {
	state   SubmissionState
	history []SubmissionState
}

// NewSubmission starts a fresh Draft
func NewSubmission() *Submission {
	return &Submission{state: StateDraft, history: []SubmissionState{StateDraft}}
}

// Advance moves the submission to the next state
func (s *Submission) Advance(to SubmissionState) error {
	if !s.state.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
	}
	s.state = to
	s.history = append(s.history, to)
	return nil
}

// State returns the current state
func (s *Submission) State() SubmissionState {
	return s.state
}

// History returns a copy of every state visited, in order
func (s *Submission) History() []SubmissionState {
	out := make([]SubmissionState, len(s.history))
	copy(out, s.history)
	return out
}
