// Copyright Hadayhoc Technology, 2026. All rights reserved.

// Package pipeline implements the finite-state controller over the
// integration stages: credential entry, upload, processing, preview.
// Transitions are a pure function of (state, event); the Controller applies
// the side effects around them and owns all mutable run state.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hadayhoc-tech/nanglucso/pkg/types"
)

// State is one of the four pipeline stages. Exactly one is active at a time.
type State string

const (
	StateCredentialEntry State = "credential_entry"
	StateUpload          State = "upload"
	StateProcessing      State = "processing"
	StatePreview         State = "preview"
)

// Event drives a state transition.
type Event string

const (
	EventCredentialSubmitted Event = "credential_submitted"
	EventDocumentsReady      Event = "documents_ready"
	EventRunSucceeded        Event = "run_succeeded"
	EventRunFailed           Event = "run_failed"
	EventRetry               Event = "retry"
	EventCredentialCleared   Event = "credential_cleared"
)

// Controller sentinel errors.
var (
	// ErrRunInFlight rejects a second begin-processing request while a run
	// is already active. There is no queuing.
	ErrRunInFlight = errors.New("an orchestration run is already in flight")

	// ErrDocumentsMissing rejects processing without both documents.
	ErrDocumentsMissing = errors.New("both lesson plan and requirements documents are required")

	// ErrRunSuperseded marks a run whose outcome arrived after the state
	// machine had already moved on; its result is discarded.
	ErrRunSuperseded = errors.New("orchestration run superseded")
)

// transitions is the valid (state, event) table. EventCredentialCleared is
// handled separately: it is legal from any state.
var transitions = map[State]map[Event]State{
	StateCredentialEntry: {
		EventCredentialSubmitted: StateUpload,
	},
	StateUpload: {
		EventDocumentsReady: StateProcessing,
	},
	StateProcessing: {
		EventRunSucceeded: StatePreview,
		EventRunFailed:    StateUpload,
	},
	StatePreview: {
		EventRetry: StateUpload,
	},
}

// Transition computes the next state for an event. Pure function; it never
// touches controller state.
func Transition(s State, e Event) (State, error) {
	if e == EventCredentialCleared {
		return StateCredentialEntry, nil
	}
	if next, ok := transitions[s][e]; ok {
		return next, nil
	}
	return s, fmt.Errorf("invalid transition: event %s in state %s", e, s)
}

// RunFunc executes one orchestration run: prompt building, model fallback
// invocation, and sanitizing. It receives the two canonical payloads and the
// preferred model id.
type RunFunc func(ctx context.Context, lessonHTML, requirementsText, preferredModel string) (types.IntegrationResult, error)

// Controller owns the pipeline state and the transient run fields. All other
// components are stateless with respect to it. At most one orchestration run
// is pending at a time.
type Controller struct {
	mu sync.Mutex

	state      State
	credential string
	preferred  string

	lesson   *types.SourceDocument
	appendix *types.SourceDocument
	result   *types.IntegrationResult
	errMsg   string

	// seq identifies the current run generation. A run that completes
	// under a stale seq is ignored.
	seq int

	run RunFunc
}

// NewController creates a controller in the credential-entry state.
func NewController(run RunFunc) *Controller {
	return &Controller{state: StateCredentialEntry, run: run}
}

// State returns the active pipeline state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Credential returns the stored credential.
func (c *Controller) Credential() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.credential
}

// ErrorMessage returns the aggregate message of the last failed run, or "".
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Result returns the run result when the pipeline is in preview.
func (c *Controller) Result() (types.IntegrationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return types.IntegrationResult{}, false
	}
	return *c.result, true
}

// Documents returns the currently held documents, nil when discarded.
func (c *Controller) Documents() (lesson, appendix *types.SourceDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lesson, c.appendix
}

// SubmitCredential stores a non-empty credential and moves to upload.
func (c *Controller) SubmitCredential(credential string) error {
	if credential == "" {
		return errors.New("credential must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := Transition(c.state, EventCredentialSubmitted)
	if err != nil {
		return err
	}
	c.credential = credential
	c.state = next
	return nil
}

// ClearCredential drops the credential and all run state and returns to
// credential entry. Legal from any state; an in-flight run is not aborted,
// its eventual outcome is ignored.
func (c *Controller) ClearCredential() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state, _ = Transition(c.state, EventCredentialCleared)
	c.credential = ""
	c.lesson = nil
	c.appendix = nil
	c.result = nil
	c.errMsg = ""
	c.seq++
}

// SelectModel records the preferred model for subsequent runs.
func (c *Controller) SelectModel(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.preferred = id
}

// SetDocuments stores the two ingested documents while in the upload state.
func (c *Controller) SetDocuments(lesson, appendix types.SourceDocument) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUpload {
		return fmt.Errorf("documents can only be set in state %s, currently %s", StateUpload, c.state)
	}
	c.lesson = &lesson
	c.appendix = &appendix
	return nil
}

// Process executes one orchestration run: upload → processing, then preview
// on success or back to upload (documents discarded) on failure. A second
// call while processing is rejected with ErrRunInFlight.
func (c *Controller) Process(ctx context.Context) (types.IntegrationResult, error) {
	c.mu.Lock()
	if c.state == StateProcessing {
		c.mu.Unlock()
		return types.IntegrationResult{}, ErrRunInFlight
	}
	if c.lesson == nil || c.appendix == nil {
		c.mu.Unlock()
		return types.IntegrationResult{}, ErrDocumentsMissing
	}
	next, err := Transition(c.state, EventDocumentsReady)
	if err != nil {
		c.mu.Unlock()
		return types.IntegrationResult{}, err
	}
	c.state = next
	c.errMsg = ""
	c.seq++
	seq := c.seq
	lessonHTML := c.lesson.Content
	requirements := c.appendix.Content
	preferred := c.preferred
	run := c.run
	c.mu.Unlock()

	result, runErr := run(ctx, lessonHTML, requirements, preferred)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq || c.state != StateProcessing {
		// The user retried or cleared the credential while the run was in
		// flight; the machine has moved on and this outcome is dropped.
		return types.IntegrationResult{}, ErrRunSuperseded
	}

	if runErr != nil {
		c.state, _ = Transition(c.state, EventRunFailed)
		c.errMsg = runErr.Error()
		c.lesson = nil
		c.appendix = nil
		c.result = nil
		return types.IntegrationResult{}, runErr
	}

	c.state, _ = Transition(c.state, EventRunSucceeded)
	c.result = &result
	return result, nil
}

// Retry discards the preview result and documents and returns to upload.
func (c *Controller) Retry() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := Transition(c.state, EventRetry)
	if err != nil {
		return err
	}
	c.state = next
	c.lesson = nil
	c.appendix = nil
	c.result = nil
	c.errMsg = ""
	c.seq++
	return nil
}
