// Copyright Hadayhoc Technology, 2026. All rights reserved.

// Package invoke drives generation requests against an ordered model catalog
// with sequential fallback. One orchestration run tries each candidate at
// most once, in trial order, and returns the first success.
package invoke

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hadayhoc-tech/nanglucso/pkg/types"
)

// Generator performs a single request against one remote model. The
// production implementation is GeminiBackend; tests supply a mock.
type Generator interface {
	Generate(ctx context.Context, modelID, prompt string) (string, error)
}

// SwitchFunc is notified when a candidate other than the first in trial
// order succeeds. It fires synchronously, exactly once per run, before
// Invoke returns.
type SwitchFunc func(fromModel, toModel string)

// AllModelsFailed reports that every candidate in the trial order failed.
// Attempts holds one entry per candidate, in the order they were tried.
type AllModelsFailed struct {
	Attempts []types.InvocationAttempt
}

func (e *AllModelsFailed) Error() string {
	var b strings.Builder
	b.WriteString("all models failed:\n")
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, "  • %s: %s\n", a.ModelID, a.Message)
	}
	b.WriteString("check the API key or try again later")
	return b.String()
}

// Invoker runs the fallback protocol over the static catalog.
type Invoker struct {
	gen      Generator
	catalog  []types.ModelCandidate
	onSwitch SwitchFunc

	// attemptTimeout bounds each candidate's request. Zero means no
	// deadline beyond the generator's own errors.
	attemptTimeout time.Duration
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithSwitchListener registers the model-switch notification callback.
func WithSwitchListener(fn SwitchFunc) Option {
	return func(iv *Invoker) { iv.onSwitch = fn }
}

// WithAttemptTimeout bounds each candidate's request. An expired attempt
// counts as that candidate's failure and the chain continues.
func WithAttemptTimeout(d time.Duration) Option {
	return func(iv *Invoker) { iv.attemptTimeout = d }
}

// WithCatalog overrides the static catalog. Used by tests.
func WithCatalog(catalog []types.ModelCandidate) Option {
	return func(iv *Invoker) { iv.catalog = catalog }
}

// New creates an Invoker over the static catalog.
func New(gen Generator, opts ...Option) *Invoker {
	iv := &Invoker{gen: gen, catalog: Catalog}
	for _, o := range opts {
		o(iv)
	}
	return iv
}

// Invoke tries the prompt against each candidate in trial order until one
// succeeds. The successful response is sanitized and returned together with
// the id of the model that produced it. A failure on one candidate never
// aborts the loop; when every candidate fails Invoke returns
// *AllModelsFailed carrying the full ordered attempt list.
//
// The candidate loop is strictly sequential: one request completes before
// the next begins, and no candidate is ever tried twice in a run.
func (iv *Invoker) Invoke(ctx context.Context, prompt, preferredID string) (types.IntegrationResult, error) {
	order := TrialOrder(iv.catalog, preferredID)

	var attempts []types.InvocationAttempt

	for i, modelID := range order {
		raw, err := iv.generate(ctx, modelID, prompt)
		if err != nil {
			attempts = append(attempts, types.InvocationAttempt{
				ModelID: modelID,
				Message: err.Error(),
			})
			continue
		}

		if i > 0 && iv.onSwitch != nil {
			iv.onSwitch(order[0], modelID)
		}

		return types.IntegrationResult{
			HTML:      Sanitize(raw),
			UsedModel: modelID,
		}, nil
	}

	return types.IntegrationResult{}, &AllModelsFailed{Attempts: attempts}
}

// generate performs one bounded request against a single candidate.
func (iv *Invoker) generate(ctx context.Context, modelID, prompt string) (string, error) {
	if iv.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, iv.attemptTimeout)
		defer cancel()
	}

	raw, err := iv.gen.Generate(ctx, modelID, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("model %s returned an empty response", modelID)
	}
	return raw, nil
}
