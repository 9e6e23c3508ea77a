package project

import (
	"context"
	"fmt"
	"strings"

	"scriptctl/pkg/logging"
)

// MissingProjectError indicates no GCP project id is configured for the
// current script project and none was obtained from the setup flow.
type MissingProjectError struct{}

// Error returns a user-friendly message with actionable guidance.
func (e *MissingProjectError) Error() string {
	return `No GCP project id configured for this script project

Find your project id in the Apps Script editor under
Project Settings > Google Cloud Platform (GCP) Project, then add it to
.scriptctl.yaml as:

  projectId: <your project id>`
}

// Is allows errors.Is() to work with wrapped errors.
func (e *MissingProjectError) Is(target error) bool {
	_, ok := target.(*MissingProjectError)
	return ok
}

// Store persists the project identity between invocations.
type Store interface {
	// ProjectID returns the configured project id, or "" when unset.
	ProjectID() (string, error)
	// SetProjectID persists a newly configured project id.
	SetProjectID(id string) error
}

// Prompter asks the user to supply a project id interactively.
type Prompter interface {
	// AskProjectID returns the entered id, or "" when the user gave none.
	AskProjectID(ctx context.Context) (string, error)
}

// Resolver resolves the active GCP project id, running the interactive
// setup flow when none is configured yet.
type Resolver struct {
	store  Store
	prompt Prompter
}

// NewResolver creates a resolver over the given store and prompter.
func NewResolver(store Store, prompt Prompter) *Resolver {
	return &Resolver{store: store, prompt: prompt}
}

// Resolve returns the configured project id. When the store has none, the
// user is prompted once; a non-empty answer is persisted before being
// returned. Failing both, Resolve returns MissingProjectError.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	id, err := r.store.ProjectID()
	if err != nil {
		return "", fmt.Errorf("reading project id: %w", err)
	}
	if id != "" {
		return id, nil
	}

	logging.Info("Project", "no project id configured, starting setup flow")
	id, err = r.prompt.AskProjectID(ctx)
	if err != nil {
		return "", fmt.Errorf("project setup flow: %w", err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", &MissingProjectError{}
	}

	if err := r.store.SetProjectID(id); err != nil {
		return "", fmt.Errorf("persisting project id: %w", err)
	}
	return id, nil
}
