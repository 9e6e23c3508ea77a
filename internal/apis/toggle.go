package apis

import (
	"context"
	"errors"
	"strings"

	"scriptctl/internal/auth"
	"scriptctl/internal/config"
	"scriptctl/internal/project"
	"scriptctl/internal/serviceusage"
	"scriptctl/pkg/logging"
)

// Registry is the remote system tracking which cloud APIs are enabled for a
// project. Satisfied by serviceusage.Client.
type Registry interface {
	Enable(ctx context.Context, name string) error
	Disable(ctx context.Context, name string) error
}

// ManifestSync toggles a named advanced-service declaration in the local
// manifest. Satisfied by manifest.Synchronizer.
type ManifestSync interface {
	EnableOrDisableAdvancedService(serviceName string, enable bool) error
}

// ProjectResolver resolves the active GCP project id. Satisfied by
// project.Resolver.
type ProjectResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Toggler coordinates an enable/disable state change across the remote
// registry and the local manifest. Both must end up reflecting the new
// state for the operation to succeed; a partial failure leaves them
// diverged and is reported as a ToggleError.
type Toggler struct {
	resolver ProjectResolver
	registry Registry
	manifest ManifestSync
}

// NewToggler creates a toggler over the given collaborators.
func NewToggler(resolver ProjectResolver, registry Registry, manifest ManifestSync) *Toggler {
	return &Toggler{resolver: resolver, registry: registry, manifest: manifest}
}

// Toggle enables or disables serviceName for the active project, then
// synchronizes the manifest declaration. Each step is a precondition for
// the next; no network call happens before validation passes and the
// project id is resolved.
func (t *Toggler) Toggle(ctx context.Context, serviceName string, enable bool) error {
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		return &InvalidServiceNameError{}
	}

	projectID, err := t.resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	name := serviceusage.ResourceName(projectID, serviceName)
	action := actionWord(enable)

	if enable {
		err = t.registry.Enable(ctx, name)
	} else {
		err = t.registry.Disable(ctx, name)
	}
	if err != nil {
		return t.reclassify(err, action, serviceName)
	}

	// The registry has already changed state at this point. A failure here
	// leaves registry and manifest diverged; that is reported, not rolled
	// back.
	if err := t.manifest.EnableOrDisableAdvancedService(serviceName, enable); err != nil {
		return t.reclassify(err, action, serviceName)
	}

	logging.Info("Apis", "%sd %s for project %s", action, serviceName, projectID)
	return nil
}

// reclassify maps unrecognized failures to ToggleError exactly once.
// Recognized application errors pass through untouched. The most common
// unrecognized cause is toggling a non-existent service, which the registry
// reports as a permission error rather than a not-found.
func (t *Toggler) reclassify(err error, action, service string) error {
	if isRecognized(err) {
		return err
	}
	logging.Error("Apis", err, "%s %s failed", action, service)
	return &ToggleError{Action: action, Service: service, cause: err}
}

// isRecognized reports whether err is one of the application's own error
// kinds, which must never be reclassified.
func isRecognized(err error) bool {
	return errors.Is(err, &project.MissingProjectError{}) ||
		errors.Is(err, &InvalidServiceNameError{}) ||
		errors.Is(err, &auth.CredentialsError{}) ||
		errors.Is(err, &config.NotConfiguredError{})
}

func actionWord(enable bool) string {
	if enable {
		return "enable"
	}
	return "disable"
}
