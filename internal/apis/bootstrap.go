package apis

import (
	"context"

	"scriptctl/internal/serviceusage"
	"scriptctl/pkg/logging"
)

// scriptAPIService is the one service every remote execution needs: the
// Apps Script API itself.
const scriptAPIService = "script"

// RegistryProvider loads credentials and hands back a ready registry
// client. Splitting this out keeps credential loading lazy: the bootstrap
// path must work before any other state exists.
type RegistryProvider func(ctx context.Context) (Registry, error)

// ScriptAPIEnabler enables the Apps Script API for the active project. It
// is a bootstrap primitive invoked before the manifest necessarily exists,
// so it deliberately skips the Toggler's manifest sync and error
// reclassification, and has no service name to validate.
type ScriptAPIEnabler struct {
	resolver ProjectResolver
	registry RegistryProvider
}

// NewScriptAPIEnabler creates the bootstrap enabler.
func NewScriptAPIEnabler(resolver ProjectResolver, registry RegistryProvider) *ScriptAPIEnabler {
	return &ScriptAPIEnabler{resolver: resolver, registry: registry}
}

// Enable loads credentials, resolves the project and enables the Apps
// Script API against the registry.
func (e *ScriptAPIEnabler) Enable(ctx context.Context) error {
	registry, err := e.registry(ctx)
	if err != nil {
		return err
	}

	projectID, err := e.resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	name := serviceusage.ResourceName(projectID, scriptAPIService)
	if err := registry.Enable(ctx, name); err != nil {
		return err
	}

	logging.Info("Apis", "enabled the Apps Script API for project %s", projectID)
	return nil
}
