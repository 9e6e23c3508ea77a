package cmd

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"scriptctl/internal/apis"
	"scriptctl/internal/auth"
	"scriptctl/internal/config"
	"scriptctl/internal/manifest"
	"scriptctl/internal/project"
	"scriptctl/internal/prompt"
	"scriptctl/internal/serviceusage"

	"github.com/briandowns/spinner"
)

// workspace bundles the per-invocation collaborators every command needs:
// the project config from the working directory and an authorized HTTP
// client from the stored credentials.
type workspace struct {
	dir  string
	cfg  config.ProjectConfig
	http *http.Client
}

// loadWorkspace resolves the working directory, project config and
// credentials. Credential loading happens here so every command fails fast
// with the same guidance when the user is not authorized yet.
func loadWorkspace(ctx context.Context) (*workspace, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	creds, err := auth.Load("")
	if err != nil {
		return nil, err
	}

	return &workspace{dir: dir, cfg: cfg, http: creds.Client(ctx)}, nil
}

// resolver builds the project identity resolver over the checkout's config
// store and an interactive prompter.
func (w *workspace) resolver() *project.Resolver {
	return project.NewResolver(&project.ConfigStore{Dir: w.dir}, prompt.ProjectPrompter{})
}

// registry builds the service registry client.
func (w *workspace) registry() *serviceusage.Client {
	return serviceusage.NewClient(w.http, "")
}

// manifestSync builds the manifest synchronizer over the directory holding
// appsscript.json, honoring an optional rootDir.
func (w *workspace) manifestSync() *manifest.Synchronizer {
	dir := w.dir
	if w.cfg.RootDir != "" {
		dir = filepath.Join(w.dir, w.cfg.RootDir)
	}
	return manifest.NewSynchronizer(dir)
}

// registryProvider is the lazy credential-loading variant used by the
// bootstrap path, which must not assume loadWorkspace already ran.
func registryProvider() apis.RegistryProvider {
	return func(ctx context.Context) (apis.Registry, error) {
		creds, err := auth.Load("")
		if err != nil {
			return nil, err
		}
		return serviceusage.NewClient(creds.Client(ctx), ""), nil
	}
}

// newSpinner returns a started progress spinner with the given suffix.
// Callers must Stop it; quiet mode returns nil and callers tolerate that.
func newSpinner(quiet bool, suffix string) *spinner.Spinner {
	if quiet {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	s.Start()
	return s
}

func stopSpinner(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}
