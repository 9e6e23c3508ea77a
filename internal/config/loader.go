package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"scriptctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

const configFileName = ".scriptctl.yaml"

// NotConfiguredError indicates the working directory has no project config.
type NotConfiguredError struct {
	// Dir is the directory that was searched.
	Dir string
}

// Error returns a user-friendly message with actionable guidance.
func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf(`No %s found in %s

This directory is not linked to a script project. Create a %s containing
at least the script id:

  scriptId: <your script id>`, configFileName, e.Dir, configFileName)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *NotConfiguredError) Is(target error) bool {
	_, ok := target.(*NotConfiguredError)
	return ok
}

// Load reads the project config from dir. Unlike a defaulted config there is
// no sane fallback for a missing script id, so an absent file is an error.
func Load(dir string) (ProjectConfig, error) {
	path := filepath.Join(dir, configFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ProjectConfig{}, &NotConfiguredError{Dir: dir}
		}
		return ProjectConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.ScriptID == "" {
		return ProjectConfig{}, fmt.Errorf("%s has no scriptId", path)
	}

	logging.Debug("Config", "loaded project config from %s", path)
	return cfg, nil
}

// Save writes the project config back to dir. Used by the project setup flow
// to persist a newly entered project id.
func Save(dir string, cfg ProjectConfig) error {
	path := filepath.Join(dir, configFileName)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding project config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logging.Debug("Config", "saved project config to %s", path)
	return nil
}
