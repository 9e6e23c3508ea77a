package config

// ProjectConfig is the per-checkout configuration stored in .scriptctl.yaml
// next to the script sources. It binds a working directory to one remote
// script project and the GCP project backing it.
type ProjectConfig struct {
	// ScriptID identifies the remote Apps Script project.
	ScriptID string `yaml:"scriptId"`
	// ProjectID identifies the GCP project whose service registry backs the
	// script. Empty until the user runs the setup flow.
	ProjectID string `yaml:"projectId,omitempty"`
	// RootDir is an optional subdirectory holding the pushed sources.
	RootDir string `yaml:"rootDir,omitempty"`
}
