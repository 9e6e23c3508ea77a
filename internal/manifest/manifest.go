package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"scriptctl/pkg/logging"
)

const fileName = "appsscript.json"

// Synchronizer reads and writes the project manifest in a directory,
// keeping its advanced-service declarations in line with registry state.
type Synchronizer struct {
	dir string
}

// NewSynchronizer creates a synchronizer over the directory holding
// appsscript.json.
func NewSynchronizer(dir string) *Synchronizer {
	return &Synchronizer{dir: dir}
}

func (s *Synchronizer) path() string {
	return filepath.Join(s.dir, fileName)
}

// Read loads the manifest from disk.
func (s *Synchronizer) Read() (Manifest, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Manifest{}, fmt.Errorf("no %s in %s (run inside a script project checkout)", fileName, s.dir)
		}
		return Manifest{}, fmt.Errorf("reading %s: %w", s.path(), err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing %s: %w", s.path(), err)
	}
	return m, nil
}

// Write persists the manifest back to disk, pretty-printed the way the
// remote editor formats it.
func (s *Synchronizer) Write(m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path(), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path(), err)
	}
	return nil
}

// EnableOrDisableAdvancedService toggles the declaration for serviceName in
// the manifest. The toggle is idempotent: enabling an already-declared
// service or disabling an undeclared one writes nothing. Services without
// an advanced-service template (plain APIs) need no declaration and are
// skipped.
func (s *Synchronizer) EnableOrDisableAdvancedService(serviceName string, enable bool) error {
	template, known := LookupAdvancedService(serviceName)
	if !known {
		logging.Debug("Manifest", "%s is not an advanced service, manifest untouched", serviceName)
		return nil
	}

	m, err := s.Read()
	if err != nil {
		return err
	}

	declared := -1
	var services []AdvancedService
	if m.Dependencies != nil {
		services = m.Dependencies.EnabledAdvancedServices
	}
	for i, svc := range services {
		if svc.ServiceID == serviceName {
			declared = i
			break
		}
	}

	switch {
	case enable && declared >= 0:
		return nil
	case !enable && declared < 0:
		return nil
	case enable:
		if m.Dependencies == nil {
			m.Dependencies = &Dependencies{}
		}
		m.Dependencies.EnabledAdvancedServices = append(m.Dependencies.EnabledAdvancedServices, template)
	default:
		m.Dependencies.EnabledAdvancedServices = append(services[:declared], services[declared+1:]...)
	}

	if err := s.Write(m); err != nil {
		return err
	}
	logging.Info("Manifest", "advanced service %s set to enabled=%t", serviceName, enable)
	return nil
}
