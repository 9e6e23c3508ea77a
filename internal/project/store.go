package project

import "scriptctl/internal/config"

// ConfigStore adapts the per-checkout project config to the Store interface.
type ConfigStore struct {
	// Dir is the directory holding .scriptctl.yaml.
	Dir string
}

func (s *ConfigStore) ProjectID() (string, error) {
	cfg, err := config.Load(s.Dir)
	if err != nil {
		return "", err
	}
	return cfg.ProjectID, nil
}

func (s *ConfigStore) SetProjectID(id string) error {
	cfg, err := config.Load(s.Dir)
	if err != nil {
		return err
	}
	cfg.ProjectID = id
	return config.Save(s.Dir, cfg)
}
