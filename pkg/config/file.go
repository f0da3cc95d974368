package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes the YAML file at path into out. A missing file is not an
// error: environment variables alone are a complete configuration.
func LoadYAML(path string, out any) (found bool, err error) {
	if path == "" {
		return false, nil
	}

	// #nosec G304 -- path comes from CONFIG_FILE, set by the operator
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse config: %w", err)
	}
	return true, nil
}
