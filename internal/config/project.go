package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig is the optional `swifty.yaml` project file the driver
// (cmd/swifty) loads before running the pipeline. It has nothing to do
// with the compiled-in operator/builtin tables above — those are always
// present; this only carries the handful of toggles spec.md leaves to the
// driver (§1: "the driver and file I/O" are out of the analyzed core).
type ProjectConfig struct {
	// ModulePaths lists additional module search roots. It is loaded from
	// the file, but import resolution does not consult it.
	ModulePaths []string `yaml:"module_paths,omitempty"`

	// Strict turns analyzer warnings (W_* codes) into errors.
	Strict bool `yaml:"strict,omitempty"`

	// LanguageLevel names a grammar revision. It is loaded from the file,
	// but the parser does not consult it and accepts one grammar only.
	LanguageLevel string `yaml:"language_level,omitempty"`
}

// DefaultProjectConfig is used when no swifty.yaml is found.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{}
}

// LoadProjectConfig reads and parses a swifty.yaml file.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// FindProjectConfig searches for swifty.yaml starting from dir and walking
// up to parent directories, the same upward search the teacher's sibling
// fork uses to find its own project file.
func FindProjectConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range []string{"swifty.yaml", "swifty.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
