package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigFile is the per-project defaults file, looked up from the
// working directory towards the filesystem root.
const LocalConfigFile = ".linear.yaml"

// LocalConfig holds per-project defaults for commands that take a team or
// assignee.
type LocalConfig struct {
	Team     string `yaml:"team"`
	Assignee string `yaml:"assignee"`
}

// FindLocalConfig returns the path of the nearest .linear.yaml at or above
// dir, or "" when there is none.
func FindLocalConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, LocalConfigFile)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadLocalConfig reads and parses a .linear.yaml file.
//
// Returns an empty LocalConfig (not nil) if the file doesn't exist or can't be parsed.
func LoadLocalConfig(path string) *LocalConfig {
	if path == "" {
		return &LocalConfig{}
	}
	data, err := os.ReadFile(path) // #nosec G304 - path found by FindLocalConfig
	if err != nil {
		return &LocalConfig{}
	}

	var cfg LocalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &LocalConfig{}
	}

	return &cfg
}

// LocalDefaults loads the nearest .linear.yaml above the working directory.
func LocalDefaults() *LocalConfig {
	cwd, err := os.Getwd()
	if err != nil {
		return &LocalConfig{}
	}
	return LoadLocalConfig(FindLocalConfig(cwd))
}

// DefaultTeam returns the team key to use when --team is not given:
// .linear.yaml first, then the "team" setting.
func DefaultTeam() string {
	if team := LocalDefaults().Team; team != "" {
		return team
	}
	return GetString("team")
}
