// Package configloader resolves the effective mdfix configuration:
// built-in defaults, then a project config file, then environment
// variables, then CLI flags.
package configloader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdfix/pkg/config"
)

// ConfigFileName is the project configuration file discovered in the
// working directory.
const ConfigFileName = ".mdfix.yaml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory searched for the project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped and the file must
	// exist.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult carries the resolved configuration and its provenance.
type LoadResult struct {
	// Config is the fully merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was applied, if any.
	LoadedFrom string
}

// Load resolves the effective configuration. Missing project files are
// not an error; a missing explicit path is.
func Load(opts LoadOptions) (*LoadResult, error) {
	cfg := config.NewConfig()
	result := &LoadResult{Config: cfg}

	path, required := configPath(opts)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			fileCfg, err := config.FromYAML(data)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			cfg = fileCfg
			result.Config = cfg
			result.LoadedFrom = path
		case os.IsNotExist(err) && !required:
			// No project config; defaults stand.
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if !opts.IgnoreEnv {
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func configPath(opts LoadOptions) (path string, required bool) {
	if opts.ExplicitPath != "" {
		return opts.ExplicitPath, true
	}
	workDir := opts.WorkingDir
	if workDir == "" {
		workDir = "."
	}
	return filepath.Join(workDir, ConfigFileName), false
}
