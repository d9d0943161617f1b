// Package configloader discovers and loads the rpn35 configuration file.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yaklabco/rpn35/pkg/config"
)

// FileName is the configuration file rpn35 looks for.
const FileName = ".rpn35.yml"

// Options controls a Load.
type Options struct {
	// WorkingDir is where upward discovery starts.
	WorkingDir string

	// ExplicitPath, when set, skips discovery and must exist.
	ExplicitPath string
}

// Result is a loaded configuration and where it came from.
type Result struct {
	Config *config.Config

	// LoadedFrom is the path of the config file used, or "" when the
	// defaults were used.
	LoadedFrom string
}

// Load resolves the configuration: an explicit path if given, otherwise
// the nearest .rpn35.yml walking up from the working directory, otherwise
// defaults. Environment overrides (RPN35_COLOR, RPN35_LOG_LEVEL) apply
// on top in all cases.
func Load(opts Options) (Result, error) {
	path := opts.ExplicitPath
	if path == "" {
		path = discover(opts.WorkingDir)
	}

	cfg := config.Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if opts.ExplicitPath == "" && errors.Is(err, fs.ErrNotExist) {
				path = ""
			} else {
				return Result{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else {
			cfg, err = config.FromYAML(data)
			if err != nil {
				return Result{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	return Result{Config: cfg, LoadedFrom: path}, nil
}

// discover walks up from dir looking for FileName.
func discover(dir string) string {
	for dir != "" {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
	return ""
}

// applyEnv layers RPN35_* variables over the loaded file.
func applyEnv(cfg *config.Config) {
	if v := os.Getenv("RPN35_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("RPN35_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
