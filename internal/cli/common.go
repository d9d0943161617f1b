package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rpn35/internal/configloader"
	"github.com/yaklabco/rpn35/internal/logging"
	"github.com/yaklabco/rpn35/internal/ui/pretty"
	"github.com/yaklabco/rpn35/pkg/config"
	"github.com/yaklabco/rpn35/pkg/fsutil"
	"github.com/yaklabco/rpn35/pkg/program"
)

// appEnv is the per-invocation environment shared by all commands:
// resolved configuration and output styles.
type appEnv struct {
	cfg    *config.Config
	styles *pretty.Styles
}

// setup loads configuration and resolves styles for the command's output.
// Root persistent flags (--config, --color) win over file and env values.
func setup(cmd *cobra.Command) (*appEnv, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(configloader.Options{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}
	cfg := result.Config
	if result.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, result.LoadedFrom)
	}

	if colorFlag, err := cmd.Flags().GetString("color"); err == nil && colorFlag != "" {
		cfg.Color = colorFlag
	}
	logging.SetLevel(cfg.LogLevel)

	return &appEnv{
		cfg:    cfg,
		styles: pretty.NewStyles(pretty.ColorEnabled(cfg.Color, cmd.OutOrStdout())),
	}, nil
}

// loadBuffer reads a program file into an in-memory document.
func loadBuffer(path string) (*program.Buffer, error) {
	text, err := fsutil.ReadText(path)
	if err != nil {
		return nil, err
	}
	return program.NewBuffer(text), nil
}

// writeOutput writes content to path, or to the command's stdout when
// path is empty or "-".
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}
	return fsutil.WriteAtomic(path, content)
}
