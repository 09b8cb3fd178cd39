package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/winentity/internal/config"
	"github.com/vvka-141/winentity/internal/logging"
	"github.com/vvka-141/winentity/internal/record"
	"github.com/vvka-141/winentity/internal/retry"
	"github.com/vvka-141/winentity/internal/services"
	"github.com/vvka-141/winentity/internal/shell"
	"github.com/vvka-141/winentity/pkg/winentity"
)

// loadSettings resolves the effective settings for a command.
// Priority (highest to lowest): flags > environment (.env included) > winentity.yaml > defaults
func loadSettings() (config.Settings, error) {
	_ = godotenv.Load()

	projectCfg, err := loadProjectConfig(globalFlags.configPath)
	if err != nil {
		return config.Settings{}, err
	}

	settings, err := config.Resolve(projectCfg)
	if err != nil {
		return config.Settings{}, err
	}

	if globalFlags.shell != "" {
		settings.Shell = globalFlags.shell
	}
	if globalFlags.timeout < 0 {
		return config.Settings{}, fmt.Errorf("--timeout must be positive: %w", winentity.ErrInvalidConfig)
	}
	if globalFlags.timeout > 0 {
		settings.Timeout = globalFlags.timeout
	}
	return settings, nil
}

// loadProjectConfig loads an explicit --config file, or winentity.yaml from
// the working directory. Returns nil config if the default file does not
// exist (not an error); a missing explicit file is an error.
func loadProjectConfig(path string) (*config.ProjectConfig, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w: %w", path, winentity.ErrInvalidConfig, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, winentity.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) winentity.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), globalFlags.verbose)
}

func newParser(settings config.Settings) record.Parser {
	return record.NewParser(record.WithTrailingPolicy(settings.Trailing))
}

// newInspector builds the live inspector. Tests replace it.
var newInspector = func(settings config.Settings, logger winentity.Logger) winentity.Inspector {
	runner := &shell.ExecRunner{Executable: settings.Shell, Timeout: settings.Timeout}
	executor := retry.NewExecutor(
		retry.NewExecErrorClassifier(),
		retry.NewExponentialBackoff(settings.RetryMaxAttempts, retry.WithInitialDelay(settings.RetryInitialDelay)),
	)
	logger.Verbose("shell=%s timeout=%v trailing=%s retries=%d", settings.Shell, settings.Timeout, settings.Trailing, settings.RetryMaxAttempts)
	return services.NewInspectorService(runner, logger, newParser(settings), executor)
}
