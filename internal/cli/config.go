package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lineq/pkg/errors"
)

// Config is the on-disk configuration read from config.toml.
type Config struct {
	Verbose bool         `toml:"verbose"`
	Plain   bool         `toml:"plain"` // disable colors
	Sample  SampleConfig `toml:"sample"`
}

// SampleConfig holds the default range for the sample command.
type SampleConfig struct {
	From float64 `toml:"from"`
	To   float64 `toml:"to"`
	Step float64 `toml:"step"`
}

func defaultConfig() Config {
	return Config{
		Sample: SampleConfig{From: -5, To: 5, Step: 1},
	}
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/lineq/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// configPath returns the default config file path, or "" when no home
// directory can be determined.
func configPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configFileName)
}

func configPathHint() string {
	return filepath.Join("$XDG_CONFIG_HOME", appName, configFileName)
}

// =============================================================================
// Loading
// =============================================================================

// loadConfig reads the TOML config at path on top of the defaults.
// A missing file yields the defaults unless the path was given explicitly.
// Unknown keys are logged as warnings and otherwise ignored.
func loadConfig(path string, explicit bool, logger *log.Logger) (Config, error) {
	cfg := defaultConfig()
	if path == "" && !explicit {
		return cfg, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return cfg, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			logger.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "stat %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return defaultConfig(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", path)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "key", key.String(), "path", path)
	}

	s := cfg.Sample
	if err := errors.ValidateRange(s.From, s.To, s.Step); err != nil {
		return defaultConfig(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid [sample] in %s", path)
	}

	logger.Debug("loaded config", "path", path)
	return cfg, nil
}

// =============================================================================
// Commands
// =============================================================================

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			if path == "" {
				return errors.New(errors.ErrCodeInvalidPath, "cannot determine config directory")
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(c.Config); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
			}
			return nil
		},
	}
}
