package cli

import (
	"context"
	stderrors "errors"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lineq/pkg/buildinfo"
	"github.com/matzehuels/lineq/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "lineq"

	// configFileName is the file looked up inside the config directory.
	configFileName = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and default config.
// The config file is loaded when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "lineq works with straight lines in slope-intercept form",
		Long: `lineq evaluates, inverts and compares straight lines y = mx + b.

Lines are given with --slope/-m and --intercept/-b, or as "m,b" pairs for
commands that take two lines. Prefix negative positional arguments with --.`,
		Version:       buildinfo.Resolve().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, explicit := configFile, cmd.Flags().Changed("config")
			if !explicit {
				path = configPath()
			}

			cfg, err := loadConfig(path, explicit, c.Logger)
			if err != nil {
				return err
			}
			c.Config = cfg

			level := LogInfo
			if verbose || cfg.Verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)

			if cfg.Plain {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default "+configPathHint()+")")

	// Register all subcommands
	root.AddCommand(c.showCommand())
	root.AddCommand(c.yCommand())
	root.AddCommand(c.xCommand())
	root.AddCommand(c.perpCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.equalCommand())
	root.AddCommand(c.parallelCommand())
	root.AddCommand(c.throughCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs root and reports a failure exactly once: an error-level log
// line carrying the error code, and the user message with an error icon on
// root's error writer. Cancellation is returned without being reported.
func (c *CLI) Execute(ctx context.Context, root *cobra.Command) error {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil || stderrors.Is(err, context.Canceled) {
		return err
	}

	name := root.Name()
	if cmd != nil {
		name = cmd.CommandPath()
	}
	c.Logger.Error("command failed", "cmd", name, "code", errors.GetCode(err), "err", err)
	printError(root.ErrOrStderr(), "%s", errors.UserMessage(err))
	return err
}

// =============================================================================
// Formatting Helpers
// =============================================================================

// formatFloat renders a computed value in its shortest exact form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// yesNo renders a comparison outcome.
func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
