package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thellimist/apigen/internal/config"
	"github.com/thellimist/apigen/internal/logx"
	"github.com/thellimist/apigen/internal/project"
)

var appVersion = "dev"

func SetVersion(v string) {
	appVersion = v
}

var (
	flagConfig    string
	flagVerbose   bool
	flagLogFormat string
)

// Loaded by the persistent pre-run before any subcommand executes.
var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "apigen",
	Short: "Generate Spring Boot skeleton projects from endpoint specs",
	Long: `apigen turns a JSON list of endpoint specs into a Spring Boot skeleton
project in a freshly numbered directory (base_1, base_2, ...).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default ./apigen.yaml if present)")
	pf.BoolVar(&flagVerbose, "verbose", false, "log at debug level")
	pf.StringVar(&flagLogFormat, "log-format", "", "log format: text or json (overrides config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}

func Execute() error {
	rootCmd.Version = appVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("apigen v%s\n", appVersion))
	return rootCmd.Execute()
}

// setup loads configuration and builds the process logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	level, err := logx.ParseLevel(loaded.Log.Level)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = slog.LevelDebug
	}

	format := loaded.Log.Format
	if flagLogFormat != "" {
		if flagLogFormat != string(logx.FormatText) && flagLogFormat != string(logx.FormatJSON) {
			return fmt.Errorf("invalid --log-format %q: expected text or json", flagLogFormat)
		}
		format = flagLogFormat
	}

	cfg = loaded
	logger = logx.New(
		logx.WithFormat(logx.Format(format)),
		logx.WithLevel(level),
		logx.WithWriter(cmd.ErrOrStderr()),
	)
	logx.SetDefault(logger)
	return nil
}

// newGenerator builds a project generator from the loaded config.
func newGenerator(root string, extra ...project.Option) *project.Generator {
	if root == "" {
		root = cfg.Generator.OutputDir
	}
	opts := []project.Option{
		project.WithRoot(root),
		project.WithMaxAttempts(cfg.Generator.MaxAttempts),
		project.WithLogger(logger),
	}
	return project.New(append(opts, extra...)...)
}
