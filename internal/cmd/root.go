package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/wordcheck/internal/checker"
	"github.com/harrison/wordcheck/internal/config"
	"github.com/harrison/wordcheck/internal/display"
	"github.com/harrison/wordcheck/internal/fileutil"
	"github.com/harrison/wordcheck/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// UsageLine is printed when the path or pattern argument is missing
const UsageLine = "args is [0]:path [1]:regex"

// NewRootCommand creates and returns the root cobra command for wordcheck
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordcheck <path> <regex>",
		Short: "Report which lines of which files contain the target words",
		Long: `wordcheck walks a directory tree, selects every file whose name fully
matches a regular expression, and scans it line by line for a fixed set of
target words (This, Check, Just).

Each file with matches is printed with its matching lines, followed by a
summary of whether each word was found anywhere and the elapsed time.
Files that cannot be read are reported on stderr and skipped.`,
		Example: `  # All Markdown files under docs
  wordcheck docs '.*\.md'

  # Skip vendored code and only look two levels deep
  wordcheck . '.*\.go' --exclude-dir vendor --max-depth 2

  # Keep a per-run log file with debug detail
  wordcheck . '.*' --log-level debug --log-dir .wordcheck/logs`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE:    runCheck,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .wordcheck/config.yaml)")
	cmd.Flags().String("log-level", "", "Diagnostic log level: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Also write a per-run log file to this directory")
	cmd.Flags().Bool("no-color", false, "Disable colored report output")
	cmd.Flags().StringArray("exclude-dir", nil, "Directory name to skip (repeatable)")
	cmd.Flags().Int("max-depth", 0, "Maximum directory depth to descend (0 = unlimited)")

	return cmd
}

// runCheck implements the root command logic
func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(cmd.OutOrStdout(), UsageLine)
		return nil
	}
	root, pattern := args[0], args[1]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	consoleLog := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	loggers := []logger.RunLogger{consoleLog}

	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
		consoleLog.LogDebug(fmt.Sprintf("writing run log to %s", fileLog.RunFile()))
		loggers = append(loggers, fileLog)
	}

	out := cmd.OutOrStdout()
	chk := checker.New(checker.Options{
		Out:    out,
		Logger: logger.NewMultiLogger(loggers...),
		Walk: fileutil.WalkOptions{
			ExcludeDirs: cfg.ExcludeDirs,
			MaxDepth:    cfg.MaxDepth,
		},
		MaxLineBytes: cfg.MaxLineBytes,
		Color:        display.ShouldColor(out, cfg.Color),
	})

	if _, err := chk.Run(root, pattern); err != nil {
		return err
	}
	return nil
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var logLevelPtr, logDirPtr *string
	var noColorPtr *bool
	var maxDepthPtr *int
	var excludeDirs []string

	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &v
	}
	if cmd.Flags().Changed("no-color") {
		v, _ := cmd.Flags().GetBool("no-color")
		noColorPtr = &v
	}
	if cmd.Flags().Changed("exclude-dir") {
		excludeDirs, _ = cmd.Flags().GetStringArray("exclude-dir")
	}
	if cmd.Flags().Changed("max-depth") {
		v, _ := cmd.Flags().GetInt("max-depth")
		maxDepthPtr = &v
	}

	cfg.MergeWithFlags(logLevelPtr, logDirPtr, noColorPtr, excludeDirs, maxDepthPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
