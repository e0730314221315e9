package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/stocktracker/config"
	"github.com/rustyeddy/stocktracker/internal/console"
	"github.com/rustyeddy/stocktracker/internal/logging"
	"github.com/rustyeddy/stocktracker/journal"
	"github.com/rustyeddy/stocktracker/market"
	"github.com/rustyeddy/stocktracker/tracker"
)

const version = "1.0.0"

// RootConfig holds the persistent flag values.
type RootConfig struct {
	ConfigPath  string
	OutDir      string
	JournalPath string
	LogLevel    string
	LogFormat   string
}

// env is what every command works with once flags and config are merged.
type env struct {
	cfg *config.Config
	log *zap.Logger

	newLogger func(level, format string) (*zap.Logger, error)
}

func newEnv() *env {
	return &env{newLogger: logging.New}
}

// sync flushes the logger, if one was built.
func (e *env) sync() {
	if e.log != nil {
		_ = e.log.Sync()
	}
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(newEnv())
}

func newRootCmd(e *env) *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Stock portfolio tracker",
		Long: `Tracker records how many shares you hold of a fixed set of stocks,
values them at built-in prices, prints a summary and can save it as CSV.

Run without a subcommand to start an interactive session.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, e)
		},
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.OutDir, "out-dir", ".", "Directory for saved CSV reports")
	cmd.PersistentFlags().StringVar(&rc.JournalPath, "journal", "", "SQLite archive of saved reports (optional)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&rc.LogFormat, "log-format", "console", "Log format: console|json")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, rc)
		if err != nil {
			return err
		}
		log, err := e.newLogger(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		e.cfg = cfg
		e.log = log
		return nil
	}

	// Subcommands
	cmd.AddCommand(
		newPricesCmd(),
		newVerifyCmd(),
		newHistoryCmd(e),
		newConfigCmd(),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tracker version %s\n", version)
		},
	})

	return cmd
}

func Execute() {
	e := newEnv()
	if err := execute(newRootCmd(e), e); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// execute runs cmd and flushes the logger whether or not the command failed.
func execute(cmd *cobra.Command, e *env) error {
	defer e.sync()
	return cmd.Execute()
}

// resolveConfig starts from the config file (or defaults) and lets flags
// given on the command line win.
func resolveConfig(cmd *cobra.Command, rc *RootConfig) (*config.Config, error) {
	cfg := config.Default()
	if rc.ConfigPath != "" {
		loaded, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("out-dir") {
		cfg.Output.Dir = rc.OutDir
	}
	if flags.Changed("journal") {
		cfg.Journal.Path = rc.JournalPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = rc.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = rc.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func runSession(cmd *cobra.Command, e *env) error {
	s := &tracker.Session{
		Catalog: market.DefaultCatalog(),
		Console: console.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		Saver:   journal.NewCSVSaver(e.cfg.Output.Dir),
		Log:     e.log,
	}

	if e.cfg.Journal.Path != "" {
		j, err := journal.NewSQLite(e.cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		s.Archive = j
	}

	return s.Run(cmd.Context())
}
