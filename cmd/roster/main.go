package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saltyorg/roster/internal/config"
	"github.com/saltyorg/roster/internal/database"
	"github.com/saltyorg/roster/internal/logging"
	"github.com/saltyorg/roster/internal/roster"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries flag values and the opened database for one command run.
type app struct {
	dbPath     string
	configFile string
	logFile    string
	verbosity  int

	cfg config.Config
	mgr *database.Manager
	svc *roster.Service
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command line and always releases the database afterwards.
func run(args []string, stdout, stderr io.Writer) error {
	a := &app{}
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if closeErr := a.shutdown(); closeErr != nil {
		log.Error().Err(closeErr).Msg("Failed to close database")
		if err == nil {
			err = closeErr
		}
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "roster",
		Short:             "Roster - worker records in a local SQLite file",
		Long:              `Roster maintains a list of workers (name, position, city, age) in a single SQLite database file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.dbPath, "db", "d", config.DefaultDBPath, "SQLite database path (or set ROSTER_DB_PATH env var)")
	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Optional config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Log file (rotated); defaults to roster.log next to the database")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(
		a.initCmd(),
		a.listCmd(),
		a.showCmd(),
		a.addCmd(),
		a.updateCmd(),
		a.deleteCmd(),
		a.searchCmd(),
		a.vacuumCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Annotations: map[string]string{
				skipDatabase: "true",
			},
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "roster %s (commit: %s, built: %s)\n", version, commit, date)
			},
		},
	)

	return rootCmd
}

const skipDatabase = "skip-database"

// needsDatabase reports whether cmd works on the database. Help and shell
// completion never do.
func needsDatabase(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipDatabase] == "true" {
			return false
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// setup resolves configuration, configures logging and opens the database.
// A schema failure stops the command before it runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("db"); f != nil {
		if err := v.BindPFlag(config.KeyDBPath, f); err != nil {
			return fmt.Errorf("failed to bind db flag: %w", err)
		}
	}
	if f := cmd.Flags().Lookup("log-file"); f != nil {
		if err := v.BindPFlag(config.KeyLogFile, f); err != nil {
			return fmt.Errorf("failed to bind log-file flag: %w", err)
		}
	}

	loader := config.NewLoader(config.NewViperSource(v))
	a.cfg = config.Load(loader)

	useDB := needsDatabase(cmd)
	logFile := a.cfg.LogFile
	if logFile == "" && useDB {
		logFile = logging.FilePathForDB(a.cfg.DBPath)
	}
	logging.Apply(logging.LevelForVerbosity(a.verbosity, a.cfg.LogLevel), loader, logFile)

	if !useDB {
		return nil
	}

	log.Debug().
		Str("version", version).
		Str("database", a.cfg.DBPath).
		Msg("Starting roster")

	mgr, err := database.Open(a.cfg.DBPath, database.Options{BusyTimeout: a.cfg.BusyTimeout})
	if err != nil {
		log.Error().Err(err).Str("database", a.cfg.DBPath).Msg("Failed to initialize database")
		return err
	}
	a.mgr = mgr
	a.svc = roster.NewService(mgr.Workers())
	return nil
}

func (a *app) shutdown() error {
	if a.mgr == nil {
		return nil
	}
	err := a.mgr.Close()
	a.mgr = nil
	a.svc = nil
	return err
}
