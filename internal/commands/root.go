package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timemap/internal/config"
	"github.com/balkashynov/timemap/internal/db"
	"github.com/balkashynov/timemap/internal/logging"
	"github.com/balkashynov/timemap/internal/parser"
	"github.com/balkashynov/timemap/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Commands carrying this annotation run without config, logging or store
const noStoreAnnotation = "timemap/no-store"

// app is the state shared by all subcommands of one invocation
type app struct {
	cfg   *config.Config
	store *db.Store
	now   func() time.Time
}

var cli = &app{now: time.Now}

var rootCmd = &cobra.Command{
	Use:   "timemap",
	Short: "A calendar of your files, notes, todos and diary",
	Long: `timemap keeps files, notes, todos and diary entries on a calendar.
Everything is stored in a single local SQLite file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := cmd.Annotations[noStoreAnnotation]; ok {
			return nil
		}
		configPath, _ := cmd.Flags().GetString("config")
		dbPath, _ := cmd.Flags().GetString("db")
		debug, _ := cmd.Flags().GetBool("debug")
		return cli.open(configPath, dbPath, debug)
	},
}

// open loads config, starts logging and opens the store
func (a *app) open(configPath, dbPath string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if debug {
		cfg.Log.Debug = true
	}

	if err := logging.Init(logging.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	store, err := db.Open(db.Options{
		Path:  cfg.Database.Path,
		Debug: cfg.Log.Debug,
		Now:   a.now,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.store = store
	logging.Debug("config loaded", "file", cfg.File, "debug", cfg.Log.Debug)
	return nil
}

// close releases the store and the log file
func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logging.Warn("failed to close store", "err", err)
		}
		a.store = nil
	}
	a.cfg = nil
	_ = logging.Close()
}

// parseDate resolves a user supplied date against the app clock
func (a *app) parseDate(input string) (string, error) {
	return parser.ParseDate(input, a.now())
}

// parseID parses an item or tag ID argument
func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid ID '%s'", arg)
	}
	return uint(id), nil
}

func cmdError(err error) string {
	return ui.ErrorStyle.Render("Error:") + " " + err.Error()
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	defer cli.close()

	if err := rootCmd.Execute(); err != nil {
		logging.Error("command failed", "err", err)
		rootCmd.PrintErrln(cmdError(err))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/timemap/config.toml)")
	rootCmd.PersistentFlags().String("db", "", "database file (overrides database.path)")
	rootCmd.PersistentFlags().Bool("debug", false, "verbose logging to stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(diaryCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(editDiaryCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(trashCmd)
	rootCmd.AddCommand(calCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(openerCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
