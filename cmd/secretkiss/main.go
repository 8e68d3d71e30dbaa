// secretkiss is a terminal game about sneaking a kiss in the school hallway
// while the principal is not looking.
//
// Usage:
//
//	secretkiss play          - Play in this terminal
//	secretkiss scores        - Show the round history
//	secretkiss serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible timings
//	--db <path>          - Set database path (default: ~/.secretkiss/scores.db)
//	--log-file <path>    - Where to write logs (default: ~/.secretkiss/kiss.log)
//	--log-level <level>  - debug, info, warn or error
//
// Every global flag also reads a KISS_* environment variable for its default.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/secret-kiss/internal/config"
	"github.com/vovakirdan/secret-kiss/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// env holds the KISS_* environment, used as flag defaults
	env = loadEnv()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "secretkiss",
	Short: "Secret Kiss - Kiss in the hallway without getting caught",
	Long: `Secret Kiss is a terminal game. Hold the mouse button (or toggle
Space) to kiss and score points. Let go when the principal shows "!"
because getting caught while they are watching ends the round.

Available commands:
  play     - Play in this terminal
  scores   - View the round history
  serve    - Start SSH server for remote play

Examples:
  secretkiss play
  secretkiss play --preset classic
  secretkiss scores -i
  secretkiss serve --addr :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", env.LogFile, "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadEnv reads the environment, falling back to the built-in defaults
// when a variable does not parse.
func loadEnv() config.Env {
	e, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return config.DefaultEnv()
	}
	return e
}

// newFileLogger opens the log file. The game owns the terminal, so logs
// never go to stdout. The returned closer is never nil.
func newFileLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closer := func() {}
	if path != "" {
		expanded, err := storage.ExpandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "secretkiss",
		Level:           lvl,
	})
	return logger, closer, nil
}
