package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version string
	baseDir string

	// logFile is the open --log-file handle, if any.
	logFile *os.File
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "uikit",
	Short: "Terminal dialogs and pagination",
	Long: `uikit - alert, confirm and prompt dialogs plus a pagination widget for the terminal.

Dialogs print the user's answer to stdout so they can drive shell scripts.
Pagination prints the page window a paginated listing would show.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeLogFile() },
}

// exitError ends the process with code without printing an error.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	// Post-run hooks are skipped when a command fails.
	closeLogFile()
	if err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.AddGroup(
		&cobra.Group{ID: "components", Title: "Components:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)
	rootCmd.SetErrPrefix("Error:")

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// setupLogging installs the default slog logger. Interactive commands draw
// on the terminal, so --log-file keeps log lines off the screen.
func setupLogging(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	path, _ := cmd.Flags().GetString("log-file")

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	if err := closeLogFile(); err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

// closeLogFile closes the --log-file handle and points the default logger
// back at stderr. It is a no-op when no log file is open.
func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	f := logFile
	logFile = nil
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := f.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// intFlag returns the flag value when it was set on the command line and
// fallback otherwise, so config values apply only to unset flags.
func intFlag(fs *pflag.FlagSet, name string, fallback int) int {
	if !fs.Changed(name) {
		return fallback
	}
	v, err := fs.GetInt(name)
	if err != nil {
		return fallback
	}
	return v
}
