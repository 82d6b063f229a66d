package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestIntFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		fallback int
		want     int
	}{
		{
			name:     "unset uses fallback",
			args:     nil,
			fallback: 25,
			want:     25,
		},
		{
			name:     "set overrides fallback",
			args:     []string{"--per-page", "5"},
			fallback: 25,
			want:     5,
		},
		{
			name:     "explicit default still wins",
			args:     []string{"--per-page", "10"},
			fallback: 25,
			want:     10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.Int("per-page", 10, "")
			if err := fs.Parse(tt.args); err != nil {
				t.Fatal(err)
			}
			if got := intFlag(fs, "per-page", tt.fallback); got != tt.want {
				t.Errorf("intFlag = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("confirm: %w", &exitError{code: 1})
	var ee *exitError
	if !errors.As(err, &ee) || ee.code != 1 {
		t.Errorf("errors.As(%v) = %v, want exit code 1", err, ee)
	}
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	out, err := runRoot(t, t.TempDir(), "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "uikit 1.2.3\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestLogFileClosedAfterRun(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "uikit.log")

	if _, err := runRoot(t, dir, "--log-file", path, "pages", "--total", "30"); err != nil {
		t.Fatalf("pages: %v", err)
	}
	if logFile != nil {
		t.Fatal("log file still open after a successful run")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
	// Logging after the run must not hit the closed handle.
	slog.Warn("after run")
}

func TestLogFileClosedAfterFailedRun(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "uikit.log")

	if _, err := runRoot(t, dir, "--debug", "--log-file", path, "pages", "--total", "-5"); err == nil {
		t.Fatal("expected error for negative total")
	}
	// A failed command skips post-run hooks; Execute closes the file instead.
	if logFile == nil {
		t.Fatal("log file not opened")
	}
	slog.Debug("before close", "marker", "uikit-log-test")
	if err := closeLogFile(); err != nil {
		t.Fatalf("closeLogFile: %v", err)
	}
	if logFile != nil {
		t.Error("log file still set after closeLogFile")
	}
	if err := closeLogFile(); err != nil {
		t.Errorf("second closeLogFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "uikit-log-test") {
		t.Errorf("log file = %q, want the debug line", data)
	}
}
