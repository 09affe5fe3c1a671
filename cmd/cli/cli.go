// Package cli holds what the guiinfo subcommands share: opening a session
// from the config and scenario flags, and sizing output to the terminal.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gigurra/guiinfo/cmd/common"
	"github.com/gigurra/guiinfo/cmd/common/config"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/session"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Options are the flags every session-backed subcommand takes.
type Options struct {
	ConfigPath   string
	ScenarioPath string
	// NFODir replaces the scenario's listing with the .nfo files found
	// there.
	NFODir   string
	LogLevel string
	// LogToFile also appends to ~/.guiinfo/guiinfo.log. Interactive
	// commands log only there so the terminal stays clean.
	LogToFile bool
	Quiet     bool
	Session   session.Options
}

// LoadConfig reads path, or ~/.guiinfo/config.json when path is empty.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// Open loads config and scenario, sets up logging and builds a session.
// The returned func closes the session and the log file.
func Open(ctx context.Context, o Options) (*session.Session, func(), error) {
	cfg, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if o.LogLevel != "" {
		level = o.LogLevel
	}
	var logOut io.Writer = os.Stderr
	if o.Quiet {
		logOut = io.Discard
	}
	closeLog := common.SetupLogging(logOut, level, o.LogToFile)

	sc, err := session.LoadScenario(o.ScenarioPath)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	opts := o.Session
	opts.Scenario = sc
	if o.NFODir != "" {
		if opts.Items, err = listitem.LoadDir(o.NFODir); err != nil {
			closeLog()
			return nil, nil, err
		}
	}
	s, err := session.New(ctx, cfg, opts)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("start session: %w", err)
	}
	return s, func() {
		s.Close()
		closeLog()
	}, nil
}

// TerminalSize falls back to 120x40 when stdout and stderr are not
// terminals.
func TerminalSize() (width, height int) {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w, h
		}
	}
	return 120, 40
}

// Fit truncates or pads s to exactly width terminal cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
