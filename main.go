package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/dock/internal/app"
	"github.com/kmacinski/dock/internal/config"
	"github.com/kmacinski/dock/internal/dock"
)

var (
	version = "dev"
)

func main() {
	// Parse flags
	var (
		showVersion bool
		showHelp    bool
		configPath  string
		statePath   string
	)

	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.StringVar(&configPath, "c", "", "Config file")
	flag.StringVar(&configPath, "config", "", "Config file")
	flag.StringVar(&statePath, "s", "", "Layout state file")
	flag.StringVar(&statePath, "state", "", "Layout state file")
	flag.Parse()

	if showVersion {
		fmt.Printf("dock %s\n", version)
		os.Exit(0)
	}

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if statePath != "" {
		cfg.StateFile = statePath
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	d, err := loadDock(cfg.StateFile)
	if err != nil {
		logger.Warn("starting with a fresh layout", "path", cfg.StateFile, "error", err)
		d = welcomeDock()
	}

	application := app.New(cfg, configPath, d, logger)

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	application.SetProgram(p)

	_, err = p.Run()
	application.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes text logs to path. The terminal belongs to the UI, so
// without a log file everything is discarded.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, func() { f.Close() }, nil
}

func loadDock(path string) (*dock.DockState, error) {
	if path == "" {
		return welcomeDock(), nil
	}
	d, err := dock.Load(path)
	if errors.Is(err, dock.ErrNoState) {
		return welcomeDock(), nil
	}
	return d, err
}

func welcomeDock() *dock.DockState {
	return dock.NewDockState(
		dock.Tab{Title: "welcome", Body: "Tabs live in nodes. Press d to float the active tab, v to split it right."},
		dock.Tab{Title: "windows", Body: "Floating windows can be dragged with the mouse, moved with the arrow keys and minimized with m."},
		dock.Tab{Title: "closing", Body: "x closes a tab, o closes the others, X closes the node and w closes a floating window."},
	)
}

func printHelp() {
	fmt.Println(`dock - terminal docking layout

Usage:
  dock [flags]

Flags:
  -c, --config      Config file (default: ~/.config/dock/config.yaml)
  -s, --state       Layout state file (default: ~/.config/dock/state.json)
  -h, --help        Show help
  -v, --version     Show version

Keybindings:
  Tab/S-Tab         Cycle nodes
  h/l               Switch tab
  j/k               Scroll tab
  n                 New tab
  v                 Split tab right
  d                 Detach tab into a floating window
  arrows            Move floating window
  +/-               Resize floating window
  m                 Minimize floating window
  x / o             Close tab / other tabs
  X / w             Close node / floating window
  s                 Save layout
  y                 Copy layout JSON
  ?                 Toggle help
  q                 Quit`)
}
