// meshway - terminal chat client for a mesh radio network.
//
// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/meshway/meshway-tui/internal/config"
	"github.com/meshway/meshway-tui/internal/mesh"
	"github.com/meshway/meshway-tui/internal/model"
	"github.com/meshway/meshway-tui/internal/store"
	"github.com/meshway/meshway-tui/internal/ui"
	"github.com/meshway/meshway-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to config file (default ~/.meshway/config.toml)")
		channel     = flag.Int("channel", -1, "channel slot to open (overrides config)")
		noColor     = flag.Bool("no-color", false, "disable colors")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if *showVersion {
		fmt.Println("meshway " + Version + " (" + GitCommit + ")")
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "meshway: stdout is not a terminal")
		os.Exit(1)
	}

	explicit := *configPath != ""
	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "meshway: %v\n", err)
		os.Exit(1)
	}
	if *channel >= 0 {
		cfg.Device.Channel = *channel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "meshway: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(cfg, path); err != nil {
		fmt.Fprintf(os.Stderr, "meshway: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, configPath string) error {
	theme := styles.NewTheme()

	viewerID := model.NodeID(cfg.Device.NodeID)

	st := store.New(viewerID, store.MapConfig{
		Style: cfg.Map.Style,
		Zoom:  cfg.Map.Zoom,
	})
	st.SetChannelName(cfg.Device.Channel, "Primary")

	feed := mesh.NewFeed(viewerID, 1.5, time.Now().UnixNano())
	defer feed.Stop()

	app := ui.NewApp(st, feed, cfg, theme)
	program := tea.NewProgram(app, tea.WithAltScreen())

	// Hot-reload map and UI settings on config file edits.
	watcher, err := config.NewWatcher(configPath, 500*time.Millisecond, func(next *config.Config) {
		program.Send(ui.ConfigReloadedMsg{Config: next})
	})
	if err == nil {
		if werr := watcher.Watch(); werr == nil {
			defer watcher.Close()
		}
	}

	_, err = program.Run()
	return err
}
