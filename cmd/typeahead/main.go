// Copyright 2026 The Typeahead Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the typeahead widget demo and IPC server application.

Note: This is a BETA release. APIs and functionality may rapidly change.

Typeahead narrows a fixed candidate list as the user types and shows the
matches in a suggestion box under a text field. The same matching core can
run as an interactive terminal widget, as a plain stdin loop for testing,
or as a MessagePack IPC server for integration with editors and host UIs.

# Usage

Run the interactive widget demo with the built-in candidates:

	typeahead

Load candidates from a file and enable debug mode:

	typeahead -wordlist brands.txt -d

Run the stdin loop for quick testing:

	typeahead -c -limit 10

Start the IPC server:

	typeahead -serve

Candidate files hold one entry per line; blank lines and lines starting
with '#' are skipped. Entries keep their casing and file order, which is
also the order matches are returned in.

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, widget settings, and demo defaults:

	[server]
	max_limit = 64
	max_input = 60
	enable_filter = true

	[widget]
	max_visible = 8
	highlight_prefix = true

	[demo]
	wordlist = ""
	no_filter = false

The config file is automatically created with defaults if it doesn't exist.
A [demo] candidates array replaces the built-in candidate list.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
responses.

Send a completion request:

	{"id": "req1", "cmd": "complete", "q": "au", "l": 8}

Receive the matching candidates, each split at the typed prefix:

	{"id": "req1", "s": [{"p": "Au", "r": "di"}], "c": 1, "t": 145}

# Server Mode

Server mode processes requests from stdin and writes responses to stdout.
This design enables integration with editors and other applications through
process communication; all logging goes to stderr so stdout stays clean for
the protocol.

	srv := server.NewServer(set, appConfig)
	err := srv.Start()

The server handles request parsing, validation, and response formatting,
with input length caps and junk filtering applied per the config.

# Demo Mode

The default mode renders the widget with bubbletea: a text input with the
suggestion box underneath, tab and shift+tab traversal, enter to accept the
focused suggestion and escape to dismiss the box. Clicking a row accepts
it; clicking outside the widget dismisses the box. Submitting the field
prints the final text on exit.

	m := widget.New(set, widget.WithWidgetConfig(appConfig.Widget))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

# CLI Mode

CLI mode provides a line-based interface for testing and debugging the
matcher without a TUI. It reads inputs from stdin and prints every match
split into its typed and completed halves.

	inputHandler := cli.NewInputHandler(set, maxInput, limit, noFilter)
	err := inputHandler.Start()

Any new matching behavior should be exercised here first; the output is
human-readable where the server speaks MessagePack.

# Matching Engine

The core functionality is provided by the suggest package: case folded
prefix narrowing over a fixed candidate list, and a controller state
machine that drives box visibility, focus traversal, and commits for any
host UI.

	set, err := suggest.NewCandidateSet(entries)
	matches := set.Filter("au")

Candidates are indexed in a Patricia trie keyed by their folded form, so
narrowing cost follows the match count rather than the list size.

# Command Line Flags

The following flags control application behavior:

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of the widget demo
	-serve
	    Run the MessagePack IPC server
	-config string
	    Path to the TOML config file (defaults to the platform config dir)
	-wordlist string
	    File with one candidate per line, replacing the configured list
	-limit int
	    Number of matches to print in CLI mode (default from config)
	-no-filter
	    Disable input filtering for debugging

Input filtering rejects junk inputs (digits only, repeated characters,
symbols) by default to keep results relevant; it never affects which
candidates are indexed, only whether a lookup runs.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/sberney/typeahead/internal/cli"
	"github.com/sberney/typeahead/internal/logger"
	"github.com/sberney/typeahead/internal/utils"
	"github.com/sberney/typeahead/pkg/config"
	"github.com/sberney/typeahead/pkg/server"
	"github.com/sberney/typeahead/pkg/suggest"
	"github.com/sberney/typeahead/pkg/widget"
	"github.com/sberney/typeahead/pkg/wordlist"
)

const (
	Version = "0.3.0-beta"
	AppName = "typeahead"
	gh      = "https://github.com/sberney/typeahead"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to run the widget demo, the CLI or the server.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	serveMode := flag.Bool("serve", false, "Run the MessagePack IPC server on stdin/stdout")
	configPath := flag.String("config", "", "Path to the TOML config file")
	wordlistPath := flag.String("wordlist", defaultConfig.Demo.Wordlist, "File with one candidate per line")
	limit := flag.Int("limit", defaultConfig.Server.MaxLimit, "Number of matches to print in CLI mode")
	noFilter := flag.Bool("no-filter", defaultConfig.Demo.NoFilter, "Disable input filtering (DBG only) - runs lookups for raw inputs (numbers, symbols, etc)")

	flag.Parse()

	if *showVersion {
		printer := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		printer.SetStyles(styles)

		printer.Print("")
		printer.Print("[ Typeahead ] Narrows candidates as you type!")
		printer.Print("", "version", Version)
		printer.Print("")
		printer.Print("use -h or --help to see available options")
		printer.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath := loadAppConfig(*configPath)
	log.Debugf("Using config file: (%s)", activePath)

	entries, err := resolveCandidates(appConfig, *wordlistPath)
	if err != nil {
		log.Fatalf("Failed to load candidates: %v", err)
		os.Exit(1)
	}

	set, err := suggest.NewCandidateSet(entries)
	if err != nil {
		log.Fatalf("Failed to build candidate set: %v", err)
		os.Exit(1)
	}
	log.Debugf("Indexed %s candidates", utils.FormatWithCommas(set.Len()))

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxInput", appConfig.Server.MaxInput,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(set, appConfig.Server.MaxInput, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	if *serveMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(set, appConfig)

		showStartupInfo(activePath, set.Len())

		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
			os.Exit(1)
		}
		return
	}

	m := widget.New(set, widget.WithWidgetConfig(appConfig.Widget))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if err != nil {
		log.Fatalf("Demo error: %v", err)
		os.Exit(1)
	}
	if wm, ok := finalModel.(widget.Model); ok && wm.Submitted() != "" {
		fmt.Println(wm.Submitted())
	}
}

// loadAppConfig resolves and loads the config, creating the default file on
// first run when no custom path is given. Falls back to builtin defaults
// rather than failing; a broken config never blocks startup.
func loadAppConfig(customPath string) (*config.Config, string) {
	if customPath != "" {
		cfg, path, err := config.LoadConfigWithPriority(customPath)
		if err != nil {
			log.Warnf("Failed to load config: %v, using defaults", err)
			return config.DefaultConfig(), path
		}
		return cfg, path
	}

	path, err := config.GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to resolve config dir: %v, using defaults", err)
		return config.DefaultConfig(), ""
	}

	cfg, err := config.InitConfig(path)
	if err != nil {
		log.Warnf("Failed to init config: %v, using defaults", err)
		return config.DefaultConfig(), path
	}
	return cfg, path
}

// resolveCandidates picks the candidate list for this run: an explicit
// wordlist file wins over the config's candidates array, which itself
// defaults to the builtin list.
func resolveCandidates(cfg *config.Config, wordlistPath string) ([]string, error) {
	path := wordlistPath
	if path == "" {
		path = cfg.Demo.Wordlist
	}
	if path != "" {
		log.Debugf("Loading candidates from: %s", path)
		return wordlist.Load(path)
	}

	if len(cfg.Demo.Candidates) > 0 {
		return cfg.Demo.Candidates, nil
	}
	return config.DefaultCandidates(), nil
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(configPath string, candidates int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" Typeahead ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("config: ( %s )", configPath)
	log.Infof("candidates: [ %d ]", candidates)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
