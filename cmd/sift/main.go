package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/logger"
	"github.com/hpungsan/sift/internal/mcp"
	"github.com/hpungsan/sift/internal/metrics"
	"github.com/hpungsan/sift/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"create": true, "fetch": true, "delete": true,
	"list": true, "query": true, "serve": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	return isHelpOrVersion()
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
        _  __ _
   ___ (_)/ _| |_
  / __|| | |_| __|
  \__ \| |  _| |_
  |___/|_|_|  \__|

  String analysis store

  Usage: sift <command> [options]
         sift --help

  MCP server mode requires piped input.`)
}

// resolveBaseDir returns SIFT_HOME if set, else ~/.sift.
func resolveBaseDir() (string, error) {
	if dir := os.Getenv("SIFT_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".sift"), nil
}

func main() {
	os.Exit(run())
}

func run() int {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return 0
	}

	// Handle --help/--version before opening the store
	if isHelpOrVersion() {
		if err := newCLIApp(nil, config.DefaultConfig()).Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && !isCLIMode() && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'sift --help' for usage.\n")
		return 1
	}

	baseDir, err := resolveBaseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid config: %v\n", err)
		return 1
	}

	if err := logger.Initialize(cfg.LogJSON, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		logger.Logger.Warnw("unknown tools in disabled_tools", "tools", unknown, "known", mcp.AllToolNames())
	}

	st, err := store.Open(cfg, baseDir)
	if err != nil {
		logger.Logger.Errorw("failed to open store", "storage", cfg.Storage, "error", err)
		fmt.Fprintf(os.Stderr, "error: failed to open store: %v\n", err)
		return 1
	}
	defer st.Close()

	if n, err := st.Count(context.Background()); err == nil {
		metrics.StoredStrings.Set(float64(n))
	}

	if isCLIMode() {
		if err := newCLIApp(st, cfg).Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	// MCP server mode (default)
	logger.Logger.Debugw("starting MCP server", "storage", cfg.Storage)
	if err := mcp.Run(st, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
