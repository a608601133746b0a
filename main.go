package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alecthomas/kong"

	"github.com/aggroot/pokertools/internal/applog"
)

var version = "dev"

// CLI is the top-level pokertools command: ingest hand histories into
// a warehouse, serve the query API over HTTP, or query it directly
// from the shell.
type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Ingest IngestCmd `cmd:"" help:"Parse hand-history files into a range warehouse"`
	Serve  ServeCmd  `cmd:"" help:"Serve the range query API over HTTP"`
	Query  QueryCmd  `cmd:"" help:"Query the range warehouse from the command line"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokertools"),
		kong.Description("Hand-history ingest, storage, and range query tooling"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	applog.Init(cli.Debug || os.Getenv("POKERTOOLS_DEBUG") == "1")
	slog.Info("starting", "version", version, "command", ctx.Command())

	ctx.FatalIfErrorf(ctx.Run())
}

// defaultWarehousePath returns the OS-appropriate default location for
// the range warehouse:
//
//	Linux:   $XDG_DATA_HOME/pokertools/ranges.db (defaults to ~/.local/share/pokertools/)
//	Windows: %LOCALAPPDATA%\pokertools\ranges.db
//	macOS:   ~/Library/Application Support/pokertools/ranges.db
//
// Falls back to ~/.pokertools/ if no OS data directory can be
// determined, and to the current directory if the chosen directory
// cannot be created.
func defaultWarehousePath() string {
	const appName = "pokertools"
	const dbFile = "ranges.db"

	baseDir := userDataDir()
	if baseDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, "."+appName)
			if err := os.MkdirAll(dir, 0o755); err == nil {
				return filepath.Join(dir, dbFile)
			}
		}
		return filepath.Join(".", dbFile)
	}

	dir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Warn("failed to create data directory", "dir", dir, "error", err)
		return filepath.Join(".", dbFile)
	}
	return filepath.Join(dir, dbFile)
}

// userDataDir returns the OS-specific base directory for persistent user data.
func userDataDir() string {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return dir
		}
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "AppData", "Local")
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default: // Linux and other Unix-like
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".local", "share")
		}
	}
	return ""
}
