package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codinganovel/mdns/internal/app"
	"github.com/codinganovel/mdns/internal/config"
	"github.com/codinganovel/mdns/internal/explorer"
	"github.com/codinganovel/mdns/internal/module"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	startDir     = flag.String("C", ".", "directory to open")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("mdns version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	workDir, err := filepath.Abs(config.ExpandPath(*startDir))
	if err == nil {
		var info os.FileInfo
		info, err = os.Stat(workDir)
		if err == nil && !info.IsDir() {
			err = fmt.Errorf("%s is not a directory", workDir)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid directory: %v\n", err)
		os.Exit(2)
	}

	registry := module.NewRegistry()
	launcher := module.NewLauncher(registry, logger)

	// "mdns <module> [args...]" bypasses the TUI entirely and mirrors
	// the child's exit code.
	if args := flag.Args(); len(args) > 0 {
		code, err := launcher.Run(args[0], args[1:], workDir)
		if err != nil {
			var nf *module.NotFoundError
			if errors.As(err, &nf) {
				fmt.Fprintln(os.Stderr, nf.Error())
			} else {
				fmt.Fprintf(os.Stderr, "Failed to run %s: %v\n", args[0], err)
			}
			os.Exit(1)
		}
		os.Exit(code)
	}

	ex, err := explorer.New(explorer.NewCache(cfg.Cache.MaxEntries), workDir, cfg.UI.ShowHidden, cfg.Search.ContentThresholdBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", workDir, err)
		os.Exit(2)
	}

	watcher, err := explorer.NewWatcher()
	if err != nil {
		logger.Warn("file watching unavailable", "error", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	model := app.New(cfg, ex, watcher, registry, launcher, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdns [options] [module [args...]]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal file browser and markdown notes studio.\n\n")
		fmt.Fprintf(os.Stderr, "With a module name, runs that module directly in the\n")
		fmt.Fprintf(os.Stderr, "chosen directory and exits with its status.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
