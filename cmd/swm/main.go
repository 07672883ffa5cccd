package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/1broseidon/swm/internal/config"
	"github.com/1broseidon/swm/internal/platform"
	"github.com/1broseidon/swm/internal/wm"
	"gopkg.in/yaml.v3"
)

const wmName = "swm"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "config":
			os.Exit(runConfig(os.Args[2:], os.Stdout, os.Stderr))
		case "help", "-h", "--help":
			printUsage(os.Stdout)
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n\n", os.Args[1])
			printUsage(os.Stderr)
			os.Exit(2)
		}
	}

	runManager()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: swm [command]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Without a command, runs the window manager on $DISPLAY in the foreground.")
	fmt.Fprintln(w, "Settings are read once from $XDG_CONFIG_HOME/swm/config.yaml if it exists.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "  help                Show this help")
}

func runManager() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)
	logger.Info("configuration loaded",
		"modifier", cfg.Modifier,
		"border_width", cfg.BorderWidth,
		"mouse", cfg.EnableMouse,
		"sloppy_focus", cfg.EnableSloppy)

	backend, err := platform.NewLinuxBackendFromDisplay(cfg.Display, logger)
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	if err := backend.Setup(wmName); err != nil {
		log.Fatalf("Failed to take over the display: %v", err)
	}

	manager := wm.New(backend, cfg, logger)
	if err := manager.GrabButtons(); err != nil {
		log.Fatalf("Failed to register mouse bindings: %v", err)
	}
	if err := manager.Adopt(); err != nil {
		log.Fatalf("Failed to manage existing windows: %v", err)
	}
	backend.Flush()

	// Run only returns when the display connection is unusable.
	if err := manager.Run(); err != nil {
		backend.Disconnect()
		log.Fatalf("Lost connection to X server: %v", err)
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func runConfig(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  swm config validate [--path PATH]")
		fmt.Fprintln(stderr, "  swm config print [--path PATH] [--defaults]")
		fmt.Fprintln(stderr, "  swm config explain [--path PATH] <key>")
		return 2
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/swm/config.yaml)")
	printDefaults := false
	if args[0] == "print" {
		fs.BoolVar(&printDefaults, "defaults", false, "Print build-time defaults (no file)")
	}

	switch args[0] {
	case "validate", "print", "explain":
	default:
		fmt.Fprintf(stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	var res *config.LoadResult
	var err error
	switch {
	case printDefaults:
		res = &config.LoadResult{Config: config.DefaultConfig()}
	case *path == "":
		res, err = config.LoadWithSources()
	default:
		res, err = config.LoadFromPath(*path)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	switch args[0] {
	case "validate":
		fmt.Fprintln(stdout, "config: ok")
		return 0

	case "print":
		data, err := yaml.Marshal(res.Config)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, string(data))
		return 0

	default:
		if fs.NArg() < 1 {
			fmt.Fprintln(stderr, "explain requires <key>")
			return 2
		}
		key := fs.Arg(0)
		value, src, err := config.Explain(res, key)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		out, err := yaml.Marshal(value)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "key: %s\n", key)
		fmt.Fprintf(stdout, "source: %s\n", formatSource(src))
		fmt.Fprintf(stdout, "value: %s", string(out))
		return 0
	}
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		if src.File == "" {
			return "file"
		}
		if src.Line > 0 {
			return fmt.Sprintf("file:%s:%d:%d", src.File, src.Line, src.Column)
		}
		return "file:" + src.File
	case config.SourceDefault:
		return "default"
	default:
		return string(src.Kind)
	}
}
