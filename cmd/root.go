// Package cmd implements the CLI command structure for todolist.
package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/hooks"
	"github.com/nibzard/todolist-go/internal/loader"
	"github.com/nibzard/todolist-go/internal/logging"
	"github.com/nibzard/todolist-go/internal/seedserver"
	"github.com/nibzard/todolist-go/internal/todo"
	"github.com/nibzard/todolist-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todolist CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todolist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	logger := logging.NewFromConfig(stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)

	// Determine the subcommand
	// If no args or first arg is a flag, use "tui" as default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "ls":
		return lsCommand(ctx, cfg, remainingArgs, stdout)
	case "validate":
		return validateCommand(cfg, remainingArgs, stdout)
	case "serve":
		return serveCommand(ctx, cfg, remainingArgs, logger)
	case "config":
		return configCommand(cws, remainingArgs, stdout)
	case "version", "--version", "-v":
		return versionCommand(stdout)
	case "help", "--help", "-h":
		printUsage(fs, stdout)
		return nil
	default:
		// An existing file is taken as the seed file for the TUI.
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			return tuiCommand(ctx, cfg, append([]string{subcommand}, remainingArgs...))
		}
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand launches the TUI. Logs go to the log file so they do not
// disturb the screen.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todolist tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	explicit, err := applySeedArg(cfg, fs.Args())
	if err != nil {
		return err
	}

	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	sink, err := logging.OpenFileSink(cfg.LogDir, cfg.ProjectRoot, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer sink.Close()
	logger := logging.NewFromConfig(sink.Writer(), cfg.LogLevel, cfg.LogFormat, true, cfg.LogCaller)

	list, notifier, err := newList(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer notifier.Wait()
	if notifier.Enabled() {
		if _, err := hooks.Resolve(cfg.HookCommand, cfg.ProjectRoot); err != nil {
			logger.Warn("delete hook may not run", "err", err)
		}
	}

	logger.Info("starting tui", "seed", loader.Describe(cfg), "id_scheme", cfg.IDScheme)
	return ui.RunTUI(ctx, ui.Options{
		List:   list,
		Loader: seedLoader(cfg, explicit),
		Logger: logger,
	})
}

// newList builds a list wired to the configured id scheme and delete hook.
func newList(ctx context.Context, cfg *config.Config, logger *log.Logger) (*todo.List, *hooks.Notifier, error) {
	ids, err := todo.NewIDGenerator(cfg.IDScheme)
	if err != nil {
		return nil, nil, err
	}
	notifier := hooks.NewNotifier(ctx, cfg.HookCommand, cfg.ProjectRoot, logger)
	list := todo.NewList(
		todo.WithIDGenerator(ids),
		todo.WithDeleteNotifier(notifier.Notify),
	)
	return list, notifier, nil
}

// lsCommand prints the seed items.
func lsCommand(ctx context.Context, cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("todolist ls", flag.ContinueOnError)
	onlyDone := fs.Bool("done", false, "Only show done items")
	onlyOpen := fs.Bool("open", false, "Only show open items")
	format := fs.String("format", "text", "Output format (text, json, yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *onlyDone && *onlyOpen {
		return fmt.Errorf("-done and -open are mutually exclusive")
	}
	switch *format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q, must be one of: text, json, yaml", *format)
	}
	explicit, err := applySeedArg(cfg, fs.Args())
	if err != nil {
		return err
	}

	seed, err := seedLoader(cfg, explicit).Load(ctx)
	if err != nil {
		return fmt.Errorf("loading seed data: %w", err)
	}

	list := todo.NewList()
	list.Seed(seed.Data)
	items := make([]todo.Item, 0, list.Len())
	for _, item := range list.Items() {
		if (*onlyDone && !item.IsDone) || (*onlyOpen && item.IsDone) {
			continue
		}
		items = append(items, item)
	}
	return writeItems(w, *format, items)
}

// writeItems prints items in the given format. The json and yaml forms use
// the seed file shape so the output can be fed back in as seed data.
func writeItems(w io.Writer, format string, items []todo.Item) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(todo.Seed{Data: items})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(todo.Seed{Data: items}); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, item := range items {
			fmt.Fprintln(w, formatItem(item))
		}
		return nil
	}
}

// validateCommand validates a seed file against the schema.
func validateCommand(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("todolist validate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	seedPath := cfg.SeedFile
	if len(remaining) == 1 {
		seedPath = resolvePath(cfg, remaining[0])
	}

	seed, result, err := todo.ValidateFile(seedPath, todo.ValidationOptions{SchemaPath: cfg.SchemaFile})
	if err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	if !result.Valid {
		for _, verr := range result.Errors {
			fmt.Fprintf(w, "error: %v\n", verr)
		}
		return fmt.Errorf("%s: %d validation error(s)", seedPath, len(result.Errors))
	}

	mode := "minimal checks"
	if result.UsedSchema {
		mode = "schema"
	}
	fmt.Fprintf(w, "%s: ok (%d items, %s)\n", seedPath, len(seed.Data), mode)
	return nil
}

// serveCommand serves the seed file over HTTP until ctx ends.
func serveCommand(ctx context.Context, cfg *config.Config, args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet("todolist serve", flag.ContinueOnError)
	addr := fs.String("addr", cfg.ServeAddr, "Listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	seedPath := cfg.SeedFile
	if len(remaining) == 1 {
		seedPath = resolvePath(cfg, remaining[0])
	}

	srv := seedserver.New(seedserver.Options{
		Addr:     *addr,
		SeedFile: seedPath,
		Logger:   logger,
		Debug:    logging.ParseLevel(cfg.LogLevel) == log.DebugLevel,
	})
	return srv.Run(ctx)
}

// configCommand prints the effective configuration and where each value
// came from.
func configCommand(cws *config.ConfigWithSources, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("todolist config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *example {
		fmt.Fprint(w, config.ExampleConfig())
		return nil
	}

	if len(cws.Files) == 0 {
		fmt.Fprintln(w, "# no config files found")
	}
	for _, file := range cws.Files {
		fmt.Fprintf(w, "# loaded %s\n", file)
	}
	for _, kv := range configValues(cws.Config) {
		fmt.Fprintf(w, "%-22s = %-40s # %s\n", kv.key, kv.value, cws.Sources[kv.key])
	}
	return nil
}

type configValue struct {
	key   string
	value string
}

func configValues(cfg *config.Config) []configValue {
	return []configValue{
		{"seed_file", strconv.Quote(cfg.SeedFile)},
		{"seed_url", strconv.Quote(cfg.SeedURL)},
		{"schema_file", strconv.Quote(cfg.SchemaFile)},
		{"fetch_timeout_seconds", strconv.Itoa(cfg.FetchTimeoutSeconds)},
		{"id_scheme", strconv.Quote(cfg.IDScheme)},
		{"hook_command", strconv.Quote(cfg.HookCommand)},
		{"serve_addr", strconv.Quote(cfg.ServeAddr)},
		{"log_dir", strconv.Quote(cfg.LogDir)},
		{"log_file", strconv.Quote(cfg.LogFile)},
		{"log_level", strconv.Quote(cfg.LogLevel)},
		{"log_format", strconv.Quote(cfg.LogFormat)},
		{"log_timestamps", strconv.FormatBool(cfg.LogTimestamps)},
		{"log_caller", strconv.FormatBool(cfg.LogCaller)},
	}
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "todolist version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todolist - A keyboard-driven to-do list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todolist [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui [file]       Launch terminal UI (default command)")
	fmt.Fprintln(w, "  ls [file]        List seed items")
	fmt.Fprintln(w, "  validate [file]  Validate a seed file")
	fmt.Fprintln(w, "  serve [file]     Serve a seed file at GET /data")
	fmt.Fprintln(w, "  config           Show effective configuration and sources")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options (use with 'ls' command):")
	fmt.Fprintln(w, "  -done    Only show done items")
	fmt.Fprintln(w, "  -open    Only show open items")
	fmt.Fprintln(w, "  -format  Output format: text, json or yaml (default text)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve Options (use with 'serve' command):")
	fmt.Fprintln(w, "  -addr string")
	fmt.Fprintln(w, "        Listen address (default from serve_addr)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options (use with 'config' command):")
	fmt.Fprintln(w, "  -example Print an example config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "TUI Keys:")
	fmt.Fprintln(w, "  enter    Add the typed item / save an edit")
	fmt.Fprintln(w, "  tab      Switch between the input and the list")
	fmt.Fprintln(w, "  space    Toggle the selected item")
	fmt.Fprintln(w, "  e        Update the selected open item")
	fmt.Fprintln(w, "  d        Delete the selected done item")
	fmt.Fprintln(w, "  esc      Cancel an edit")
	fmt.Fprintln(w, "  q        Quit (from the list)")
}

// applySeedArg takes an optional positional seed file and reports whether
// one was given. An explicit file overrides any configured seed URL.
func applySeedArg(cfg *config.Config, remaining []string) (bool, error) {
	if len(remaining) > 1 {
		return false, fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if len(remaining) == 0 {
		return false, nil
	}
	cfg.SeedFile = resolvePath(cfg, remaining[0])
	cfg.SeedURL = ""
	return true, nil
}

// seedLoader returns the configured loader. An explicitly named seed file
// must exist rather than falling back to an empty list.
func seedLoader(cfg *config.Config, explicit bool) loader.Loader {
	if explicit {
		return loader.Once(loader.FileLoader{Path: cfg.SeedFile})
	}
	return loader.New(cfg)
}

func resolvePath(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.ProjectRoot, path)
}

func formatItem(item todo.Item) string {
	mark := " "
	if item.IsDone {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s  %s", mark, item.ID, item.Value)
}
