// wb is a terminal viewer for workspace boards: a home page, workspace
// pages, and boards shown as a grouped table, a kanban or a filterable
// work item grid.
//
// The data comes from the built-in fixtures or from a YAML/JSON file
// given with --fixtures, which --watch reloads on change. With --print, or
// whenever stdout is not a terminal, the route is rendered once and wb
// exits, with status 2 when the route does not resolve.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/config"
	"github.com/workboard/wb/pkg/export"
	"github.com/workboard/wb/pkg/filter"
	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/logging"
	"github.com/workboard/wb/pkg/route"
	"github.com/workboard/wb/pkg/ui"
	"github.com/workboard/wb/pkg/version"
	"github.com/workboard/wb/pkg/watcher"
)

// defaultPrintWidth is used when stdout has no size and none is configured
const defaultPrintWidth = 120

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for a route that names nothing, 1 for any other failure
func exitCode(err error) int {
	if route.IsNotFound(err) {
		return 2
	}
	return 1
}

// options are the parsed command line flags
type options struct {
	configPath string
	fixtures   string
	view       string
	set        string
	print      bool
	width      int
	exportDir  string
	format     string
	watch      bool
	logFile    string
	logLevel   string
	version    bool
	help       bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("wb", pflag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "config file (default: $"+config.EnvVar+")")
	fs.StringVar(&opts.fixtures, "fixtures", "", "YAML or JSON file replacing the built-in data")
	fs.StringVar(&opts.view, "view", "", "board view to open: table, kanban or workitems")
	fs.StringVar(&opts.set, "set", "", "work items result set to select initially")
	fs.BoolVar(&opts.print, "print", false, "render the route once to stdout and exit")
	fs.IntVar(&opts.width, "width", 0, "render width for --print (default: terminal width)")
	fs.StringVar(&opts.exportDir, "export", "", "write a kanban snapshot of every board into this directory")
	fs.StringVar(&opts.format, "format", "svg", "snapshot format for --export: svg or png")
	fs.BoolVar(&opts.watch, "watch", false, "reload the fixtures file when it changes")
	fs.StringVar(&opts.logFile, "log-file", "", "append JSON log records to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.BoolVarP(&opts.help, "help", "h", false, "show help")
	fs.SortFlags = false
	return fs
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	fs := newFlagSet(&opts)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(fs, stderr)
			return nil
		}
		return err
	}
	if opts.help {
		printHelp(fs, stderr)
		return nil
	}
	if opts.version {
		fmt.Fprintln(stdout, version.String())
		return nil
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("unexpected argument: %s", fs.Arg(1))
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogOptions())
	if err != nil {
		return err
	}
	defer logger.Close()

	store, err := loader.LoadStore(cfg.Fixtures)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}
	logger.Debug().Int("items", store.ItemCount()).Str("fixtures", cfg.Fixtures).Msg("store loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.exportDir != "" {
		paths, err := export.ExportAll(ctx, store, opts.exportDir, opts.format, logger.Logger)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(stdout, p)
		}
		return nil
	}

	uiOpts := ui.Options{
		Store:     store,
		Path:      fs.Arg(0),
		View:      cfg.View(),
		ResultSet: cfg.ResultSet(),
		Log:       logger.Logger,
	}
	if uiOpts.Path == "" {
		uiOpts.Path = "/"
	}

	if opts.print || !isTerminal(stdout) {
		return ui.Print(stdout, uiOpts, printWidth(cfg.Width, stdout))
	}
	return runProgram(ctx, cfg, logger, uiOpts)
}

// loadConfig reads the config file and applies the flags the user set
func loadConfig(fs *pflag.FlagSet, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if fs.Changed("fixtures") {
		cfg.Fixtures = opts.fixtures
	}
	if fs.Changed("view") {
		cfg.DefaultView = opts.view
	}
	if fs.Changed("set") {
		cfg.DefaultResultSet = opts.set
	}
	if fs.Changed("width") {
		cfg.Width = opts.width
	}
	if fs.Changed("watch") {
		cfg.Watch = opts.watch
	}
	if fs.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Watch && cfg.Fixtures == "" {
		return nil, errors.New("--watch needs a fixtures file")
	}
	if opts.exportDir != "" && opts.format != "svg" && opts.format != "png" {
		return nil, fmt.Errorf("invalid --format %q (want svg or png)", opts.format)
	}
	return cfg, nil
}

func runProgram(ctx context.Context, cfg *config.Config, logger *logging.Logger, opts ui.Options) error {
	program := tea.NewProgram(ui.New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	logger.Status.SetProgram(program)

	if cfg.Watch {
		w, err := watcher.New(cfg.Fixtures, logger.Logger)
		if err != nil {
			return err
		}
		defer w.Close()

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := w.Run(watchCtx, func() {
				store, err := loader.LoadStore(w.Path())
				if err != nil {
					program.Send(ui.StoreReloadFailedMsg{Err: err})
					return
				}
				program.Send(ui.StoreReloadedMsg{Store: store})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn().Err(err).Msg("watcher stopped")
			}
		}()
	}

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printWidth picks the configured width, then the terminal's
func printWidth(configured int, w io.Writer) int {
	if configured > 0 {
		return configured
	}
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultPrintWidth
}

func printHelp(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `wb: a terminal viewer for workspace boards.

Usage:
  wb [flags] [route]

Routes:
  /                                   home
  /workspace/{workspaceId}            workspace page
  /workspace/{workspaceId}/board/{id} board page

Examples:
  wb /workspace/softdev/board/veis --view kanban
  wb --fixtures team.yaml --watch
  wb --print /workspace/hr --width 100
  wb --export snapshots --format png

Views: %s, %s, %s. Result sets: %s and others (see the Work Items view).

Flags:
`, board.ViewTable, board.ViewKanban, board.ViewWorkItems, filter.DefaultResultSet)
	fs.PrintDefaults()
}
