package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/tasksift/internal/config"
	"github.com/sandeepkv93/tasksift/internal/filter"
	"github.com/sandeepkv93/tasksift/internal/ids"
	"github.com/sandeepkv93/tasksift/internal/storage"
	"github.com/sandeepkv93/tasksift/internal/tasklist"
	"github.com/sandeepkv93/tasksift/internal/update"
)

const defaultSQLitePath = ".tasksift.db"

// app carries the resolved configuration and output format across commands.
type app struct {
	configPath string
	flags      config.RuntimeConfig
	jsonOutput bool

	cfg      config.RuntimeConfig
	logger   *log.Logger
	closeLog func() error
}

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs one invocation. Every error, including cobra's own flag and
// argument errors, is written to stderr once in the selected format.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.closeLog != nil {
		if cerr := a.closeLog(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close log file: %w", cerr))
		}
	}
	if err != nil {
		fmt.Fprint(stderr, a.output().FormatError(err))
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tasksift",
		Short:         "A terminal to-do list with sigil filters",
		Long:          "tasksift - a to-do list with priority sigils and structured or sigil-string filtering.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default $TASKSIFT_CONFIG)")
	pf.StringVar((*string)(&a.flags.StoreBackend), "store", "", "Store backend (file, sqlite, memory)")
	pf.StringVar(&a.flags.StorePath, "store-path", "", "Path of the task file or sqlite database")
	pf.StringVar((*string)(&a.flags.FilterMode), "filter-mode", "", "Filter mode (structured, sigil)")
	pf.StringVar((*string)(&a.flags.IDScheme), "id-scheme", "", "Task id scheme (ulid, uuid)")
	pf.StringVar(&a.flags.LogFile, "log-file", "", "Write debug logs to this file")
	pf.BoolVar(&a.jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(
		a.addCmd(),
		a.listCmd(),
		a.toggleCmd(),
		a.rmCmd(),
		a.parseCmd(),
	)
	return root
}

func (a *app) output() formatter {
	if a.jsonOutput {
		return jsonFormatter{}
	}
	return humanFormatter{}
}

// setup resolves configuration in order: defaults, YAML file, environment,
// then flags.
func (a *app) setup() error {
	path := a.configPath
	if path == "" {
		path = os.Getenv("TASKSIFT_CONFIG")
	}
	cfg, err := config.LoadFile(config.DefaultRuntimeConfig(), path)
	if err != nil {
		return err
	}
	cfg = config.RuntimeConfigFromEnv(cfg)
	cfg = config.Merge(cfg, a.flags)
	if cfg.StoreBackend == config.StoreSQLite && cfg.StorePath == config.DefaultRuntimeConfig().StorePath {
		cfg.StorePath = defaultSQLitePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tasksift")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.closeLog = f.Close
		a.logger = log.Default()
	}
	return nil
}

// withList builds the configured store, loads the task list and hands it to
// fn. A failure to close the store is joined onto fn's result.
func (a *app) withList(ctx context.Context, fn func(*tasklist.List) error, opts ...tasklist.Option) (err error) {
	var store storage.Store
	switch a.cfg.StoreBackend {
	case config.StoreSQLite:
		kv, openErr := storage.OpenSQLite(ctx, a.cfg.StorePath)
		if openErr != nil {
			return openErr
		}
		defer func() {
			if cerr := kv.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("close store: %w", cerr))
			}
		}()
		store = storage.NewListStore(kv, storage.DefaultKey)
	case config.StoreMemory:
		store = storage.NewListStore(storage.NewMemoryKV(), storage.DefaultKey)
	default:
		store = storage.NewFileStore(a.cfg.StorePath)
	}

	gen, err := ids.New(a.cfg.IDScheme)
	if err != nil {
		return err
	}
	base := []tasklist.Option{tasklist.WithIDGenerator(gen), tasklist.WithLogger(a.logger)}
	list, err := tasklist.New(ctx, store, append(base, opts...)...)
	if err != nil {
		return err
	}
	return fn(list)
}

func (a *app) runTUI(ctx context.Context) error {
	var initial filter.Input
	if a.cfg.FilterMode == filter.ModeStructured {
		initial = filter.DefaultStructured()
	}
	return a.withList(ctx, func(list *tasklist.List) error {
		program := tea.NewProgram(update.NewModel(ctx, list, a.cfg.FilterMode), tea.WithContext(ctx))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	}, tasklist.WithFilter(initial))
}
