package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trucktrack/internal/catalog"
	"trucktrack/internal/config"
	"trucktrack/internal/eventbus"
	"trucktrack/internal/logging"
	"trucktrack/internal/ui"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	configPath string
	startPath  string
	logFile    string
	verbose    bool
}

func (o *rootOptions) resolvedConfigPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.DefaultPath()
}

// app is everything a command needs once flags are parsed
type app struct {
	cfg     *config.Config
	cfgSvc  config.ConfigService
	store   *catalog.MemoryStore
	bus     eventbus.EventBus
	logger  *zap.Logger
	cleanup func()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "trucktrack",
		Short: "Find food trucks from your terminal",
		Long: `trucktrack is a terminal front-end for browsing food trucks.

Run without arguments to start the interactive UI. Press ? inside it for
the key bindings.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/trucktrack/config.toml)")
	flags.StringVarP(&opts.startPath, "path", "p", "", "path to open first, e.g. /events")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (overrides log_file from the config)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newRoutesCmd(opts),
		newResolveCmd(opts),
		newTrucksCmd(opts),
		newConfigCmd(opts),
	)
	return rootCmd
}

// setup loads the config, opens the log and the catalog. The returned app's
// cleanup must be called when the command is done.
func setup(opts *rootOptions) (*app, error) {
	bus := eventbus.New()

	path := opts.resolvedConfigPath()
	cfgSvc := config.NewConfigServiceAt(path, bus)
	cfg, err := cfgSvc.Load()
	if err != nil {
		bus.Close()
		return nil, err
	}
	if opts.startPath != "" {
		cfg.StartPath = opts.startPath
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: opts.verbose})
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	logger.Info("config loaded", zap.String("path", path), zap.String("start_path", cfg.StartPath))

	unsubscribe := logEvents(bus, logger)

	store, err := catalog.Load(cfg.CatalogFile, bus, logger)
	if err != nil {
		unsubscribe()
		bus.Close()
		_ = logger.Sync()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		cfgSvc: cfgSvc,
		store:  store,
		bus:    bus,
		logger: logger,
		cleanup: func() {
			unsubscribe()
			bus.Close()
			_ = logger.Sync()
		},
	}, nil
}

// logEvents records domain traffic in the log file
func logEvents(bus eventbus.EventBus, logger *zap.Logger) func() {
	log := logger.Named("events")
	unsubs := []func(){
		bus.Subscribe(eventbus.EventViewResolved, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.ViewResolvedEvent)
			log.Info("view resolved",
				zap.String("path", ev.Path),
				zap.String("view", ev.View),
				zap.Any("params", ev.Params),
				zap.Bool("not_found", ev.NotFound),
				zap.Bool("has_state", ev.HasState))
		}),
		bus.Subscribe(eventbus.EventSearchSubmitted, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.SearchSubmittedEvent)
			log.Info("search submitted",
				zap.String("query", ev.Query),
				zap.String("cuisine", string(ev.Cuisine)),
				zap.Bool("accepted", ev.Accepted))
		}),
		bus.Subscribe(eventbus.EventFilterChanged, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.FilterChangedEvent)
			log.Debug("filter changed", zap.String("active", string(ev.Active)))
		}),
		bus.Subscribe(eventbus.EventNotification, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.NotificationEvent)
			log.Debug("toast",
				zap.String("id", ev.Notification.ID),
				zap.String("kind", string(ev.Notification.Kind)),
				zap.String("message", ev.Notification.Message))
		}),
		bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.CatalogLoadedEvent)
			log.Debug("catalog ready", zap.String("source", ev.Source), zap.Int("trucks", ev.Trucks))
		}),
		bus.Subscribe(eventbus.EventSortChanged, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.SortChangedEvent)
			log.Debug("results sorted", zap.String("from", ev.Old), zap.String("to", ev.New))
		}),
		bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
			log.Info("config saved", zap.String("path", e.(eventbus.ConfigSavedEvent).Path))
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	a, err := setup(opts)
	if err != nil {
		return err
	}
	defer a.cleanup()

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(a.bus, a.cfg, a.store, a.logger)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.cfg.UISettings.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, progOpts...)
	model.SetProgram(p)

	a.logger.Info("starting UI")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			a.logger.Info("interrupted")
			return nil
		}
		a.logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	a.logger.Info("UI exited normally")
	return nil
}

// commandContext returns a context for commands run outside cobra.Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
