// Package app wires configuration, logging, the event bus and the deck into
// a running terminal presenter.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"slidedeck/internal/config"
	"slidedeck/internal/deck"
	"slidedeck/internal/domain"
	"slidedeck/internal/eventbus"
	"slidedeck/internal/logger"
	"slidedeck/internal/ui"
)

// E2EEnv enables the readiness marker the e2e suite waits for
const E2EEnv = "SLIDEDECK_E2E_TEST"

// Options are the command line options
type Options struct {
	DeckPath   string
	ConfigPath string
	LogPath    string
	InitConfig bool
}

// ParseFlags parses command line arguments, without the program name
func ParseFlags(args []string, output io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet("slidedeck", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.DeckPath, "deck", "", "Deck file to present (TOML)")
	fs.StringVar(&opts.DeckPath, "d", "", "Deck file to present (shorthand)")
	fs.StringVar(&opts.ConfigPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	fs.StringVar(&opts.LogPath, "log", "", "Log file (default "+logger.DefaultPath()+")")
	fs.BoolVar(&opts.InitConfig, "init-config", false, "Write the default config file and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	// If no deck specified, check for remaining args
	if opts.DeckPath == "" && fs.NArg() > 0 {
		opts.DeckPath = fs.Arg(0)
	}
	return opts, nil
}

// Run runs the presenter and returns the process exit code
func Run(args []string) int {
	opts, err := ParseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.InitConfig {
		path, err := initConfig(opts.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return 0
	}

	s, err := newSession(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer s.Close()

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.log.Error("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	return 0
}

func initConfig(path string) (string, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}
	if err := config.SaveToPath(config.DefaultConfig(), path); err != nil {
		return "", err
	}
	return path, nil
}

// session holds everything a run needs, built before the terminal is taken
type session struct {
	cfg     *config.Config
	log     *zap.Logger
	bus     eventbus.EventBus
	deck    *domain.Deck
	model   *ui.Model
	cleanup []func()
}

func newSession(opts Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logPath := cfg.Log.File
	if opts.LogPath != "" {
		logPath = opts.LogPath
	}
	log, closeLog, err := logger.New(logPath, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: log, cleanup: []func(){closeLog}}

	deckPath := cfg.Deck.Path
	if opts.DeckPath != "" {
		deckPath = opts.DeckPath
	}
	d, err := deck.Load(deckPath)
	if err != nil {
		log.Error("failed to load deck", zap.String("path", deckPath), zap.Error(err))
		s.Close()
		return nil, err
	}
	s.deck = d

	s.bus = eventbus.New(log)
	s.cleanup = append([]func(){s.bus.Close}, s.cleanup...)
	unsubscribe := subscribeLogging(s.bus, log)
	s.cleanup = append([]func(){unsubscribe}, s.cleanup...)

	var modelOpts []ui.Option
	if os.Getenv(E2EEnv) == "1" {
		modelOpts = append(modelOpts, ui.WithReadyMarker())
	}
	s.model = ui.NewModel(d, cfg, s.bus, log, modelOpts...)

	s.bus.Publish(domain.DeckLoadedEvent{Title: d.Title(), Slides: d.Len(), Path: deckPath})
	return s, nil
}

func (s *session) run(ctx context.Context) error {
	p := tea.NewProgram(s.model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	s.log.Info("starting UI", zap.String("deck", s.deck.Title()), zap.Int("slides", s.deck.Len()))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		s.log.Info("interrupted")
		return nil
	}
	if err != nil {
		return err
	}
	s.log.Info("UI exited normally")
	return nil
}

// Close releases the session's resources in reverse order of acquisition
func (s *session) Close() {
	for _, fn := range s.cleanup {
		fn()
	}
	s.cleanup = nil
}

// subscribeLogging records navigation events in the log
func subscribeLogging(bus eventbus.EventBus, log *zap.Logger) func() {
	log = log.Named("events")
	unsubs := []func(){
		bus.Subscribe(eventbus.EventDeckLoaded, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.DeckLoadedEvent); ok {
				log.Info("deck loaded",
					zap.String("title", event.Title),
					zap.Int("slides", event.Slides),
					zap.String("path", event.Path))
			}
		}),
		bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.SlideChangedEvent); ok {
				log.Info("slide changed",
					zap.Int("from", event.From),
					zap.Int("to", event.To),
					zap.String("source", string(event.Source)))
			}
		}),
		bus.Subscribe(eventbus.EventTransitionStarted, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.TransitionStartedEvent); ok {
				log.Debug("transition started", zap.Int("from", event.From), zap.Int("to", event.To))
			}
		}),
		bus.Subscribe(eventbus.EventTransitionReleased, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.TransitionReleasedEvent); ok {
				log.Debug("transition released", zap.Int("index", event.Index), zap.Duration("held", event.Held))
			}
		}),
		bus.Subscribe(eventbus.EventScrollHintToggled, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ScrollHintToggledEvent); ok {
				log.Debug("scroll hint toggled", zap.Bool("visible", event.Visible))
			}
		}),
		bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ErrorEvent); ok {
				log.Error(event.Message, zap.Error(event.Err))
			}
		}),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
