package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"slidedeck/internal/clock"
	"slidedeck/internal/config"
	"slidedeck/internal/domain"
	"slidedeck/internal/eventbus"
	"slidedeck/internal/navigator"
	"slidedeck/internal/ui/animation"
	"slidedeck/internal/ui/input"
	inputtypes "slidedeck/internal/ui/input/types"
	"slidedeck/internal/ui/views"
)

// Model is the bubbletea model of the presenter. It is also the navigator's
// presentation layer: it implements navigator.Presenter and navigator.Layout.
type Model struct {
	deck   *domain.Deck
	config *config.Config
	log    *zap.Logger
	bus    eventbus.EventBus

	nav       *navigator.Navigator
	sched     clock.Scheduler
	timers    <-chan func() // nil when the scheduler runs callbacks itself
	viewport  viewport.Model
	scroller  *scroller
	framing   bool // a scroll frame is scheduled
	entrances *animation.Entrances
	ticking   bool // an entrance tick is scheduled
	renderer  *views.Renderer
	input     *input.Handler
	help      help.Model
	now       func() time.Time

	// UI-specific state
	width        int
	height       int
	tops         []int // slide tops in document rows, plus the document end
	active       int   // indicator shown as active
	hintVisible  bool
	showFullHelp bool
	status       string
	readyMarker  bool
	touch        touchState

	// commands requested by presenter calls, flushed at the end of Update
	pending []tea.Cmd
}

type touchState struct {
	pressed bool
	onDots  bool
}

// Option customizes a Model
type Option func(*Model)

// WithScheduler replaces the wall-clock scheduler, e.g. with clock.Manual in tests
func WithScheduler(s clock.Scheduler) Option {
	return func(m *Model) {
		m.sched = s
		m.timers = nil
	}
}

// WithReadyMarker prints a marker once the first frame is laid out
func WithReadyMarker() Option {
	return func(m *Model) { m.readyMarker = true }
}

// WithClock replaces the time source of entrance animations
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(d *domain.Deck, cfg *config.Config, bus eventbus.EventBus, log *zap.Logger, opts ...Option) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	wall := clock.NewReal(16)

	m := &Model{
		deck:      d,
		config:    cfg,
		log:       log.Named("ui"),
		bus:       bus,
		sched:     wall,
		timers:    wall.C(),
		viewport:  viewport.New(0, 0),
		scroller:  newScroller(),
		entrances: animation.NewEntrances(cfg.Animation.RevealInterval, cfg.Animation.CountDuration),
		renderer:  views.NewRenderer(),
		input:     input.New(),
		help:      help.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	navOpts := []navigator.Option{
		navigator.WithCooldown(cfg.Navigation.Cooldown),
		navigator.WithWheelDebounce(cfg.Navigation.WheelDebounce),
		navigator.WithEdgeTolerance(cfg.Navigation.EdgeTolerance),
		navigator.WithSwipeThreshold(cfg.Navigation.SwipeThreshold),
		navigator.WithResyncOnRelease(true),
	}
	if bus != nil {
		navOpts = append(navOpts, navigator.WithPublisher(bus))
	}
	m.nav = navigator.New(d.Len(), m, m, m.sched, navOpts...)

	return m
}

// Navigator returns the model's navigator
func (m *Model) Navigator() *navigator.Navigator { return m.nav }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	// Every launch starts at the top
	m.viewport.GotoTop()
	m.PlayEntranceAnimations(0)

	cmds := m.flush()
	if m.timers != nil {
		cmds = append(cmds, waitForTimer(m.timers))
	}
	return tea.Batch(cmds...)
}

func waitForTimer(c <-chan func()) tea.Cmd {
	return func() tea.Msg {
		return timerFiredMsg{fn: <-c}
	}
}

func scrollFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return scrollFrameMsg(t)
	})
}

func entranceTick() tea.Cmd {
	return tea.Tick(frameInterval*2, func(t time.Time) tea.Msg {
		return entranceTickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()

	case timerFiredMsg:
		msg.fn()
		if m.timers != nil {
			cmds = append(cmds, waitForTimer(m.timers))
		}

	case scrollFrameMsg:
		if !m.scroller.Active() {
			// stopped by a native scroll or a resize
			m.framing = false
			break
		}
		offset, done := m.scroller.Step()
		m.viewport.SetYOffset(offset)
		m.nav.OnNativeScroll()
		if done {
			m.framing = false
		} else {
			cmds = append(cmds, scrollFrame())
		}

	case entranceTickMsg:
		m.refreshContent()
		if m.entrances.Active(m.now()) {
			cmds = append(cmds, entranceTick())
		} else {
			m.ticking = false
		}

	case notesClosedMsg:
		if msg.err != nil {
			m.log.Warn("notes pager failed", zap.Error(msg.err))
			m.status = "Notes pager failed: " + msg.err.Error()
			if m.bus != nil {
				m.bus.Publish(domain.ErrorEvent{Message: "notes pager failed", Err: msg.err})
			}
		}

	case tea.KeyMsg:
		m.status = ""
		for _, action := range m.input.HandleKey(msg) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	cmds = append(cmds, m.flush()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.NavigateAction:
		m.nav.OnKeyPress(a.Key)

	case inputtypes.SelectSlideAction:
		m.nav.SelectIndicator(a.Index)

	case inputtypes.ScrollAction:
		m.nativeScroll(a.Lines)

	case inputtypes.HalfPageAction:
		half := m.viewport.Height / 2
		if half < 1 {
			half = 1
		}
		if !a.Down {
			half = -half
		}
		m.nativeScroll(half)

	case inputtypes.ShowNotesAction:
		index := m.nav.Current()
		s, _ := m.deck.Slide(index)
		cmd := showNotes(index, m.deck.Len(), s)
		if cmd == nil {
			m.status = "No notes for this slide"
		}
		return cmd

	case inputtypes.ToggleHelpAction:
		m.showFullHelp = !m.showFullHelp
		m.help.ShowAll = m.showFullHelp
		m.relayout()
	}
	return nil
}

// nativeScroll moves the viewport freely, like the user dragging a scrollbar
func (m *Model) nativeScroll(lines int) {
	m.scroller.Stop()
	if lines > 0 {
		m.viewport.LineDown(lines)
	} else if lines < 0 {
		m.viewport.LineUp(-lines)
	}
	m.nav.OnNativeScroll()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.wheel(1)
	case msg.Button == tea.MouseButtonWheelUp:
		m.wheel(-1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.touch = touchState{pressed: true, onDots: m.onDots(msg.X)}
		if !m.touch.onDots {
			m.nav.OnTouchStart(msg.Y)
		}

	case msg.Action == tea.MouseActionRelease && m.touch.pressed:
		t := m.touch
		m.touch = touchState{}
		if t.onDots {
			if index, ok := views.DotAt(msg.Y, m.deck.Len(), m.viewport.Height); ok && m.onDots(msg.X) {
				m.nav.SelectIndicator(index)
			}
			return
		}
		m.nav.OnTouchEnd(msg.Y)
	}
}

// wheel forwards a wheel tick to the navigator and scrolls natively unless a
// programmatic scroll is in flight
func (m *Model) wheel(direction int) {
	lines := m.config.Navigation.WheelLines
	m.nav.OnWheel(direction * lines)
	if m.scroller.Active() {
		return
	}
	m.nativeScroll(direction * lines)
}

func (m *Model) onDots(x int) bool {
	return m.config.UI.ShowNavDots && x >= m.width-views.DotsWidth
}

// flush returns and clears the commands queued by presenter calls
func (m *Model) flush() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Document:      m.viewport.View(),
		Indicators:    m.indicators(),
		Current:       m.nav.Current(),
		Count:         m.deck.Len(),
		DeckTitle:     m.deck.Title(),
		ShowDots:      m.config.UI.ShowNavDots,
		ShowProgress:  m.config.UI.ShowProgress,
		HintVisible:   m.hintVisible,
		StatusMessage: m.status,
		HelpModel:     m.help,
		KeyMap:        m.input.KeyMap(),
		ShowFullHelp:  m.showFullHelp,
		Ready:         m.readyMarker,
	})
}

func (m *Model) indicators() []bool {
	out := make([]bool, m.deck.Len())
	out[m.active] = true
	return out
}
