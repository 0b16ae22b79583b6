package ui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"trucktrack/internal/catalog"
	"trucktrack/internal/config"
	"trucktrack/internal/domain"
	"trucktrack/internal/eventbus"
	"trucktrack/internal/router"
	"trucktrack/internal/ui/input"
	"trucktrack/internal/ui/input/keys"
	inputtypes "trucktrack/internal/ui/input/types"
	"trucktrack/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger

	dispatcher *router.Dispatcher
	registry   views.Registry
	env        *views.Env

	// view is rebuilt whenever the dispatcher's sequence moves past mountedSeq
	view       views.View
	mountedSeq uint64
	mounted    bool

	width  int
	height int
	help   help.Model

	status  domain.Notification
	pending []tea.Cmd

	showHelp    bool
	helpScroll  int
	inPagerMode bool

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// Option customises a Model
type Option func(*Model)

// WithRand fixes the random source used by decorative views
func WithRand(r *rand.Rand) Option {
	return func(m *Model) { m.env.Rand = r }
}

// WithRegistry replaces the view factories
func WithRegistry(r views.Registry) Option {
	return func(m *Model) { m.registry = r }
}

// NewModel creates a new UI model positioned at cfg.StartPath
func NewModel(bus eventbus.EventBus, cfg *config.Config, store catalog.Store, logger *zap.Logger, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	table := router.DefaultTable(router.ConflictMode(cfg.RouteConflictMode))
	m := &Model{
		bus:          bus,
		config:       cfg,
		logger:       logger,
		dispatcher:   router.NewDispatcher(table, cfg.StartPath, bus, logger),
		registry:     views.DefaultRegistry(),
		help:         help.New(),
		renderer:     views.NewRenderer(nil),
		helpRenderer: NewHelpRenderer(keys.Default),
		inputHandler: input.New(),
	}
	m.env = &views.Env{
		Nav:         navigatorFor(m.dispatcher),
		Notify:      m,
		Catalog:     store,
		Bus:         bus,
		Filters:     cfg.Filters,
		Markers:     cfg.UISettings.MapMarkers,
		RenderStyle: cfg.RenderStyle,
		Styles:      views.NewStyles(),
		Logger:      logger.Named("views"),
	}
	for _, opt := range opts {
		opt(m)
	}

	if cmd := m.syncView(); cmd != nil {
		m.pending = append(m.pending, cmd)
	}
	return m
}

type dispatcherNavigator struct {
	d *router.Dispatcher
}

func (n dispatcherNavigator) Navigate(path string, state *domain.NavigationState) {
	n.d.Navigate(path, state)
}

func navigatorFor(d *router.Dispatcher) dispatcherNavigator {
	return dispatcherNavigator{d: d}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Dispatcher exposes the router, mainly for tests and the CLI
func (m *Model) Dispatcher() *router.Dispatcher { return m.dispatcher }

// CurrentView returns the mounted view
func (m *Model) CurrentView() views.View { return m.view }

// Status returns the visible toast, if any
func (m *Model) Status() domain.Notification { return m.status }

// Mode returns the input mode
func (m *Model) Mode() inputtypes.Mode { return m.inputHandler.CurrentMode() }

// HelpVisible reports whether the inline help popup is open
func (m *Model) HelpVisible() bool { return m.showHelp }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.drain()
}

// Notify shows a toast and schedules its removal. It is called from within
// Update, so the clear tick is queued rather than returned.
func (m *Model) Notify(kind domain.NotificationKind, message string) {
	n := domain.Notification{ID: uuid.NewString(), Kind: kind, Message: message}
	m.status = n
	m.logger.Debug("notification", zap.String("kind", string(kind)), zap.String("message", message))
	if m.bus != nil {
		m.bus.Publish(eventbus.NotificationEvent{Notification: n})
	}

	seconds := m.config.ToastSeconds
	if seconds <= 0 {
		seconds = config.DefaultToastSeconds
	}
	id := n.ID
	m.pending = append(m.pending, tea.Tick(time.Duration(seconds)*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	}))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeView()

	case tea.KeyMsg:
		if m.showHelp {
			m.handleHelpKey(msg)
			break
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

	default:
		if cmd := m.handleNonKeyboardMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if cmd := m.syncView(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.drain(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) drain() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// syncView replaces the mounted view after a transition
func (m *Model) syncView() tea.Cmd {
	seq := m.dispatcher.Seq()
	if m.mounted && seq == m.mountedSeq {
		return nil
	}

	if m.view != nil {
		m.view.Teardown()
	}
	res := m.dispatcher.Mount()
	m.view = m.registry.Build(m.env, res.View, res.Input())
	m.mountedSeq = seq
	m.mounted = true

	m.inputHandler.Reset()
	m.showHelp = false
	m.resizeView()

	m.logger.Debug("view mounted",
		zap.String("path", res.Path),
		zap.String("view", string(res.View)),
		zap.Bool("not_found", res.NotFound))
	return m.view.Init()
}

func (m *Model) resizeView() {
	if m.view == nil || m.width == 0 {
		return
	}
	m.view.SetSize(views.ContentWidth(m.width), views.ContentHeight(m.height))
}

func (m *Model) inputContext() *input.ModelContext {
	ctx := &input.ModelContext{
		Path: m.dispatcher.Current().Path,
	}
	if m.view == nil {
		return ctx
	}
	ctx.View = m.view.ID()
	if home, ok := m.view.(*views.HomeView); ok {
		ctx.Query = home.Controller().Query()
		ctx.Filters = len(home.Controller().Filters())
	}
	return ctx
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", zap.String("action", fmt.Sprintf("%T", action)))

	switch a := action.(type) {
	case inputtypes.QuitAction:
		if m.view != nil {
			m.view.Teardown()
		}
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		return m.openHelp()

	case inputtypes.BackAction:
		m.dispatcher.Back()

	case inputtypes.ForwardAction:
		m.dispatcher.Forward()

	case inputtypes.OpenPathAction:
		m.dispatcher.Navigate(a.Path, nil)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeGoto {
			m.gotoPath(a.Text)
			return nil
		}
		return m.view.HandleAction(a)

	case inputtypes.UpdateTextAction:
		// Goto typing stays in the prompt
		if m.inputHandler.CurrentMode() != inputtypes.ModeSearch {
			return nil
		}
		return m.view.HandleAction(a)

	case inputtypes.CancelTextAction:
		return nil

	default:
		return m.view.HandleAction(a)
	}
	return nil
}

func (m *Model) gotoPath(text string) {
	path := strings.TrimSpace(text)
	if path == "" {
		return
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	m.dispatcher.Visit(path)
}

func (m *Model) openHelp() tea.Cmd {
	content := m.helpRenderer.Content()
	if m.program == nil {
		m.showHelp = true
		m.helpScroll = 0
		return nil
	}
	return m.fetchHelpPager(content)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "?", "q":
		m.showHelp = false
		m.helpScroll = 0
	case "up", "k":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "down", "j":
		m.helpScroll++
	case "pgup":
		m.helpScroll -= 10
		if m.helpScroll < 0 {
			m.helpScroll = 0
		}
	case "pgdown":
		m.helpScroll += 10
	}
	if limit := views.MaxScrollOffset(m.helpRenderer.Content(), views.HelpWindowHeight(m.height)); m.helpScroll > limit {
		m.helpScroll = limit
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case clearStatusMsg:
		if msg.id == m.status.ID {
			m.status = domain.Notification{}
		}
		return nil

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed, showing popup", zap.Error(msg.err))
			m.showHelp = true
			m.helpScroll = 0
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil
	}

	var cmds []tea.Cmd
	if cmd := m.inputHandler.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.view != nil {
		if cmd := m.view.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := views.FrameState{
		Width:       m.width,
		Height:      m.height,
		Path:        m.dispatcher.Current().Path,
		CanBack:     m.dispatcher.CanGoBack(),
		CanForward:  m.dispatcher.CanGoForward(),
		Prompt:      m.inputHandler.Prompt(),
		Status:      m.status.Message,
		StatusError: m.status.Kind == domain.NotifyError,
		HelpModel:   m.help,
		ShowHelp:    m.showHelp,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.Input = ti.View()
	}
	if m.view != nil {
		state.Title = m.view.Title()
		state.Content = m.view.Render()
	}
	if m.showHelp {
		state.HelpContent = m.helpRenderer.Content()
		state.HelpScrollOffset = m.helpScroll
	}
	return m.renderer.Render(state)
}
