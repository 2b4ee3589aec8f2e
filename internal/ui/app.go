package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tleaf/barnview/internal/chamber"
	"github.com/tleaf/barnview/internal/logger"
	"github.com/tleaf/barnview/internal/prefs"
	"github.com/tleaf/barnview/internal/state"
)

// Refresher receives the dispatch side effects the dashboard produces: the
// immediate-refresh signal after a successful command, and client swaps when
// the operator retargets the controller. Implemented by *app.Scheduler.
type Refresher interface {
	RequestRefresh()
	SetClient(client chamber.API)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *chamber.Client
	Store     *state.Store
	Scheduler Refresher
	Log       *logger.Logger
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastError
	toastInfo
)

// toast is a transient notification with an expiry.
type toast struct {
	text  string
	level toastLevel
	until time.Time
}

const toastDuration = 4 * time.Second

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    *chamber.Client
	store     *state.Store
	scheduler Refresher
	log       *logger.Logger
	pollTick  time.Duration
	prefsPath string

	theme  Theme
	width  int
	height int
	ready  bool

	snapshot    state.Snapshot
	lastUpdated time.Time

	showHelp     bool
	confirmReset bool

	editingHost bool
	hostInput   textinput.Model

	notice toast
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "host:port"
	input.CharLimit = 64
	input.Width = 28

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		scheduler: opts.Scheduler,
		log:       log,
		pollTick:  pollTick,
		prefsPath: prefsPath,
		theme:     GetTheme(opts.ThemeName),
		hostInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		if !m.notice.until.IsZero() && time.Now().After(m.notice.until) {
			m.notice = toast{}
		}
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case commandDoneMsg:
		return m.handleCommandDone(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal states eat all keys first.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.editingHost {
		return m.handleHostKey(msg)
	}
	if m.confirmReset {
		m.confirmReset = false
		if msg.String() == "y" || msg.String() == "Y" {
			return m.dispatch(chamber.CmdReset, nil)
		}
		m.notice = m.newToast("Reset cancelled.", toastInfo)
		return m, nil
	}

	rm := BuildRenderModel(m.snapshot)

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "t":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "c":
		m.editingHost = true
		m.hostInput.SetValue(m.client.Host())
		m.hostInput.CursorEnd()
		return m, m.hostInput.Focus()

	case "m":
		return m.dispatch(chamber.CmdMode, nil)

	case "r":
		m.confirmReset = true
		return m, nil

	case "v":
		return m.dispatch(chamber.CmdServo, chamber.ServoPayload{Angle: rm.NextServoAngle})

	case "1", "2", "3":
		for _, sc := range rm.Stages {
			if sc.Key != msg.String() {
				continue
			}
			if sc.Disabled {
				m.notice = m.newToast("Already in stage "+sc.Label+".", toastInfo)
				return m, nil
			}
			return m.dispatch(chamber.CmdStage, chamber.StagePayload{Stage: sc.Stage})
		}
		return m, nil

	case "f":
		return m.dispatchOverride(rm, chamber.CmdFan1Toggle)
	case "F":
		return m.dispatchOverride(rm, chamber.CmdFan2Toggle)
	case "g":
		return m.dispatchOverride(rm, chamber.CmdHeater1Toggle)
	case "G":
		return m.dispatchOverride(rm, chamber.CmdHeater2Toggle)
	}

	return m, nil
}

// handleHostKey edits the controller address inline.
func (m Model) handleHostKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editingHost = false
		m.hostInput.Blur()
		return m, nil

	case "enter":
		m.editingHost = false
		m.hostInput.Blur()
		return m.applyHost(strings.TrimSpace(m.hostInput.Value()))
	}

	var cmd tea.Cmd
	m.hostInput, cmd = m.hostInput.Update(msg)
	return m, cmd
}

// applyHost retargets the client, scheduler and cache at a new controller
// address without restarting the session.
func (m Model) applyHost(host string) (tea.Model, tea.Cmd) {
	if host == "" || host == m.client.Host() {
		return m, nil
	}
	client, err := chamber.NewClient(host)
	if err != nil {
		m.notice = m.newToast("Invalid host: "+err.Error(), toastError)
		return m, nil
	}
	m.client = client
	if m.scheduler != nil {
		m.scheduler.SetClient(client)
		m.scheduler.RequestRefresh()
	}
	m.savePrefs()
	m.log.Infow("controller retargeted", "host", client.Host())
	m.notice = m.newToast("Connecting to "+client.Host()+"...", toastInfo)
	return m, nil
}

// dispatchOverride gates manual-only actuator toggles on the current mode
// before anything touches the network. The transport stays mode-agnostic.
func (m Model) dispatchOverride(rm RenderModel, cmd chamber.Command) (tea.Model, tea.Cmd) {
	if !rm.ManualMode {
		m.notice = m.newToast("Manual overrides require MANUAL mode.", toastError)
		return m, nil
	}
	return m.dispatch(cmd, nil)
}

// dispatch fires one command POST in the background.
func (m Model) dispatch(cmd chamber.Command, payload any) (tea.Model, tea.Cmd) {
	client := m.client
	ctx := m.ctx
	return m, func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return commandDoneMsg{cmd: cmd, err: client.Send(reqCtx, cmd, payload)}
	}
}

// handleCommandDone reconciles a finished dispatch. Success shows a toast
// and signals the settle-delayed re-poll; failure shows a toast and leaves
// the normal cadence alone so one bad command cannot stall the loop.
func (m Model) handleCommandDone(msg commandDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warnw("command failed", "command", string(msg.cmd), "error", msg.err)
		m.notice = m.newToast("Command '"+string(msg.cmd)+"' failed: "+msg.err.Error(), toastError)
		return m, nil
	}

	m.log.Infow("command accepted", "command", string(msg.cmd))
	m.notice = m.newToast("Command '"+string(msg.cmd)+"' successful!", toastSuccess)
	if m.scheduler != nil {
		m.scheduler.RequestRefresh()
	}
	return m, nil
}

func (m Model) newToast(text string, level toastLevel) toast {
	return toast{text: text, level: level, until: time.Now().Add(toastDuration)}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Host: m.client.Host()})
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type commandDoneMsg struct {
	cmd chamber.Command
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
