package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower/internal/assets"
	"github.com/vovakirdan/tower/internal/config"
	"github.com/vovakirdan/tower/internal/core"
	"github.com/vovakirdan/tower/internal/logging"
	"github.com/vovakirdan/tower/internal/registry"
	"github.com/vovakirdan/tower/internal/storage"
)

// Options are the services shared by every terminal run.
type Options struct {
	Store         *storage.Store // May be nil; sessions are then not recorded
	Logger        *log.Logger
	ScreenshotDir string
	Renderer      *lipgloss.Renderer // nil uses the default renderer
}

// statusSeconds is how long a HUD status message stays visible.
const statusSeconds = 2

// Model is the Bubble Tea model that runs one world in the terminal.
type Model struct {
	game     registry.Game
	cfg      config.Config
	opts     Options
	canvas   *core.Canvas
	screen   *core.Screen
	renderer *Renderer
	keys     *KeyMapper
	latch    *KeyLatch
	runtime  core.RuntimeConfig
	state    core.GameState
	started  time.Time
	tickID   int64

	status      string
	statusTicks int

	embedded   bool // Quit returns to the caller instead of ending the program
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for a world built with cfg.
func NewModel(game registry.Game, cfg config.Config, opts Options, rt core.RuntimeConfig) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = assets.DefaultScreenshotDir
	}
	rt.TickRate = cfg.Loop.FPS

	return Model{
		game:     game,
		cfg:      cfg,
		opts:     opts,
		canvas:   core.NewCanvas(cfg.Display.Width, cfg.Display.Height),
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		renderer: NewRenderer(opts.Renderer),
		keys:     NewKeyMapper(),
		latch:    NewKeyLatch(cfg.Input.HoldTicks),
		runtime:  rt,
		started:  time.Now(),
		tickID:   newTickID(),
	}
}

// newEmbeddedModel creates a model that reports BackToMenu instead of quitting.
func newEmbeddedModel(game registry.Game, cfg config.Config, opts Options, rt core.RuntimeConfig) Model {
	m := NewModel(game, cfg, opts, rt)
	m.embedded = true
	return m
}

// Init resets the world and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.game.Compose(m.canvas)
	return tickCmd(m.runtime.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches directions and runs platform commands.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.keys.MapKey(msg)

	switch cmd {
	case CommandQuit:
		if m.embedded && msg.String() == "q" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case CommandBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case CommandScreenshot:
		m.saveScreenshot()
		return m, nil

	case CommandRestart:
		m.game.Reset(m.runtime)
		m.latch.Release()
		m.state = m.game.State()
		m.game.Compose(m.canvas)
		m.setStatus("restarted")
		return m, nil
	}

	if action != core.ActionNone {
		m.latch.Press(action)
	}
	return m, nil
}

// handleTick advances the world by one tick and composes the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.latch.Snapshot())
	m.state = result.State
	m.latch.Tick()
	m.game.Compose(m.canvas)

	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.runtime.TickRate, m.tickID)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = statusSeconds * m.runtime.TickRate
}

// saveScreenshot writes the full-resolution canvas as a PNG.
func (m *Model) saveScreenshot() {
	dir := logging.ExpandHome(m.opts.ScreenshotDir)
	path, err := assets.SaveScreenshot(m.canvas.Image(), dir, m.game.ID(), time.Now())
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		m.setStatus("screenshot failed")
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

// SaveSession records the run in the store. It is best-effort: failures are
// logged and the caller carries on.
func (m Model) SaveSession() {
	if m.opts.Store == nil || m.state.Tick == 0 {
		return
	}
	sess := storage.SessionFromState(m.game.ID(), m.state, time.Since(m.started))
	if _, err := m.opts.Store.SaveSession(sess); err != nil {
		m.opts.Logger.Warn("could not save session", "err", err)
		return
	}
	m.opts.Logger.Debug("session saved", "variant", sess.Variant, "ticks", sess.Ticks)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.screen.Width() == 0 || m.screen.Height() < 2 {
		return ""
	}

	m.screen.Clear()
	m.screen.DrawCanvas(m.canvas, canvasArea(m.screen.Width(), m.screen.Height()-1, m.canvas.Width(), m.canvas.Height()))
	m.screen.DrawText(0, m.screen.Height()-1, m.hud(), core.ColorGold)

	return m.renderer.Render(m.screen)
}

// hud returns the status line shown below the canvas.
func (m Model) hud() string {
	line := fmt.Sprintf(" %s  x:%d y:%d  %s  landings:%d  head hits:%d ",
		m.game.Title(), m.state.X, m.state.Y, m.state.Animation, m.state.Landings, m.state.HeadHits)
	if m.status != "" {
		return line + "| " + m.status
	}
	return line + "| arrows/wasd move  r restart  ctrl+s screenshot  q quit"
}

// State returns the last world summary.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// canvasArea fits a cw x ch canvas into cols x rows cells, centered.
// A cell shows one sample across and two down, so cells are treated as
// squares of two stacked pixels.
func canvasArea(cols, rows, cw, ch int) core.Rect {
	if cols <= 0 || rows <= 0 || cw <= 0 || ch <= 0 {
		return core.Rect{}
	}
	w := cols
	h := w * ch / (2 * cw)
	if h > rows {
		h = rows
		w = h * 2 * cw / ch
	}
	return core.NewRect((cols-w)/2, (rows-h)/2, w, h)
}

// Run plays game in the terminal until the user quits, then records the
// session.
func Run(game registry.Game, cfg config.Config, opts Options, rt core.RuntimeConfig) error {
	model := NewModel(game, cfg, opts, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		m.SaveSession()
	}
	return nil
}
