// Package window runs a world in a native window through ebiten.
// Unlike a terminal, ebiten reports real key state, so held keys are polled
// every tick and no latching is needed.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tower/internal/assets"
	"github.com/vovakirdan/tower/internal/config"
	"github.com/vovakirdan/tower/internal/core"
	"github.com/vovakirdan/tower/internal/logging"
	"github.com/vovakirdan/tower/internal/registry"
	"github.com/vovakirdan/tower/internal/storage"
)

// Options are the services a windowed run uses.
type Options struct {
	Store         *storage.Store // May be nil
	Logger        *log.Logger
	ScreenshotDir string
}

// bindings maps every directional action to the keys that hold it.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// adapter implements ebiten.Game on top of a registry.Game.
type adapter struct {
	game    registry.Game
	canvas  *core.Canvas
	opts    Options
	state   core.GameState
	runtime core.RuntimeConfig
}

// Update polls the keyboard and steps the world once.
func (a *adapter) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.screenshot()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.game.Reset(a.runtime)
	}

	in := core.NewInputFrame()
	if !ctrl {
		for _, action := range core.ScanOrder {
			for _, k := range bindings[action] {
				if ebiten.IsKeyPressed(k) {
					in.Set(action)
					break
				}
			}
		}
	}

	a.state = a.game.Step(in).State
	a.game.Compose(a.canvas)
	return nil
}

// Draw copies the composed canvas to the screen.
func (a *adapter) Draw(screen *ebiten.Image) {
	screen.WritePixels(a.canvas.Image().Pix)
}

// Layout fixes the logical screen to the canvas size; ebiten scales it to
// the window.
func (a *adapter) Layout(int, int) (int, int) {
	return a.canvas.Width(), a.canvas.Height()
}

func (a *adapter) screenshot() {
	dir := logging.ExpandHome(a.opts.ScreenshotDir)
	path, err := assets.SaveScreenshot(a.canvas.Image(), dir, a.game.ID(), time.Now())
	if err != nil {
		a.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	a.opts.Logger.Info("screenshot saved", "path", path)
}

// Run opens a window sized to the viewport and plays game until the window
// is closed, then records the session.
func Run(game registry.Game, cfg config.Config, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = assets.DefaultScreenshotDir
	}

	a := &adapter{
		game:    game,
		canvas:  core.NewCanvas(cfg.Display.Width, cfg.Display.Height),
		opts:    opts,
		runtime: core.RuntimeConfig{TickRate: cfg.Loop.FPS},
	}
	a.game.Reset(a.runtime)
	a.game.Compose(a.canvas)

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Loop.FPS)

	started := time.Now()
	opts.Logger.Info("window opened", "variant", game.ID(), "fps", cfg.Loop.FPS)
	if err := ebiten.RunGame(a); err != nil {
		return err
	}

	if opts.Store != nil && a.state.Tick > 0 {
		sess := storage.SessionFromState(game.ID(), a.state, time.Since(started))
		if _, err := opts.Store.SaveSession(sess); err != nil {
			opts.Logger.Warn("could not save session", "err", err)
		}
	}
	return nil
}
