package world

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower/internal/assets"
	"github.com/vovakirdan/tower/internal/config"
	"github.com/vovakirdan/tower/internal/core"
	"github.com/vovakirdan/tower/internal/registry"
)

func init() {
	registry.Register(config.VariantTower, "CodeCool Tower", config.ApplyTowerPreset, factory)
	registry.Register(config.VariantOpen, "Open Field", config.ApplyOpenPreset, factory)
}

func factory(id, title string, env registry.Env) (registry.Game, error) {
	return New(id, title, env.Config, env.Assets, env.Logger)
}

// Game owns one world: background, walls and the player.
type Game struct {
	id, title string
	cfg       config.Config
	bundle    *assets.Bundle
	logger    *log.Logger
	rule      SnapRule

	background *Background
	blocks     []*Block
	player     *Player

	runtime  core.RuntimeConfig
	tick     int
	landings int
	headHits int
	distance int
}

// New builds a world from a validated config and a loaded asset bundle.
// The bundle is shared, not copied.
func New(id, title string, cfg config.Config, bundle *assets.Bundle, logger *log.Logger) (*Game, error) {
	if bundle == nil {
		return nil, errors.New("world: nil asset bundle")
	}
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		id:         id,
		title:      title,
		cfg:        cfg,
		bundle:     bundle,
		logger:     logger.WithPrefix("world"),
		rule:       SnapRuleFrom(cfg.Collision),
		background: NewBackground(bundle.Background, cfg.Display.Width, cfg.Display.Height),
	}
	if cfg.Walls.Enabled {
		g.blocks = BuildWalls(cfg.Display.Width, cfg.Display.Height, cfg.Walls.BlockSize, bundle.WallTile)
	}
	if err := g.spawn(); err != nil {
		return nil, err
	}

	g.logger.Debug("world ready",
		"variant", id,
		"tiles", len(g.background.Tiles()),
		"blocks", len(g.blocks),
		"snap", g.rule.Mode,
	)
	return g, nil
}

func (g *Game) spawn() error {
	p, err := NewPlayer(g.cfg.Player.StartX, g.cfg.Player.StartY, g.bundle.Character, g.cfg.Player.AnimationDelay)
	if err != nil {
		return err
	}
	g.player = p
	return nil
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the window title.
func (g *Game) Title() string { return g.title }

// Reset respawns the player and clears the counters. The walls never change.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tick = 0
	g.landings = 0
	g.headHits = 0
	g.distance = 0
	if err := g.spawn(); err != nil {
		// The frame set was checked in New and is immutable.
		g.logger.Error("respawn failed", "err", err)
	}
}

// Step runs one tick: the player moves by the velocity chosen last tick and
// picks its frame, then the held keys set the next velocity, then vertical
// contacts are resolved in the direction the player actually moved.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	dx, dy := g.player.Velocity()
	g.player.Advance()
	g.distance += core.Abs(dx)

	g.player.ApplyInput(in, g.cfg.Player.Speed)

	for _, c := range ResolveVertical(g.player, g.blocks, dy, g.rule) {
		switch c.Kind {
		case ContactLanded:
			g.landings++
		case ContactHeadHit:
			g.headHits++
		}
		x, y := g.player.Position()
		g.logger.Debug("contact", "kind", c.Kind, "block", c.Block.Bounds(), "x", x, "y", y, "tick", g.tick)
	}

	return core.StepResult{State: g.State()}
}

// Compose paints the frame: black fill, background, blocks, then the player.
func (g *Game) Compose(dst *core.Canvas) {
	dst.Fill(core.ColorBlack)
	g.background.Draw(dst)
	for _, b := range g.blocks {
		b.Draw(dst)
	}
	g.player.Draw(dst)
}

// State returns the current world summary.
func (g *Game) State() core.GameState {
	x, y := g.player.Position()
	return core.GameState{
		Tick:      g.tick,
		X:         x,
		Y:         y,
		Facing:    g.player.Facing().String(),
		Animation: g.player.Animation(),
		Landings:  g.landings,
		HeadHits:  g.headHits,
		Distance:  g.distance,
	}
}

// Player exposes the player for platforms and tests.
func (g *Game) Player() *Player { return g.player }

// Blocks returns the wall blocks in build order.
func (g *Game) Blocks() []*Block { return g.blocks }

// Background returns the tiled background.
func (g *Game) Background() *Background { return g.background }
