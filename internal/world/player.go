package world

import (
	"fmt"

	"github.com/vovakirdan/tower/internal/core"
	"github.com/vovakirdan/tower/internal/sprite"
)

// Direction is the way the player faces.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the direction as used in animation names.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Animation states.
const (
	StateIdle = "idle"
	StateMove = "move"
)

// AnimationName builds the frame set key for a state and direction.
func AnimationName(state string, d Direction) string {
	return state + "-" + d.String()
}

// FrameIndex maps the animation counter onto a sequence of n frames that each
// last delay ticks.
func FrameIndex(counter, delay, n int) int {
	if n <= 0 || delay <= 0 {
		return 0
	}
	return (counter / delay) % n
}

// Player is the single controllable sprite.
type Player struct {
	x, y    int
	vx, vy  int
	facing  Direction
	counter int // animation ticks since the last facing change

	frames sprite.FrameSet
	delay  int
	anim   string
	frame  *sprite.Frame
}

// NewPlayer places a player at (x, y) facing right. frames must contain the
// eight idle/move animations; the bundle is shared, never copied.
func NewPlayer(x, y int, frames sprite.FrameSet, delay int) (*Player, error) {
	for _, state := range []string{StateIdle, StateMove} {
		for d := DirLeft; d <= DirDown; d++ {
			if _, ok := frames.Get(AnimationName(state, d)); !ok {
				return nil, fmt.Errorf("world: frame set lacks %q", AnimationName(state, d))
			}
		}
	}

	p := &Player{
		x:      x,
		y:      y,
		facing: DirRight,
		frames: frames,
		delay:  delay,
	}
	p.selectFrame()
	return p, nil
}

// MoveLeft sets the horizontal velocity to -speed and faces left.
func (p *Player) MoveLeft(speed int) {
	p.vx = -speed
	p.face(DirLeft)
}

// MoveRight sets the horizontal velocity to speed and faces right.
func (p *Player) MoveRight(speed int) {
	p.vx = speed
	p.face(DirRight)
}

// MoveUp sets the vertical velocity to -speed and faces up.
func (p *Player) MoveUp(speed int) {
	p.vy = -speed
	p.face(DirUp)
}

// MoveDown sets the vertical velocity to speed and faces down.
func (p *Player) MoveDown(speed int) {
	p.vy = speed
	p.face(DirDown)
}

// face restarts the animation only when the facing actually changes.
func (p *Player) face(d Direction) {
	if p.facing != d {
		p.facing = d
		p.counter = 0
	}
}

// ApplyInput re-derives both velocity components from the held keys.
// Keys are applied in core.ScanOrder, so with opposite keys held the later one
// wins its axis (right over left, down over up) and the last held key sets
// the facing.
func (p *Player) ApplyInput(in core.InputFrame, speed int) {
	p.vx, p.vy = 0, 0
	for _, a := range core.ScanOrder {
		if !in.Has(a) {
			continue
		}
		switch a {
		case core.ActionLeft:
			p.MoveLeft(speed)
		case core.ActionRight:
			p.MoveRight(speed)
		case core.ActionUp:
			p.MoveUp(speed)
		case core.ActionDown:
			p.MoveDown(speed)
		}
	}
}

// Advance moves by the current velocity and steps the animation.
// The counter increases every tick, idle or not.
func (p *Player) Advance() {
	p.x += p.vx
	p.y += p.vy
	p.selectFrame()
	p.counter++
}

func (p *Player) selectFrame() {
	state := StateIdle
	if p.vx != 0 || p.vy != 0 {
		state = StateMove
	}
	p.anim = AnimationName(state, p.facing)
	frames, _ := p.frames.Get(p.anim)
	p.frame = frames[FrameIndex(p.counter, p.delay, len(frames))]
}

// Landed is the reaction to touching a floor while moving down.
// Vertical velocity is left as is.
func (p *Player) Landed() {}

// HitHead is the reaction to touching a ceiling while moving up: an upward
// velocity is inverted. A velocity already pointing down is kept.
func (p *Player) HitHead() {
	if p.vy < 0 {
		p.vy = -p.vy
	}
}

// SetTop moves the player so its top edge is at y.
func (p *Player) SetTop(y int) { p.y = y }

// SetBottom moves the player so its bottom edge is at y.
func (p *Player) SetBottom(y int) { p.y = y - p.frame.Height() }

// Bounds returns the current frame's rectangle at the player's position.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.x, p.y, p.frame.Width(), p.frame.Height())
}

// Mask returns the current frame's mask.
func (p *Player) Mask() *sprite.Mask { return p.frame.Mask() }

// Draw paints the current frame.
func (p *Player) Draw(dst *core.Canvas) {
	dst.Blit(p.frame.Image(), p.x, p.y)
}

// Position returns the top-left corner.
func (p *Player) Position() (int, int) { return p.x, p.y }

// Velocity returns (vx, vy) in pixels per tick.
func (p *Player) Velocity() (int, int) { return p.vx, p.vy }

// Facing returns the current facing direction.
func (p *Player) Facing() Direction { return p.facing }

// Counter returns the animation counter.
func (p *Player) Counter() int { return p.counter }

// Animation returns the name of the animation selected by the last Advance.
func (p *Player) Animation() string { return p.anim }

// Frame returns the frame selected by the last Advance.
func (p *Player) Frame() *sprite.Frame { return p.frame }
