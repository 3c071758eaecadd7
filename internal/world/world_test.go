package world

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower/internal/assets"
	"github.com/vovakirdan/tower/internal/config"
	"github.com/vovakirdan/tower/internal/core"
	"github.com/vovakirdan/tower/internal/sprite"
)

var (
	playerRed  = color.RGBA{R: 220, A: 255}
	wallGray   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	floorGreen = color.RGBA{G: 120, A: 255}
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// testFrames builds all eight animations with n opaque frames each.
func testFrames(w, h, n int) sprite.FrameSet {
	set := make(sprite.FrameSet)
	for _, name := range assets.RequiredAnimations() {
		for i := 0; i < n; i++ {
			set[name] = append(set[name], sprite.NewFrame(solid(w, h, playerRed)))
		}
	}
	return set
}

func testBundle() *assets.Bundle {
	return &assets.Bundle{
		Background: solid(64, 64, floorGreen),
		WallTile:   solid(64, 64, wallGray),
		Character:  testFrames(64, 64, 4),
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestGame(t *testing.T, preset func(*config.Config)) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	preset(&cfg)
	g, err := New("test", "Test", cfg, testBundle(), quietLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestPlayer(t *testing.T, x, y int) *Player {
	t.Helper()
	p, err := NewPlayer(x, y, testFrames(64, 64, 4), 10)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	return p
}

func TestNewPlayerInitialState(t *testing.T) {
	p := newTestPlayer(t, 100, 100)

	if p.Facing() != DirRight {
		t.Errorf("Facing() = %v, want right", p.Facing())
	}
	if p.Animation() != "idle-right" {
		t.Errorf("Animation() = %q, want idle-right", p.Animation())
	}
	if p.Counter() != 0 {
		t.Errorf("Counter() = %d, want 0", p.Counter())
	}
	if got := p.Bounds(); got != core.NewRect(100, 100, 64, 64) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestNewPlayerMissingAnimation(t *testing.T) {
	frames := testFrames(8, 8, 1)
	delete(frames, "move-up")
	if _, err := NewPlayer(0, 0, frames, 10); err == nil {
		t.Fatal("expected error for incomplete frame set")
	}
}

func TestFacingChangeResetsCounter(t *testing.T) {
	p := newTestPlayer(t, 0, 0)
	for i := 0; i < 5; i++ {
		p.Advance()
	}
	if p.Counter() != 5 {
		t.Fatalf("Counter() = %d, want 5", p.Counter())
	}

	p.MoveRight(5)
	if p.Counter() != 5 {
		t.Errorf("same facing reset the counter to %d", p.Counter())
	}

	p.MoveLeft(5)
	if p.Counter() != 0 {
		t.Errorf("Counter() after turning = %d, want 0", p.Counter())
	}
	if p.Facing() != DirLeft {
		t.Errorf("Facing() = %v, want left", p.Facing())
	}

	p.Advance()
	p.MoveLeft(5)
	if p.Counter() != 1 {
		t.Errorf("Counter() = %d, want 1", p.Counter())
	}
}

func TestFrameIndex(t *testing.T) {
	tests := []struct {
		name           string
		counter, delay int
		n              int
		want           int
	}{
		{"start", 0, 10, 4, 0},
		{"last tick of first frame", 9, 10, 4, 0},
		{"second frame", 10, 10, 4, 1},
		{"last frame", 39, 10, 4, 3},
		{"wraps", 40, 10, 4, 0},
		{"single frame", 123, 10, 1, 0},
		{"no frames", 5, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameIndex(tt.counter, tt.delay, tt.n); got != tt.want {
				t.Errorf("FrameIndex(%d, %d, %d) = %d, want %d", tt.counter, tt.delay, tt.n, got, tt.want)
			}
		})
	}
}

func TestAdvanceSelectsFrame(t *testing.T) {
	p := newTestPlayer(t, 0, 0)
	frames, _ := p.frames.Get("idle-right")

	for tick := 0; tick < 45; tick++ {
		p.Advance()
		want := frames[FrameIndex(tick, 10, len(frames))]
		if p.Frame() != want {
			t.Fatalf("tick %d: wrong frame selected", tick)
		}
	}

	p.MoveDown(5)
	p.Advance()
	if p.Animation() != "move-down" {
		t.Errorf("Animation() = %q, want move-down", p.Animation())
	}
	if _, y := p.Position(); y != 5 {
		t.Errorf("y = %d, want 5", y)
	}
}

func TestApplyInputOppositeKeys(t *testing.T) {
	tests := []struct {
		name   string
		in     core.InputFrame
		vx, vy int
		facing Direction
	}{
		{"none keeps facing", held(), 0, 0, DirRight},
		{"left", held(core.ActionLeft), -5, 0, DirLeft},
		{"left and right", held(core.ActionLeft, core.ActionRight), 5, 0, DirRight},
		{"up and down", held(core.ActionUp, core.ActionDown), 0, 5, DirDown},
		{"left and up", held(core.ActionLeft, core.ActionUp), -5, -5, DirUp},
		{"all four", held(core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown), 5, 5, DirDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(t, 0, 0)
			p.ApplyInput(tt.in, 5)
			vx, vy := p.Velocity()
			if vx != tt.vx || vy != tt.vy {
				t.Errorf("Velocity() = (%d, %d), want (%d, %d)", vx, vy, tt.vx, tt.vy)
			}
			if p.Facing() != tt.facing {
				t.Errorf("Facing() = %v, want %v", p.Facing(), tt.facing)
			}
		})
	}
}

func TestTileOffsetsCoverViewport(t *testing.T) {
	tiles := TileOffsets(64, 64, 1000, 800)
	if len(tiles) < 16*13 {
		t.Fatalf("len(tiles) = %d, want at least %d", len(tiles), 16*13)
	}

	maxX, maxY := 0, 0
	for _, p := range tiles {
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	if maxX+64 < 1000 || maxY+64 < 800 {
		t.Errorf("tiles end at (%d, %d), viewport not covered", maxX+64, maxY+64)
	}
	if tiles[0] != (core.Point{}) || tiles[1] != (core.Point{X: 0, Y: 64}) {
		t.Errorf("tiles not in column order: %v", tiles[:2])
	}

	if TileOffsets(0, 64, 1000, 800) != nil {
		t.Error("zero-width tile should yield no offsets")
	}
}

func TestBuildWalls(t *testing.T) {
	blocks := BuildWalls(1000, 800, 50, solid(64, 64, wallGray))
	if len(blocks) != 120 {
		t.Fatalf("len(blocks) = %d, want 120", len(blocks))
	}

	south, north := blocks[:60], blocks[60:]
	if got := south[0].Bounds(); got != core.NewRect(-1000, 750, 50, 50) {
		t.Errorf("first south block = %+v", got)
	}
	if got := south[59].Bounds(); got != core.NewRect(1950, 750, 50, 50) {
		t.Errorf("last south block = %+v", got)
	}
	for _, b := range north {
		if b.Bounds().Y != 0 {
			t.Fatalf("north block at y=%d", b.Bounds().Y)
		}
	}
	if south[0].Mask() != north[0].Mask() {
		t.Error("blocks should share one mask")
	}
	if south[0].Mask().Count() != 50*50 {
		t.Errorf("opaque tile mask count = %d", south[0].Mask().Count())
	}
}

func TestBlockSmallTileIsPartlySolid(t *testing.T) {
	b := NewBlock(0, 0, BlockSurface(solid(20, 20, wallGray), 50), nil)
	if got := b.Mask().Count(); got != 400 {
		t.Errorf("mask count = %d, want 400", got)
	}
}

func TestResolveVerticalLanding(t *testing.T) {
	tests := []struct {
		name  string
		rule  SnapRule
		wantY int
	}{
		{"surface", SnapRule{Mode: config.SnapSurface}, 750 - 64},
		{"fixed", SnapRule{Mode: config.SnapFixed, LandingY: 650, CeilingY: 90}, 650},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := BuildWalls(1000, 800, 50, solid(50, 50, wallGray))
			p := newTestPlayer(t, 100, 690)
			p.MoveDown(5)
			p.Advance()

			contacts := ResolveVertical(p, blocks, 5, tt.rule)
			if len(contacts) == 0 {
				t.Fatal("expected a landing contact")
			}
			for _, c := range contacts {
				if c.Kind != ContactLanded {
					t.Errorf("contact kind = %v, want landed", c.Kind)
				}
			}
			if _, y := p.Position(); y != tt.wantY {
				t.Errorf("y = %d, want %d", y, tt.wantY)
			}
			if _, vy := p.Velocity(); vy < 0 {
				t.Errorf("vy = %d after landing, want >= 0", vy)
			}
		})
	}
}

func TestResolveVerticalHeadHit(t *testing.T) {
	tests := []struct {
		name  string
		rule  SnapRule
		wantY int
	}{
		{"surface", SnapRule{Mode: config.SnapSurface}, 50},
		{"fixed", SnapRule{Mode: config.SnapFixed, LandingY: 650, CeilingY: 90}, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := BuildWalls(1000, 800, 50, solid(50, 50, wallGray))
			p := newTestPlayer(t, 100, 52)
			p.MoveUp(5)
			p.Advance()

			contacts := ResolveVertical(p, blocks, -5, tt.rule)
			if len(contacts) == 0 || contacts[0].Kind != ContactHeadHit {
				t.Fatalf("contacts = %v, want a head hit", contacts)
			}
			if _, y := p.Position(); y != tt.wantY {
				t.Errorf("y = %d, want %d", y, tt.wantY)
			}
			if _, vy := p.Velocity(); vy != 5 {
				t.Errorf("vy = %d after head hit, want 5", vy)
			}
		})
	}
}

func TestResolveVerticalNoMotion(t *testing.T) {
	blocks := BuildWalls(1000, 800, 50, solid(50, 50, wallGray))
	p := newTestPlayer(t, 100, 740)
	if got := ResolveVertical(p, blocks, 0, SnapRule{Mode: config.SnapSurface}); got != nil {
		t.Errorf("contacts = %v, want none when not moving vertically", got)
	}
}

// marginFrames builds 64x64 frames whose bottom margin rows are transparent.
func marginFrames(margin int) sprite.FrameSet {
	set := make(sprite.FrameSet)
	for _, name := range assets.RequiredAnimations() {
		img := image.NewRGBA(image.Rect(0, 0, 64, 64))
		draw.Draw(img, image.Rect(0, 0, 64, 64-margin), image.NewUniform(playerRed), image.Point{}, draw.Src)
		set[name] = []*sprite.Frame{sprite.NewFrame(img)}
	}
	return set
}

func TestResolveVerticalUsesPixelMask(t *testing.T) {
	floor := BlockSurface(solid(50, 50, wallGray), 50)
	blocks := []*Block{NewBlock(100, 750, floor, nil)}

	tests := []struct {
		name        string
		startY      int
		wantContact bool
		wantY       int
	}{
		// Bounds reach y=760 but the lowest solid row is 739.
		{"transparent margin over floor", 691, false, 696},
		// The lowest solid row reaches 760.
		{"solid pixels in floor", 712, true, 750 - 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlayer(100, tt.startY, marginFrames(20), 10)
			if err != nil {
				t.Fatalf("NewPlayer() error = %v", err)
			}
			p.MoveDown(5)
			p.Advance()

			if !p.Bounds().Intersects(blocks[0].Bounds()) {
				t.Fatalf("bounds %+v should cross the floor %+v", p.Bounds(), blocks[0].Bounds())
			}
			contacts := ResolveVertical(p, blocks, 5, SnapRule{Mode: config.SnapSurface})
			if got := len(contacts) > 0; got != tt.wantContact {
				t.Errorf("contact = %v, want %v", got, tt.wantContact)
			}
			if _, y := p.Position(); y != tt.wantY {
				t.Errorf("y = %d, want %d", y, tt.wantY)
			}
		})
	}
}

func TestHitHeadKeepsDownwardVelocity(t *testing.T) {
	p := newTestPlayer(t, 100, 100)
	p.MoveDown(5)
	p.HitHead()
	if _, vy := p.Velocity(); vy != 5 {
		t.Errorf("vy = %d, want 5", vy)
	}
}

func TestGameLandsOnFloor(t *testing.T) {
	g := newTestGame(t, config.ApplyTowerPreset)
	g.Reset(core.RuntimeConfig{TickRate: 50})

	down := held(core.ActionDown)
	var st core.GameState
	for i := 0; i < 200; i++ {
		st = g.Step(down).State
		if st.Y+64 > 750 {
			t.Fatalf("tick %d: player sank into the floor at y=%d", i, st.Y)
		}
	}
	if st.Y != 750-64 {
		t.Errorf("Y = %d, want %d", st.Y, 750-64)
	}
	if st.Landings == 0 {
		t.Error("expected landings to be counted")
	}
	if st.Facing != "down" || st.Animation != "move-down" {
		t.Errorf("Facing/Animation = %s/%s", st.Facing, st.Animation)
	}

	// Leaving the floor works straight away.
	g.Step(held(core.ActionUp))
	st = g.Step(held(core.ActionUp)).State
	if st.Y >= 750-64 {
		t.Errorf("Y = %d, player should move up off the floor", st.Y)
	}
}

func TestGameHitsCeiling(t *testing.T) {
	g := newTestGame(t, config.ApplyTowerPreset)

	up := held(core.ActionUp)
	var st core.GameState
	for i := 0; i < 40; i++ {
		st = g.Step(up).State
		if st.Y < 50 {
			t.Fatalf("tick %d: player entered the ceiling at y=%d", i, st.Y)
		}
	}
	if st.HeadHits == 0 {
		t.Error("expected head hits to be counted")
	}
}

func TestGameLeavesCeilingWhenHoldingDown(t *testing.T) {
	g := newTestGame(t, config.ApplyTowerPreset)

	up := held(core.ActionUp)
	var st core.GameState
	for i := 0; i < 40 && st.HeadHits == 0; i++ {
		st = g.Step(up).State
	}
	if st.HeadHits == 0 || st.Y != 50 {
		t.Fatalf("setup: Y = %d, head hits = %d, want the player at the ceiling", st.Y, st.HeadHits)
	}

	hits := st.HeadHits
	down := held(core.ActionDown)
	for i := 0; i < 10; i++ {
		st = g.Step(down).State
	}
	if st.Y <= 50 {
		t.Errorf("Y = %d after holding down, want the player below the ceiling", st.Y)
	}
	if st.HeadHits > hits+1 {
		t.Errorf("head hits = %d, want at most %d", st.HeadHits, hits+1)
	}
}

func TestOpenVariantMovesFreely(t *testing.T) {
	g := newTestGame(t, config.ApplyOpenPreset)
	if len(g.Blocks()) != 0 {
		t.Fatalf("open variant has %d blocks", len(g.Blocks()))
	}

	down := held(core.ActionDown)
	var st core.GameState
	for i := 0; i < 200; i++ {
		st = g.Step(down).State
	}
	// The first tick only picks up the input.
	if want := 100 + 5*199; st.Y != want {
		t.Errorf("Y = %d, want %d", st.Y, want)
	}
}

func TestGameDistanceAndReset(t *testing.T) {
	g := newTestGame(t, config.ApplyOpenPreset)

	right := held(core.ActionRight)
	var st core.GameState
	for i := 0; i < 11; i++ {
		st = g.Step(right).State
	}
	if st.Distance != 50 || st.X != 150 {
		t.Errorf("Distance/X = %d/%d, want 50/150", st.Distance, st.X)
	}
	if st.Tick != 11 {
		t.Errorf("Tick = %d, want 11", st.Tick)
	}

	g.Reset(core.RuntimeConfig{})
	st = g.State()
	if st.Tick != 0 || st.Distance != 0 || st.X != 100 || st.Y != 100 {
		t.Errorf("state after Reset = %+v", st)
	}
}

func TestGameCompose(t *testing.T) {
	g := newTestGame(t, config.ApplyTowerPreset)
	c := core.NewCanvas(1000, 800)
	g.Compose(c)

	tests := []struct {
		name string
		x, y int
		want core.Color
	}{
		{"north wall", 10, 10, core.RGB(90, 90, 90)},
		{"south wall", 990, 790, core.RGB(90, 90, 90)},
		{"background", 500, 400, core.RGB(0, 120, 0)},
		{"player", 120, 120, core.RGB(220, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ColorAt(tt.x, tt.y); got != tt.want {
				t.Errorf("ColorAt(%d, %d) = %s, want %s", tt.x, tt.y, got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestNewRequiresBundle(t *testing.T) {
	if _, err := New("x", "X", config.DefaultConfig(), nil, quietLogger()); err == nil {
		t.Fatal("expected error for nil bundle")
	}
}
