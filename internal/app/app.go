//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/sims/life"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a life session to the ebiten.Game interface. The session's
// clock is driven by a FrameScheduler pumped from Update, so every step runs
// on the ebiten update goroutine.
type Game struct {
	session *life.Session
	frames  *core.FrameScheduler
	painter *render.GridPainter
	hud     *ui.HUD
	cells   []uint8

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided session. frames must be the
// scheduler the session was initialized with.
func New(session *life.Session, frames *core.FrameScheduler, scale int) *Game {
	size := session.Size()
	return &Game{
		session:  session,
		frames:   frames,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(session, hudWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	g.handleSpeedKeys()
	g.handleResizeKeys()
	g.handleClick()

	size := g.session.Size()
	g.hud.Update(size.W * g.scale)
	g.frames.Pump()
	return nil
}

func (g *Game) handleSpeedKeys() {
	interval := g.session.Config().IntervalMS
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		interval /= 2
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		interval *= 2
	default:
		return
	}
	// Rejected intervals leave the clock as it was.
	_ = g.session.SetInterval(interval)
}

func (g *Game) handleResizeKeys() {
	size := g.session.Size()
	h, w := size.H, size.W
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		h--
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		h++
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		w--
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		w++
	default:
		return
	}
	_ = g.session.Resize(h, w)
}

func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	size := g.session.Size()
	if row, col, ok := render.CellAt(x, y, g.scale, size.H, size.W); ok {
		_ = g.session.ToggleCell(row, col)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.cells = g.session.Cells(g.cells)
	size := g.session.Size()
	g.painter.Resize(size.W, size.H)
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
