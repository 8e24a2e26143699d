package game

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/tri-rot-bouncy/internal/config"
	"github.com/iburimskiy/tri-rot-bouncy/internal/render"
)

// Game adapts the Scene to ebiten. Input and frame updates happen in Update;
// Draw only draws.
type Game struct {
	scene *Scene
	gate  *FrameGate

	width  int
	height int
	debug  bool

	touches []ebiten.TouchID
}

func NewGame(o config.Options, log *slog.Logger) *Game {
	gate := NewFrameGate(nil)
	return &Game{
		scene:  NewScene(gate, o.FrameDelay, log),
		gate:   gate,
		width:  o.Window.Width,
		height: o.Window.Height,
		debug:  o.Debug,
	}
}

func (g *Game) Scene() *Scene { return g.scene }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.step(g.tapped())
	return nil
}

// step runs one host tick: a tap first, then the frame if it is due.
func (g *Game) step(tapped bool) {
	if tapped {
		g.scene.HandleTapDown()
	}
	if g.gate.Take() {
		g.scene.Advance()
	}
}

// tapped reports a left click or any new touch on this tick.
func (g *Game) tapped() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	return len(g.touches) > 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(render.NewScreen(screen))

	if g.debug {
		s := g.scene
		step := stepDuration(config.StepRate, s.Driver().Delay())
		ebitenutil.DebugPrintAt(screen, formatStatus(s.Chain(), s.Driver().Active(), step, ebiten.ActualTPS()), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
