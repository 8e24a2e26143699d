package render

import (
	"math"

	"github.com/fogleman/ease"

	"github.com/iburimskiy/tri-rot-bouncy/internal/anim"
	"github.com/iburimskiy/tri-rot-bouncy/internal/config"
)

// Renderer draws each node as a hexagram of config.LinesPerNode lines.
//
// The first half of a node's scale grows the lines one after another; the
// second half rotates the group by config.RotationDegrees with a bounce.
type Renderer struct {
	palette Palette
	nodes   int
	lines   int
}

func New(p Palette) *Renderer {
	return &Renderer{palette: p, nodes: config.NodeCount, lines: config.LinesPerNode}
}

// Clear fills s with the background color.
func (r *Renderer) Clear(s Surface) {
	s.Clear(r.palette.Back)
}

// On binds the renderer to s for one frame.
func (r *Renderer) On(s Surface) anim.Drawer {
	return frame{r: r, s: s}
}

type frame struct {
	r *Renderer
	s Surface
}

func (f frame) DrawNode(index int, scale float64) {
	f.r.drawNode(f.s, index, scale)
}

func (r *Renderer) drawNode(s Surface, index int, scale float64) {
	w, h := s.Size()
	gap := float64(h) / float64(r.nodes+1)
	radius := gap / 3
	half := radius * math.Sqrt(3) / 2

	grow := divideScale(scale, 0, 2)
	turn := divideScale(scale, 1, 2)
	rot := config.RotationDegrees * ease.OutBounce(turn) * math.Pi / 180

	st := Stroke{
		Width: math.Min(float64(w), float64(h)) / config.StrokeFactor,
		Color: r.palette.Fore,
	}
	cx, cy := float64(w)/2, gap*float64(index+1)

	for j := 0; j < r.lines; j++ {
		part := divideScale(grow, j, r.lines)
		if part <= 0 {
			continue
		}
		t := Transform{X: cx, Y: cy, Angle: rot + 2*math.Pi*float64(j)/float64(r.lines)}
		s.StrokeLine(t, -half, radius/2, -half+2*half*ease.OutQuad(part), radius/2, st)
	}
}

// divideScale maps the i-th of n equal slices of scale onto [0, 1].
func divideScale(scale float64, i, n int) float64 {
	return clamp01(scale*float64(n) - float64(i))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
