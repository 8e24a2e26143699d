package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen is a Surface backed by an ebiten image.
type Screen struct {
	img *ebiten.Image
}

func NewScreen(img *ebiten.Image) *Screen {
	return &Screen{img: img}
}

func (s *Screen) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Screen) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s *Screen) StrokeLine(t Transform, x0, y0, x1, y1 float64, st Stroke) {
	var g ebiten.GeoM
	g.Rotate(t.Angle)
	g.Translate(t.X, t.Y)
	ax, ay := g.Apply(x0, y0)
	bx, by := g.Apply(x1, y1)
	vector.StrokeLine(s.img, float32(ax), float32(ay), float32(bx), float32(by), float32(st.Width), st.Color, true)
}
