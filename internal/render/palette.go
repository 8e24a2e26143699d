package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/tri-rot-bouncy/internal/config"
)

// Palette holds the two scene colors.
type Palette struct {
	Fore colorful.Color
	Back colorful.Color
}

// NewPalette parses "#RRGGBB" foreground and background colors.
func NewPalette(fore, back string) (Palette, error) {
	f, err := colorful.Hex(fore)
	if err != nil {
		return Palette{}, fmt.Errorf("foreground %q: %w", fore, err)
	}
	b, err := colorful.Hex(back)
	if err != nil {
		return Palette{}, fmt.Errorf("background %q: %w", back, err)
	}
	return Palette{Fore: f, Back: b}, nil
}

// DefaultPalette is the palette built from the fixed config colors.
func DefaultPalette() Palette {
	p, err := NewPalette(config.ForeColor, config.BackColor)
	if err != nil {
		panic(err)
	}
	return p
}
