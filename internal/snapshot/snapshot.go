// Package snapshot rasterizes a board into a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/NikolaTosic-sudo/chess-board/internal/board"
	"github.com/NikolaTosic-sudo/chess-board/internal/glyphs"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	MinSize = 64
	MaxSize = 2048
)

var (
	lightColor = color.RGBA{R: 0xf0, G: 0xd9, B: 0xb5, A: 0xff}
	darkColor  = color.RGBA{R: 0xb5, G: 0x88, B: 0x63, A: 0xff}
)

// Render draws b as an 8x8 grid. size is the requested width in pixels and is
// rounded down to a multiple of 8.
func Render(b board.Board, set *glyphs.Set, size int) (*image.RGBA, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("size %d outside %d..%d", size, MinSize, MaxSize)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	tile := size / 8
	img := image.NewRGBA(image.Rect(0, 0, tile*8, tile*8))

	for i, entry := range b {
		area := image.Rect(0, 0, tile, tile).Add(image.Pt((i%8)*tile, (i/8)*tile))

		fill, label := lightColor, darkColor
		if entry.Square.Color() == board.Dark {
			fill, label = darkColor, lightColor
		}
		draw.Draw(img, area, image.NewUniform(fill), image.Point{}, draw.Src)

		if key, ok := glyphs.Key(entry.Occupant); ok {
			if err := set.Draw(img, key, area); err != nil {
				return nil, err
			}
		}

		drawLabel(img, entry.Square.Name(), area, label)
	}

	return img, nil
}

func drawLabel(img *image.RGBA, text string, area image.Rectangle, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(area.Min.X+2, area.Min.Y+face.Ascent+1),
	}
	d.DrawString(text)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
