package components

import (
	"context"
	"fmt"
	"io"

	"github.com/NikolaTosic-sudo/chess-board/internal/board"
	"github.com/NikolaTosic-sudo/chess-board/internal/glyphs"
	"github.com/a-h/templ"
)

// Board renders the 8 by 8 grid, one Square per entry in b.
func Board(b board.Board, set *glyphs.Set, width int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="board" style="%v">`, templ.EscapeString(boardStyle(width)))
		if err != nil {
			return err
		}

		for _, entry := range b {
			if err := Square(entry, set, width).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</div>`)
		return err
	})
}

// Square renders one square: its color class, its coordinate label and the
// piece glyph when occupied.
func Square(entry board.Entry, set *glyphs.Set, width int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sq := entry.Square

		_, err := fmt.Fprintf(w, `<div id="%v" class="%v" style="%v">%v`,
			templ.EscapeString(squareId(sq)),
			templ.EscapeString(squareClass(sq.Color())),
			templ.EscapeString(squareStyle(width)),
			templ.EscapeString(sq.Name()),
		)
		if err != nil {
			return err
		}

		if !entry.Occupant.IsEmpty() {
			markup, ok := set.For(entry.Occupant)
			if !ok {
				return fmt.Errorf("no glyph for %v on %v", entry.Occupant, sq)
			}
			if err := Piece(markup).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</div>`)
		return err
	})
}

// Piece embeds raw SVG markup.
func Piece(markup string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="piece">`); err != nil {
			return err
		}
		if err := templ.Raw(markup).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
