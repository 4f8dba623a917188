package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/NikolaTosic-sudo/chess-board/containers/components"
	"github.com/NikolaTosic-sudo/chess-board/internal/board"
	"github.com/NikolaTosic-sudo/chess-board/internal/glyphs"
	"github.com/a-h/templ"
)

const styles = `
	body { margin: 0; background-color: #302e2b; font-family: sans-serif; }
	.main { display: flex; justify-content: center; padding: 24px; }
	.square { box-sizing: border-box; padding: 4px; font-size: 12px; position: relative; }
	.square .piece { position: absolute; inset: 12px; }
	.square .piece svg { width: 100%; height: 100%; }
	.Light { background-color: #f0d9b5; color: #b58863; }
	.Dark { background-color: #b58863; color: #f0d9b5; }
`

// Base wraps body in the html document shell.
func Base(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>%v</title><style>%v</style></head><body>`,
			templ.EscapeString(title),
			styles,
		)
		if err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}

// MainPage is the full page showing the board.
func MainPage(b board.Board, set *glyphs.Set, width int) templ.Component {
	main := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="main">`); err != nil {
			return err
		}
		if err := components.Board(b, set, width).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})

	return Base("Chessboard", main)
}
