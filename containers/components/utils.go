package components

import (
	"fmt"

	"github.com/NikolaTosic-sudo/chess-board/internal/board"
)

// DefaultWidth is the board width in logical pixels.
const DefaultWidth = 810

func squareClass(c board.Color) string {
	return "square " + c.String()
}

func boardStyle(width int) string {
	return fmt.Sprintf("width: %vpx; flex-direction: row; flex-wrap: wrap; display: flex;", width)
}

func squareStyle(width int) string {
	return fmt.Sprintf("width: %vpx; height: %vpx", width/8, width/8)
}

func squareId(sq board.Square) string {
	return "square-" + sq.Name()
}
