package board

import "fmt"

// Entry pairs a square with what stands on it.
type Entry struct {
	Square   Square
	Occupant Occupant
}

// Board is the ordered sequence rendered on screen, in Layout order.
type Board []Entry

// NewBoard composes Layout with the given position.
func NewBoard(p Position) Board {
	squares := Layout()
	b := make(Board, 0, len(squares))

	for _, sq := range squares {
		b = append(b, Entry{Square: sq, Occupant: p.At(sq)})
	}

	return b
}

// StartingBoard is the board with the standard initial position.
func StartingBoard() Board {
	return NewBoard(StartingPosition())
}

// Lookup finds the entry for a square name.
func (b Board) Lookup(name string) (Entry, bool) {
	for _, e := range b {
		if e.Square.name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Validate checks that the board has 64 entries and every coordinate
// appears exactly once.
func (b Board) Validate() error {
	if len(b) != 64 {
		return fmt.Errorf("board has %d squares, want 64", len(b))
	}

	var seen [64]bool
	for _, e := range b {
		idx, err := Index(e.Square.rank, e.Square.file)
		if err != nil {
			return fmt.Errorf("square %q: %w", e.Square.name, err)
		}
		if seen[idx] {
			return fmt.Errorf("square %q appears twice", e.Square.name)
		}
		seen[idx] = true
	}

	return nil
}
