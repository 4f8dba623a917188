// Package board holds the chessboard data model: squares, occupants, the
// starting position and the mapping between coordinates and array indices.
package board

import "fmt"

// Files lists the board files from left to right.
var Files = [8]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}

// Ranks lists the board ranks top to bottom as seen from white.
var Ranks = [8]int{8, 7, 6, 5, 4, 3, 2, 1}

// Color is the shade of a square.
type Color uint8

const (
	Dark Color = iota
	Light
)

func (c Color) String() string {
	if c == Light {
		return "Light"
	}
	return "Dark"
}

// Square is one of the 64 board positions. It is a value type; the zero
// value is not a valid square.
type Square struct {
	name  string
	color Color
	rank  int
	file  byte
}

func newSquare(rank int, file byte) Square {
	return Square{
		name:  fmt.Sprintf("%c%d", file, rank),
		color: squareColor(rank, file),
		rank:  rank,
		file:  file,
	}
}

// squareColor uses the character code of the file, so 'a' (97) on rank 1
// is even and therefore dark.
func squareColor(rank int, file byte) Color {
	if (int(file)+rank)%2 == 1 {
		return Light
	}
	return Dark
}

func (s Square) Name() string { return s.name }
func (s Square) Color() Color { return s.color }
func (s Square) Rank() int { return s.rank }
func (s Square) File() byte { return s.file }
func (s Square) String() string { return s.name }

// Layout returns the 64 squares rank 8 down to rank 1, files a to h within
// each rank.
func Layout() []Square {
	squares := make([]Square, 0, 64)

	for _, rank := range Ranks {
		for _, file := range Files {
			squares = append(squares, newSquare(rank, file))
		}
	}

	return squares
}

// ParseSquare turns a coordinate name such as "e4" into a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", name, ErrOutOfRange)
	}

	file := name[0]
	rank := int(name[1] - '0')

	if err := checkCoordinate(rank, file); err != nil {
		return Square{}, fmt.Errorf("square %q: %w", name, err)
	}

	return newSquare(rank, file), nil
}
