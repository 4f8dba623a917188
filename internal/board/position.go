package board

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for a rank outside 1..8 or a file outside a..h.
var ErrOutOfRange = errors.New("coordinate out of range")

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialPosition returns the standard starting occupants, rank 1 first and
// files a to h within each rank.
func InitialPosition() [64]Occupant {
	var occupants [64]Occupant

	for i, kind := range backRank {
		occupants[i] = Occupied(White, kind)
		occupants[8+i] = Occupied(White, Pawn)
		occupants[48+i] = Occupied(Black, Pawn)
		occupants[56+i] = Occupied(Black, kind)
	}

	return occupants
}

func checkCoordinate(rank int, file byte) error {
	if rank < 1 || rank > 8 {
		return fmt.Errorf("rank %d: %w", rank, ErrOutOfRange)
	}
	if file < 'a' || file > 'h' {
		return fmt.Errorf("file %q: %w", file, ErrOutOfRange)
	}
	return nil
}

// Index maps a coordinate to its slot in a Position: rank 8 is row 0 and
// file a is column 0, so a8 is 0 and h1 is 63.
func Index(rank int, file byte) (int, error) {
	if err := checkCoordinate(rank, file); err != nil {
		return 0, err
	}

	row := 8 - rank
	col := int(file - 'a')

	return row*8 + col, nil
}

// MustIndex is Index for coordinates known to be valid, such as those from
// Layout. It panics otherwise.
func MustIndex(rank int, file byte) int {
	idx, err := Index(rank, file)
	if err != nil {
		panic(err)
	}
	return idx
}

// Position is a full set of occupants addressed by Index.
type Position [64]Occupant

// At returns the occupant of the given square.
func (p Position) At(sq Square) Occupant {
	return p[MustIndex(sq.rank, sq.file)]
}

// PositionFromRanks converts a rank-1-first table such as InitialPosition
// into a Position.
func PositionFromRanks(occupants [64]Occupant) Position {
	var p Position

	for i, o := range occupants {
		rank := i/8 + 1
		file := Files[i%8]
		p[MustIndex(rank, file)] = o
	}

	return p
}

// StartingPosition returns the standard initial position as a Position.
func StartingPosition() Position {
	return PositionFromRanks(InitialPosition())
}
