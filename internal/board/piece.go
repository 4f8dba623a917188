package board

// Side is the player a piece belongs to.
type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

// PieceKind is the type of a chess piece.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

func (k PieceKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Piece is a side and kind pair.
type Piece struct {
	Side Side
	Kind PieceKind
}

// Occupant is what sits on a square: either nothing or exactly one piece.
// The zero value is Empty. Occupants are comparable with ==.
type Occupant struct {
	piece    Piece
	occupied bool
}

// Empty returns the occupant of a square with no piece.
func Empty() Occupant {
	return Occupant{}
}

// Occupied returns an occupant holding a piece of the given side and kind.
func Occupied(side Side, kind PieceKind) Occupant {
	return Occupant{piece: Piece{Side: side, Kind: kind}, occupied: true}
}

func (o Occupant) IsEmpty() bool {
	return !o.occupied
}

// Piece returns the piece and true, or false for an empty square.
func (o Occupant) Piece() (Piece, bool) {
	return o.piece, o.occupied
}

// String returns the flat name of the occupant, e.g. "WhiteKing" or "Empty".
func (o Occupant) String() string {
	if !o.occupied {
		return "Empty"
	}
	return o.piece.Side.String() + o.piece.Kind.String()
}
