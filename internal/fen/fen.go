// Package fen writes positions in Forsyth-Edwards Notation.
package fen

import (
	"strconv"
	"strings"

	"github.com/NikolaTosic-sudo/chess-board/internal/board"
)

var kindLetters = map[board.PieceKind]byte{
	board.Pawn:   'p',
	board.Knight: 'n',
	board.Bishop: 'b',
	board.Rook:   'r',
	board.Queen:  'q',
	board.King:   'k',
}

// Placement returns the piece placement field, rank 8 first.
func Placement(p board.Position) string {
	var b strings.Builder

	for row, rank := range board.Ranks {
		if row > 0 {
			b.WriteByte('/')
		}

		empty := 0
		for _, file := range board.Files {
			piece, ok := p[board.MustIndex(rank, file)].Piece()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(letter(piece))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
	}

	return b.String()
}

// String returns a full FEN record with white to move, full castling
// rights and no en passant square.
func String(p board.Position) string {
	return Placement(p) + " w KQkq - 0 1"
}

func letter(piece board.Piece) byte {
	l := kindLetters[piece.Kind]
	if piece.Side == board.White {
		return l - 'a' + 'A'
	}
	return l
}
