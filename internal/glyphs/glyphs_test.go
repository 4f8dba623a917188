package glyphs

import (
	"image"
	"strings"
	"testing"

	"github.com/NikolaTosic-sudo/chess-board/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		occupant board.Occupant
		wantKey  string
		wantOk   bool
	}{
		{name: "Empty", occupant: board.Empty(), wantOk: false},
		{name: "White king", occupant: board.Occupied(board.White, board.King), wantKey: "KW", wantOk: true},
		{name: "White knight", occupant: board.Occupied(board.White, board.Knight), wantKey: "KnW", wantOk: true},
		{name: "White pawn", occupant: board.Occupied(board.White, board.Pawn), wantKey: "PW", wantOk: true},
		{name: "Black queen", occupant: board.Occupied(board.Black, board.Queen), wantKey: "QB", wantOk: true},
		{name: "Black rook", occupant: board.Occupied(board.Black, board.Rook), wantKey: "RB", wantOk: true},
		{name: "Black bishop", occupant: board.Occupied(board.Black, board.Bishop), wantKey: "BB", wantOk: true},
		{name: "Black knight", occupant: board.Occupied(board.Black, board.Knight), wantKey: "KnB", wantOk: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := Key(tt.occupant)

			if ok != tt.wantOk || key != tt.wantKey {
				t.Errorf("Key() = %v, %v, want %v, %v", key, ok, tt.wantKey, tt.wantOk)
			}
		})
	}
}

func TestKeysCoverEveryPiece(t *testing.T) {
	seen := map[string]bool{}

	for _, side := range []board.Side{board.White, board.Black} {
		for kind := board.Pawn; kind <= board.King; kind++ {
			key, ok := Key(board.Occupied(side, kind))
			require.True(t, ok)
			seen[key] = true
		}
	}

	assert.Len(t, seen, 12)
	for _, key := range Keys {
		assert.True(t, seen[key], "key %v is never produced", key)
	}
}

func TestLoad(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	for _, key := range Keys {
		markup, ok := set.Markup(key)
		require.True(t, ok, key)
		assert.True(t, strings.HasPrefix(markup, "<svg"), key)
	}

	_, ok := set.Markup("XX")
	assert.False(t, ok)

	_, ok = set.For(board.Empty())
	assert.False(t, ok)

	markup, ok := set.For(board.Occupied(board.Black, board.King))
	require.True(t, ok)
	assert.Equal(t, set.markup["KB"], markup)
}

func TestDraw(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	dst := image.NewRGBA(image.Rect(0, 0, 90, 45))
	require.NoError(t, set.Draw(dst, "PB", image.Rect(45, 0, 90, 45)))

	// The left half is untouched and the pawn body lands in the right half.
	assert.Equal(t, uint8(0), dst.RGBAAt(22, 30).A)
	assert.NotEqual(t, uint8(0), dst.RGBAAt(45+22, 30).A)

	assert.Error(t, set.Draw(dst, "XX", dst.Bounds()))
}
