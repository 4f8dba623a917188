// Package glyphs resolves occupants to piece artwork and serves the embedded
// SVG assets.
package glyphs

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"strings"

	"github.com/NikolaTosic-sudo/chess-board/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed pieces/*.svg
var pieceAssets embed.FS

var kindCodes = map[board.PieceKind]string{
	board.King:   "K",
	board.Queen:  "Q",
	board.Rook:   "R",
	board.Bishop: "B",
	board.Knight: "Kn",
	board.Pawn:   "P",
}

// Keys lists every glyph key, white pieces first.
var Keys = []string{
	"KW", "QW", "RW", "BW", "KnW", "PW",
	"KB", "QB", "RB", "BB", "KnB", "PB",
}

// Key resolves an occupant to its asset key, e.g. "KnW" for a white knight.
// Empty squares have no key.
func Key(o board.Occupant) (string, bool) {
	piece, ok := o.Piece()
	if !ok {
		return "", false
	}

	side := "W"
	if piece.Side == board.Black {
		side = "B"
	}

	return kindCodes[piece.Kind] + side, true
}

// Set holds the SVG markup of all twelve glyphs.
type Set struct {
	markup map[string]string
}

// Load reads and parses every glyph. A missing or malformed asset is an
// error; callers treat it as fatal.
func Load() (*Set, error) {
	s := &Set{markup: make(map[string]string, len(Keys))}

	for _, key := range Keys {
		path := "pieces/" + key + ".svg"

		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("couldn't read glyph %v: %w", path, err)
		}

		if _, err := oksvg.ReadIconStream(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("couldn't parse glyph %v: %w", path, err)
		}

		s.markup[key] = string(data)
	}

	return s, nil
}

// Markup returns the raw SVG for a key.
func (s *Set) Markup(key string) (string, bool) {
	m, ok := s.markup[key]
	return m, ok
}

// For returns the raw SVG for an occupant, or false for an empty square.
func (s *Set) For(o board.Occupant) (string, bool) {
	key, ok := Key(o)
	if !ok {
		return "", false
	}
	return s.Markup(key)
}

// Draw rasterizes the glyph for key into area of dst.
func (s *Set) Draw(dst *image.RGBA, key string, area image.Rectangle) error {
	m, ok := s.markup[key]
	if !ok {
		return fmt.Errorf("unknown glyph %q", key)
	}

	// SetTarget mutates the icon, so every draw parses its own copy.
	icon, err := oksvg.ReadIconStream(strings.NewReader(m))
	if err != nil {
		return fmt.Errorf("couldn't parse glyph %q: %w", key, err)
	}

	icon.SetTarget(float64(area.Min.X), float64(area.Min.Y), float64(area.Dx()), float64(area.Dy()))

	bounds := dst.Bounds()
	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), dst, bounds)
	raster := rasterx.NewDasher(bounds.Dx(), bounds.Dy(), scanner)
	icon.Draw(raster, 1.0)

	return nil
}
