package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/NikolaTosic-sudo/chess-board/containers/components"
	layout "github.com/NikolaTosic-sudo/chess-board/containers/layouts"
	"github.com/NikolaTosic-sudo/chess-board/internal/board"
	"github.com/NikolaTosic-sudo/chess-board/internal/fen"
	"github.com/NikolaTosic-sudo/chess-board/internal/responses"
	"github.com/NikolaTosic-sudo/chess-board/internal/snapshot"
)

func (cfg *appConfig) boardHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := layout.MainPage(board.StartingBoard(), cfg.glyphs, cfg.width).Render(r.Context(), w)
	if err != nil {
		responses.RespondWithAnErrorPage(w, r, http.StatusInternalServerError, "Couldn't render template")
		return
	}
}

func (cfg *appConfig) boardFragmentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := components.Board(board.StartingBoard(), cfg.glyphs, cfg.width).Render(r.Context(), w)
	if err != nil {
		responses.RespondWithAnError(w, http.StatusInternalServerError, "couldn't render board", err)
		return
	}
}

func (cfg *appConfig) squareHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if _, err := board.ParseSquare(name); err != nil {
		responses.RespondWithAnErrorPage(w, r, http.StatusNotFound, fmt.Sprintf("No square named %v", name))
		return
	}

	entry, ok := board.StartingBoard().Lookup(name)
	if !ok {
		responses.RespondWithAnErrorPage(w, r, http.StatusNotFound, fmt.Sprintf("No square named %v", name))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := components.Square(entry, cfg.glyphs, cfg.width).Render(r.Context(), w)
	if err != nil {
		responses.RespondWithAnError(w, http.StatusInternalServerError, "couldn't render square", err)
		return
	}
}

func (cfg *appConfig) glyphHandler(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	key, found := strings.CutSuffix(file, ".svg")

	markup, ok := cfg.glyphs.Markup(key)
	if !found || !ok {
		responses.RespondWithAnErrorPage(w, r, http.StatusNotFound, fmt.Sprintf("No piece named %v", file))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	fmt.Fprint(w, markup)
}

func (cfg *appConfig) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	size := cfg.width

	if s := r.URL.Query().Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < snapshot.MinSize || n > snapshot.MaxSize {
			responses.RespondWithAnError(w, http.StatusBadRequest, "invalid size", fmt.Errorf("size %q", s))
			return
		}
		size = n
	}

	img, err := snapshot.Render(board.StartingBoard(), cfg.glyphs, size)
	if err != nil {
		responses.RespondWithAnError(w, http.StatusInternalServerError, "couldn't render snapshot", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := snapshot.Encode(w, img); err != nil {
		responses.LogError("couldn't encode snapshot", err)
	}
}

func (cfg *appConfig) fenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, fen.String(board.StartingPosition()))
}

func (cfg *appConfig) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	responses.RespondWithAnErrorPage(w, r, http.StatusNotFound, fmt.Sprintf("Nothing at %v", r.URL.Path))
}
