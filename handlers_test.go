package main

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NikolaTosic-sudo/chess-board/internal/glyphs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConfig(t *testing.T) *appConfig {
	t.Helper()

	set, err := glyphs.Load()
	require.NoError(t, err)

	return &appConfig{
		port:   "0",
		width:  810,
		glyphs: set,
		logger: zap.NewNop(),
	}
}

func TestRoutes(t *testing.T) {
	cfg := newTestConfig(t)
	routes := cfg.routes()

	tests := []struct {
		name            string
		method          string
		path            string
		wantStatus      int
		wantContentType string
		wantBody        []string
	}{
		{
			name:            "Main page",
			method:          http.MethodGet,
			path:            "/",
			wantStatus:      http.StatusOK,
			wantContentType: "text/html; charset=utf-8",
			wantBody:        []string{"<!DOCTYPE html>", `id="square-e4"`, "width: 810px"},
		},
		{
			name:            "Board fragment",
			method:          http.MethodGet,
			path:            "/board",
			wantStatus:      http.StatusOK,
			wantContentType: "text/html; charset=utf-8",
			wantBody:        []string{`<div id="board"`, `id="square-a8"`},
		},
		{
			name:            "Occupied square",
			method:          http.MethodGet,
			path:            "/squares/e1",
			wantStatus:      http.StatusOK,
			wantContentType: "text/html; charset=utf-8",
			wantBody:        []string{`class="square Dark"`, ">e1", "<svg"},
		},
		{
			name:       "Unknown square",
			method:     http.MethodGet,
			path:       "/squares/z9",
			wantStatus: http.StatusNotFound,
			wantBody:   []string{"No square named z9"},
		},
		{
			name:            "Glyph",
			method:          http.MethodGet,
			path:            "/assets/pieces/KnB.svg",
			wantStatus:      http.StatusOK,
			wantContentType: "image/svg+xml",
			wantBody:        []string{"<svg"},
		},
		{
			name:       "Glyph without extension",
			method:     http.MethodGet,
			path:       "/assets/pieces/KnB",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Unknown glyph",
			method:     http.MethodGet,
			path:       "/assets/pieces/XX.svg",
			wantStatus: http.StatusNotFound,
		},
		{
			name:            "FEN",
			method:          http.MethodGet,
			path:            "/fen",
			wantStatus:      http.StatusOK,
			wantContentType: "text/plain; charset=utf-8",
			wantBody:        []string{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		},
		{
			name:       "Snapshot with bad size",
			method:     http.MethodGet,
			path:       "/board.png?size=huge",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown path",
			method:     http.MethodGet,
			path:       "/move",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, tt.path, nil)

			routes.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantContentType != "" {
				assert.Equal(t, tt.wantContentType, w.Header().Get("Content-Type"))
			}
			for _, want := range tt.wantBody {
				assert.Contains(t, w.Body.String(), want)
			}
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		})
	}
}

func TestBoardHandlerRendersEverySquare(t *testing.T) {
	cfg := newTestConfig(t)
	w := httptest.NewRecorder()

	cfg.boardHandler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	body := w.Body.String()
	assert.Equal(t, 64, strings.Count(body, `class="square `))
	assert.Equal(t, 32, strings.Count(body, "<svg"))
}

func TestSnapshotHandler(t *testing.T) {
	cfg := newTestConfig(t)
	w := httptest.NewRecorder()

	cfg.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/board.png?size=256", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
