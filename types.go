package main

import (
	"github.com/NikolaTosic-sudo/chess-board/internal/glyphs"
	"go.uber.org/zap"
)

type appConfig struct {
	port   string
	width  int
	glyphs *glyphs.Set
	logger *zap.Logger
}
