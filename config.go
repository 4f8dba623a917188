package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/NikolaTosic-sudo/chess-board/containers/components"
	"github.com/NikolaTosic-sudo/chess-board/internal/snapshot"
	"github.com/joho/godotenv"
)

type envConfig struct {
	port     string
	width    int
	logLevel string
}

// loadEnv reads an optional .env file and then the environment. A missing
// .env file is reported through missingEnv and is not an error.
func loadEnv(filenames ...string) (envConfig, bool, error) {
	cfg := envConfig{
		port:     "8080",
		width:    components.DefaultWidth,
		logLevel: "info",
	}

	missingEnv := false
	if err := godotenv.Load(filenames...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, false, fmt.Errorf("couldn't load env: %w", err)
		}
		missingEnv = true
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.port = port
	}

	if width := os.Getenv("BOARD_WIDTH"); width != "" {
		w, err := strconv.Atoi(width)
		if err != nil {
			return cfg, missingEnv, fmt.Errorf("couldn't convert BOARD_WIDTH: %w", err)
		}
		cfg.width = w
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.logLevel = level
	}

	if err := cfg.validate(); err != nil {
		return cfg, missingEnv, err
	}

	return cfg, missingEnv, nil
}

func (c envConfig) validate() error {
	if c.width < snapshot.MinSize || c.width > snapshot.MaxSize {
		return fmt.Errorf("board width %d outside %d..%d", c.width, snapshot.MinSize, snapshot.MaxSize)
	}
	if _, err := strconv.Atoi(c.port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.port, err)
	}
	switch c.logLevel {
	case "debug", "info":
	default:
		return fmt.Errorf("unknown LOG_LEVEL %q", c.logLevel)
	}
	return nil
}
