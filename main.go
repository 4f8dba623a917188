package main

import (
	"fmt"
	"os"

	"github.com/NikolaTosic-sudo/chess-board/internal/glyphs"
	"github.com/NikolaTosic-sudo/chess-board/internal/responses"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	width   int
	port    string

	env    envConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "chessboard",
	Short:         "Render a chessboard in its starting position",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var missingEnv bool
		var err error
		env, missingEnv, err = loadEnv()
		if err != nil {
			return err
		}

		logger, err = newLogger(verbose || env.logLevel == "debug")
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		responses.SetLogger(logger)

		if missingEnv {
			logger.Debug("no .env file, using the environment only")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// newAppConfig merges flags over the environment and loads the glyphs. A
// glyph that fails to load stops the command.
func newAppConfig(cmd *cobra.Command) (*appConfig, error) {
	merged := env
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		merged.port = port
	}
	if cmd.Flags().Changed("width") {
		merged.width = width
	}
	if err := merged.validate(); err != nil {
		return nil, err
	}

	set, err := glyphs.Load()
	if err != nil {
		return nil, err
	}

	return &appConfig{
		port:   merged.port,
		width:  merged.width,
		glyphs: set,
		logger: logger,
	}, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "board width in pixels (default BOARD_WIDTH or 810)")

	serveCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default PORT or 8080)")
	renderCmd.Flags().StringVarP(&htmlOut, "out", "o", "", "output file, - or empty for stdout")
	snapshotCmd.Flags().StringVarP(&pngOut, "out", "o", "board.png", "output PNG file")

	rootCmd.AddCommand(serveCmd, renderCmd, snapshotCmd, fenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
