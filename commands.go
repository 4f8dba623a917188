package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	layout "github.com/NikolaTosic-sudo/chess-board/containers/layouts"
	"github.com/NikolaTosic-sudo/chess-board/internal/board"
	"github.com/NikolaTosic-sudo/chess-board/internal/fen"
	"github.com/NikolaTosic-sudo/chess-board/internal/snapshot"
	"github.com/NikolaTosic-sudo/chess-board/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	htmlOut string
	pngOut  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the board over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newAppConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cfg.serve(ctx)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the board page as HTML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newAppConfig(cmd)
		if err != nil {
			return err
		}

		page, err := utils.TemplString(cmd.Context(), layout.MainPage(board.StartingBoard(), cfg.glyphs, cfg.width))
		if err != nil {
			return fmt.Errorf("couldn't render page: %w", err)
		}

		return writeOutput(cmd.OutOrStdout(), htmlOut, func(w io.Writer) error {
			_, err := io.WriteString(w, page)
			return err
		})
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write the board as a PNG image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newAppConfig(cmd)
		if err != nil {
			return err
		}

		img, err := snapshot.Render(board.StartingBoard(), cfg.glyphs, cfg.width)
		if err != nil {
			return fmt.Errorf("couldn't render snapshot: %w", err)
		}

		return writeOutput(cmd.OutOrStdout(), pngOut, func(w io.Writer) error {
			return snapshot.Encode(w, img)
		})
	},
}

var fenCmd = &cobra.Command{
	Use:   "fen",
	Short: "Print the FEN of the starting position",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), fen.String(board.StartingPosition()))
		return err
	},
}

func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("wrote board", zap.String("path", path))
	return nil
}

func (cfg *appConfig) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", cfg.port),
		Handler:           cfg.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("couldn't start the server: %w", err)
	case <-ctx.Done():
	}

	cfg.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("couldn't shut down the server: %w", err)
	}

	return nil
}
