package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kupikrutcher/relationship-app/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)

	j, err := openJournal(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer j.Close()

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithStorage(j.storage, j.ping),
	}
	if dir := cfg.Server.StaticDir; dir != "" {
		opts = append(opts, server.WithStatic(os.DirFS(dir)))
	}
	srv := server.New(j.Store, VersionString(), opts...)
	addr := cfg.ListenAddr()

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		logger.Info("relationship serving",
			slog.String("addr", addr),
			slog.String("storage", j.storage),
			slog.String("path", j.path),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	}
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(ctx)
}
