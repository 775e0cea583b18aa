package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/vibear-app/vibear/internal/app"
	"github.com/vibear-app/vibear/internal/handlers"
)

func newServeCmd(opts *options) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the VibeAR API server",
		Long: `Starts the VibeAR HTTP API on the specified port.

The API accepts room photos from the mobile front-end, returns the room analysis and
matching furniture, tracks capture sessions, and resolves AR model URLs.`,
		Example: `  # Start server on default port 8888
  vibear serve

  # Start server on custom port with sessions kept in Redis
  REDIS_ADDR=localhost:6379 vibear serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.settings()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") || settings.Server.Port == "" {
				settings.Server.Port = port
			}

			services, err := app.New(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer func() {
				if err := services.Close(); err != nil {
					slog.Error("Unable to close services", "err", err)
				}
			}()

			handler := handlers.New(handlers.Services{
				Analyzer:  services.Analyzer,
				Deriver:   services.Deriver,
				Matcher:   services.Matcher,
				Resolver:  services.Resolver,
				Pipeline:  services.Pipeline,
				Store:     services.Store,
				StaticDir: settings.Server.StaticDir,
			})

			addr := ":" + settings.Server.Port
			server := &http.Server{
				Addr:              addr,
				Handler:           handler.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("VibeAR API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on (overrides PORT and the config file)")

	return cmd
}
