package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pcblab/internal/api"
	"pcblab/internal/catalog"
	"pcblab/internal/clock"
	"pcblab/internal/config"
	"pcblab/internal/forms"
	"pcblab/internal/scanner"
	"pcblab/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Long:  "Start the HTTP API exposing scans, the catalog, tools and forms. Stops gracefully on SIGINT or SIGTERM.",
	RunE:  runServe,
}

// newServices wires the engine components around one session
func newServices(c *config.Config, clk clock.Clock) api.Services {
	cat := catalog.Default()
	sess := session.New(cat)
	return api.Services{
		Config:    c,
		Catalog:   cat,
		Scanner:   scanner.New(c, clk),
		Session:   sess,
		Submitter: forms.New(c, clk, sess, cat),
	}
}

// newServer builds the HTTP server with CORS around the API router
func newServer(c *config.Config, services api.Services) *http.Server {
	router := api.NewRouter(services)

	corsMiddleware := handlers.CORS(
		handlers.AllowedOrigins(c.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port),
		Handler:      corsMiddleware(router),
		ReadTimeout:  time.Duration(c.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(c.Server.WriteTimeout) * time.Second,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Info().Str("version", api.Version).Msg("Starting PCB Lab")

	server := newServer(cfg, newServices(cfg, clock.New()))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return err
	}
	log.Info().Msg("Shutdown complete")
	return nil
}
