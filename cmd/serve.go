package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graph-gophers/graphql-go/relay"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/garagehq/garage/internal/graph"
	"github.com/garagehq/garage/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST)
  - GraphiQL at /graphql (GET) for interactive queries

Examples:
  # Start server on the configured port
  garage serve

  # Start server on a custom port with an in-memory store
  garage serve --port 3000 --memory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	schema := graph.MustParseSchema(graph.NewResolver(store, jokeSvc, logger))
	gqlHandler := &relay.Handler{Schema: schema}
	graphiql := web.GraphiQL()

	mux := http.NewServeMux()
	mux.Handle("/graphql", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Serve GraphiQL on GET requests
		if r.Method == http.MethodGet {
			graphiql.ServeHTTP(w, r)
			return
		}
		gqlHandler.ServeHTTP(w, r)
	}))

	port := servePort
	if port == 0 {
		port = cfg.Server.Port
	}
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.Int("port", port),
			zap.String("graphql", fmt.Sprintf("http://localhost:%d/graphql", port)))
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server stopped")
	}

	return nil
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
