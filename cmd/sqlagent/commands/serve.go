// ABOUTME: HTTP front end exposing the pipeline over a small JSON API
// ABOUTME: chi router with sane timeouts; the handler just renders Run's string
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/config"
)

var serveAddr string

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the agent over HTTP",
		Long: `Start an HTTP server exposing the pipeline.

  POST /api/query  {"query": "..."}  ->  {"result": "..."}
  GET  /healthz`,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to SQLAGENT_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, cfg, cleanup, err := buildAgent()
	if err != nil {
		return err
	}
	defer cleanup()

	addr := listenAddr(serveAddr, cfg)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServeMux(a.Run),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
	return srv.ListenAndServe()
}

// listenAddr prefers the --addr flag over the configured address
func listenAddr(flagAddr string, cfg *config.Config) string {
	if flagAddr != "" {
		return flagAddr
	}
	return cfg.Addr
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Result string `json:"result"`
}

// newServeMux builds the router around the pipeline entry point
func newServeMux(run func(ctx context.Context, query string) string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/api/query", func(w http.ResponseWriter, req *http.Request) {
		var body queryRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		result := run(req.Context(), body.Query)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(queryResponse{Result: result})
	})

	return r
}
