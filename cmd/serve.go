package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocable/internal/is7098"
	"github.com/alexiusacademia/gocable/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sizing engine as an HTTP JSON API",
	Long: `Run an HTTP server exposing the sizing engine to front ends:

  POST /api/tools/current/calc   - full-load current from a JSON load
  POST /api/tools/cable/select   - cable selection from a JSON request
  POST /api/tools/cable/batch    - one selection per row of an uploaded
                                   .xlsx sheet
  POST /api/tools/report/pdf     - downloadable PDF sizing report

The listen address comes from --addr, or the GOCABLE_ADDR environment
variable (a .env file is honoured when present).

Examples:
  gocable serve
  gocable serve --addr :9090`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default $GOCABLE_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) {
	// .env is optional; environment variables win either way.
	godotenv.Load()

	addr := serveAddr
	if addr == "" {
		addr = os.Getenv("GOCABLE_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	if err := is7098.VerifyTables(); err != nil {
		log.Fatalf("reference table check failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    addr,
		Handler: server.New().Handler(),
	}

	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
