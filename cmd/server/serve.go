package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/auth"
	"portfolio/internal/kv"
	mcpserver "portfolio/internal/mcp"
	"portfolio/internal/site"
	"portfolio/internal/upload"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

//go:embed static
var staticFS embed.FS

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo, store, err := openRepo(cfg, logger)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer closeStore(store, logger)

	// Wire dependencies
	gate := auth.NewGate(cfg.Admin.Password, kv.NewMemory())
	uploads := upload.NewClient(cfg.Upload.CloudName, cfg.Upload.Preset, cfg.Upload.Endpoint)
	if !uploads.Configured() {
		logger.Info("image upload disabled; set upload.cloud_name and upload.preset to enable it")
	}
	handler := site.NewHandler(repo, gate, uploads, logger)

	// Create MCP server
	mcpSrv := mcpserver.NewServer(repo)

	// HTTP router
	mux := http.NewServeMux()

	// Static files
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to get static fs: %w", err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	// Pages and JSON API
	handler.Register(mux)

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	mcpHTTP := server.NewStreamableHTTPServer(mcpSrv)
	mux.Handle("POST /mcp", mcpHTTP)
	mux.Handle("GET /mcp", mcpHTTP)
	mux.Handle("DELETE /mcp", mcpHTTP)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // uploads wait on the image host
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("server starting", "port", cfg.Port, "storage", cfg.Storage.Driver)
	logger.Info("endpoints available",
		"web", "http://localhost:"+cfg.Port,
		"admin", "http://localhost:"+cfg.Port+"/admin",
		"api", "http://localhost:"+cfg.Port+"/api",
		"mcp", "http://localhost:"+cfg.Port+"/mcp",
	)

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
