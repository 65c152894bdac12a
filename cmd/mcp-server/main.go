package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/mcp-echo-server/internal/config"
	"github.com/roivaz/mcp-echo-server/internal/logging"
	"github.com/roivaz/mcp-echo-server/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "MCP echo fixture server",
		RunE:  run,
	}

	root.PersistentFlags().String("host", "127.0.0.1", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("transport", config.TransportHTTP, "Transport to serve on (http or stdio)")
	root.PersistentFlags().String("log-level", "info", "Log verbosity (debug, info, warn, error)")
	root.PersistentFlags().Int("max-payload-bytes", 1<<20, "Maximum serialized size accepted by echo_json")
	root.PersistentFlags().Int("max-payload-depth", 64, "Maximum nesting depth accepted by echo_json")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.ForLevel(config.LogLevel())).WithName("mcp-server")
	srv := mcp.New(mcp.DefaultConfig())

	switch config.Transport() {
	case config.TransportStdio:
		logger.Info("serving MCP over stdio")
		return srv.ServeStdio()
	case config.TransportHTTP:
		return serveHTTP(srv, logger)
	default:
		return fmt.Errorf("unknown transport %q", config.Transport())
	}
}

func serveHTTP(srv *mcp.Server, logger logging.Logger) error {
	addr := config.Host() + ":" + strconv.Itoa(config.Port())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr, "endpoint", mcp.EndpointPath)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
