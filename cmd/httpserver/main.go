// Command httpserver serves files from a directory over HTTP/1.1,
// configured via HOST/PORT environment variables with flag overrides.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shapestone/httpcodec/internal/server"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envPortOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	var host string
	var port int
	var root string
	var logFile string

	cmd := &cobra.Command{
		Use:   "httpserver",
		Short: "Serve files over HTTP/1.1",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileHandler := server.NewFileHandler(root)
			logger := server.NewLogger(server.LogConfig{Filename: logFile})
			handler := server.NewAccessLogDecorator(fileHandler, logger)

			srv, err := server.Listen(host, port, handler)
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			fmt.Printf("listening on http://%s/\n", srv.Addr().String())

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return srv.Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", envOr("HOST", "0.0.0.0"), "address to bind")
	cmd.Flags().IntVar(&port, "port", envPortOr("PORT", 8080), "port to bind")
	cmd.Flags().StringVar(&root, "root", envOr("HTTPSERVER_ROOT", "."), "directory to serve")
	cmd.Flags().StringVar(&logFile, "log-file", envOr("HTTPSERVER_LOG_FILE", ""), "access log file (empty = stdout)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
