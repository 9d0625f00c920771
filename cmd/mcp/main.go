package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/GoSim-25-26J-441/archbot-backend/config"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/logger"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/mcpserver"
)

func main() {
	transport := flag.String("transport", "stdio", "Transport mode: stdio or http")
	port := flag.String("port", "8081", "HTTP port (only used with --transport http)")
	userID := flag.Int64("user-id", 0, "User id that owns chat turns and projects")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout is the stdio transport
	log := logger.InitWriter(os.Stderr, cfg.App.LogLevel, cfg.App.LogFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app, err := bootstrap.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	srv := mcpserver.New(&mcpserver.Tools{
		Chat:     app.Chat,
		Projects: app.Projects,
		Owner:    *userID,
	}, cfg.App.Version)

	switch *transport {
	case "stdio":
		log.Info("mcp server starting", "transport", "stdio", "user_id", *userID)
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			log.Error("server error", "error", err)
		}
	case "http":
		handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
			return srv
		}, nil)
		httpSrv := &http.Server{Addr: ":" + *port, Handler: handler}
		go func() {
			<-ctx.Done()
			httpSrv.Shutdown(context.Background())
		}()
		log.Info("mcp server listening", "addr", httpSrv.Addr, "user_id", *userID)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
		}
	default:
		log.Error("unknown transport, use stdio or http", "transport", *transport)
	}
}
