package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("LiftLog MCP server starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.Open(ctx, cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open database", "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database opened", "path", cfg.Storage.Path)

	s := mcp.New(db, Version, log)

	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
	log.Info("mcp server stopped")
}
