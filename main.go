package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sravani557/quantum-recruiter/internal/api"
	"github.com/sravani557/quantum-recruiter/internal/config"
	"github.com/sravani557/quantum-recruiter/internal/embedding"
	"github.com/sravani557/quantum-recruiter/internal/logger"
	"github.com/sravani557/quantum-recruiter/internal/outreach"
	"github.com/sravani557/quantum-recruiter/internal/ranking"
)

func main() {
	// Optional .env for local development; the real environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("QR_CONFIG"))
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zlog, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	embedder, err := embedding.NewClient(ctx, embedding.Config{
		APIKey:   cfg.Embedding.APIKey,
		Project:  cfg.Embedding.Project,
		Location: cfg.Embedding.Location,
		Model:    cfg.Embedding.Model,
	}, zlog)
	if err != nil {
		zlog.Fatal("creating embedding client", zap.Error(err))
	}

	pipeline := ranking.NewPipeline(embedder, zlog)
	mailer := outreach.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.DryRun, zlog)

	server, err := api.NewServer(cfg, zlog, pipeline, mailer)
	if err != nil {
		zlog.Fatal("creating server", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	zlog.Info("starting quantum recruiter", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
