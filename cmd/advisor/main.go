package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"MarketAdvisor/internal/collector"
	"MarketAdvisor/internal/config"
	"MarketAdvisor/internal/notifier"
	"MarketAdvisor/internal/recorder"
	"MarketAdvisor/internal/scheduler"
	"MarketAdvisor/internal/server"
	"MarketAdvisor/internal/universe"
	"MarketAdvisor/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: true})
	log.Info().Msg("MarketAdvisor starting")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Wire the data pipeline
	yahoo := collector.NewYahooFetcher(cfg.Proxy)
	news := collector.NewNewsSentimentFetcher(cfg.News.APIKey, cfg.Proxy)
	col := collector.NewCollector(yahoo, yahoo, news, log)
	ranker := universe.NewRanker(col, log)

	// Recorder: SQLite when configured, otherwise a no-op
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Telegram notifier is optional
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		log.Info().Msg("telegram notifier enabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, ranker, tn, rec, log)
	if err := sched.RegisterAll(cfg.Schedule.ScanCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	srv := server.New(server.Config{
		Port:      cfg.Server.Port,
		Log:       log,
		Collector: col,
		Ranker:    ranker,
		Recorder:  rec,
	})
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("start server")
		}
	}()

	log.Info().Int("port", cfg.Server.Port).Msg("MarketAdvisor is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("MarketAdvisor stopped")
}
