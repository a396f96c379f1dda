package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"MarketAdvisor/internal/model"
	"MarketAdvisor/internal/notifier"
	"MarketAdvisor/internal/recorder"
	"MarketAdvisor/internal/universe"
)

// Scheduler runs the daily universe scan on a cron schedule and pushes the
// resulting digest to Telegram.
type Scheduler struct {
	Cron     *cron.Cron
	Ranker   *universe.Ranker
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context

	log zerolog.Logger
}

// NewScheduler creates a new Scheduler. The notifier may be nil when Telegram
// is not configured; scans still run and get recorded.
func NewScheduler(ctx context.Context, rk *universe.Ranker, tn *notifier.TelegramNotifier, rec recorder.Recorder, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Ranker:   rk,
		Notifier: tn,
		Recorder: rec,
		Ctx:      ctx,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the daily scan task.
func (s *Scheduler) RegisterAll(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunScanNow executes the scan task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	s.log.Info().Msg("running universe scan")

	stockPicks, stockFallback := s.Ranker.TopStocks(s.Ctx, model.DirectionBuy)
	s.record(model.AssetStock, stockPicks, stockFallback)
	s.trySend(notifier.FormatScanDigest(model.AssetStock, model.DirectionBuy, stockPicks, stockFallback))

	fundPicks, fundFallback := s.Ranker.TopFunds(s.Ctx, model.DirectionBuy)
	s.record(model.AssetFund, fundPicks, fundFallback)
	s.trySend(notifier.FormatScanDigest(model.AssetFund, model.DirectionBuy, fundPicks, fundFallback))

	s.log.Info().
		Int("stocks", len(stockPicks)).
		Int("funds", len(fundPicks)).
		Bool("stock_fallback", stockFallback).
		Bool("fund_fallback", fundFallback).
		Msg("universe scan complete")
}

func (s *Scheduler) record(class model.AssetClass, picks []model.Pick, fallback bool) {
	err := s.Recorder.RecordScan(&recorder.ScanRecord{
		AssetClass: class,
		Direction:  model.DirectionBuy,
		Picks:      picks,
		Fallback:   fallback,
	})
	if err != nil {
		s.log.Error().Err(err).Str("asset_class", string(class)).Msg("record scan")
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.Error().Err(err).Msg("send notification")
	}
}
