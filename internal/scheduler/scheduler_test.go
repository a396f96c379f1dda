package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketAdvisor/internal/collector"
	"MarketAdvisor/internal/model"
	"MarketAdvisor/internal/recorder"
	"MarketAdvisor/internal/universe"
)

type captureRecorder struct {
	mu    sync.Mutex
	scans []recorder.ScanRecord
}

func (c *captureRecorder) RecordAnalysis(_ *model.Recommendation) error { return nil }

func (c *captureRecorder) RecordScan(scan *recorder.ScanRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scans = append(c.scans, *scan)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func newTestScheduler(fetcher *collector.MockFetcher, rec recorder.Recorder) *Scheduler {
	log := zerolog.Nop()
	col := collector.NewCollector(fetcher, fetcher, fetcher, log)
	return NewScheduler(context.Background(), universe.NewRanker(col, log), nil, rec, log)
}

func TestRegisterAll(t *testing.T) {
	s := newTestScheduler(&collector.MockFetcher{Price: 100}, recorder.NewNoopRecorder())

	assert.NoError(t, s.RegisterAll("0 0 18 * * 1-5"))
	assert.Error(t, s.RegisterAll("not a cron expression"))
}

func TestRunScanNow_RecordsBothAssetClasses(t *testing.T) {
	capture := &captureRecorder{}
	s := newTestScheduler(&collector.MockFetcher{Price: 100}, capture)

	s.RunScanNow()

	require.Len(t, capture.scans, 2)
	assert.Equal(t, model.AssetStock, capture.scans[0].AssetClass)
	assert.Equal(t, model.AssetFund, capture.scans[1].AssetClass)
	for _, scan := range capture.scans {
		assert.Equal(t, model.DirectionBuy, scan.Direction)
		assert.Len(t, scan.Picks, 5)
		assert.False(t, scan.Fallback)
	}
}

func TestRunScanNow_FallbackFlagged(t *testing.T) {
	capture := &captureRecorder{}
	s := newTestScheduler(&collector.MockFetcher{FailAll: true}, capture)

	s.RunScanNow()

	require.Len(t, capture.scans, 2)
	for _, scan := range capture.scans {
		assert.True(t, scan.Fallback)
		assert.Len(t, scan.Picks, 5, "fallback still yields five picks")
	}
}
